package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/database/postgres"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

const (
	postsTable = "posts p"
)

// PostRepository é a interface de leitura dos metadados de posts.
// A escrita de posts pertence ao serviço de publicação, fora desta API.
type PostRepository interface {
	GetByID(postID string) (*domain.Post, error)
	ListByStatus(status domain.PostStatus, limit uint64) ([]*domain.Post, error)
	CountByStatus(accountID string) (*domain.PostStatusCounts, error)
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) GetByID(postID string) (*domain.Post, error) {
	query, args, err := squirrel.
		Select("p.id, p.account_id, p.platform, p.status, p.content, p.published_at, p.created_at, p.updated_at").
		From(postsTable).
		Where(squirrel.Eq{"p.id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear post: %w", err)
	}

	return post, nil
}

func (r *postRepository) ListByStatus(status domain.PostStatus, limit uint64) ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select("p.id, p.account_id, p.platform, p.status, p.content, p.published_at, p.created_at, p.updated_at").
		From(postsTable).
		Where(squirrel.Eq{"p.status": status}).
		OrderBy("p.published_at DESC NULLS LAST").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPosts(query, args...)
}

// CountByStatus conta os posts da conta agrupados por status
func (r *postRepository) CountByStatus(accountID string) (*domain.PostStatusCounts, error) {
	query, args, err := squirrel.
		Select("p.status", "COUNT(p.id)").
		From(postsTable).
		Where(squirrel.Eq{"p.account_id": accountID}).
		GroupBy("p.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := &domain.PostStatusCounts{}
	for rows.Next() {
		var status domain.PostStatus
		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por status: %w", err)
		}

		switch status {
		case domain.PostStatusDraft:
			counts.Draft = count
		case domain.PostStatusScheduled:
			counts.Scheduled = count
		case domain.PostStatusPublished:
			counts.Published = count
		case domain.PostStatusFailed:
			counts.Failed = count
		}
		counts.Total += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *postRepository) queryPosts(query string, args ...interface{}) ([]*domain.Post, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPostRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear posts: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

func scanPost(row *sql.Row) (*domain.Post, error) {
	post := &domain.Post{}
	err := row.Scan(
		&post.ID,
		&post.AccountID,
		&post.Platform,
		&post.Status,
		&post.Content,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func scanPostRows(rows *sql.Rows) (*domain.Post, error) {
	post := &domain.Post{}
	err := rows.Scan(
		&post.ID,
		&post.AccountID,
		&post.Platform,
		&post.Status,
		&post.Content,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return post, nil
}
