package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/database/postgres"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

const (
	engagementEventsTable = "engagement_events ee"
)

type EngagementRepository interface {
	UpsertIncrement(event *domain.EngagementEvent) error
	SumMetricsByPost(postID string) (*domain.EngagementMetrics, int64, error)
	ListSamplesSince(accountID string, since time.Time) ([]*domain.EngagementSample, error)
	SumMetricByBucket(accountID string, since time.Time, granularity domain.Granularity, metric domain.Metric) ([]*domain.TrendBucket, error)
	SumMetricsByPlatform(accountID string, platform *domain.Platform) ([]*domain.PlatformPerformance, error)
	SumMetricsByPostForAccount(accountID string) ([]*domain.PostTotals, error)
	SumMetricsInRange(accountID string, startDate, endDate time.Time) (*domain.EngagementMetrics, error)
	DeleteOlderThan(days int) (int64, error)
}

type engagementRepository struct {
	conn *postgres.Connection
}

func NewEngagementRepository(conn *postgres.Connection) EngagementRepository {
	return &engagementRepository{
		conn: conn,
	}
}

// UpsertIncrement insere o incremento de métricas no bucket horário do post.
// A chave composta (post_id, hour_of_day, day_of_week) garante um evento
// lógico por post por bucket; em conflito as métricas são somadas de forma
// atômica no banco e timestamp/platform recebem o último valor escrito.
func (r *engagementRepository) UpsertIncrement(event *domain.EngagementEvent) error {
	query := squirrel.StatementBuilder.
		Insert("engagement_events").
		Columns(
			"post_id", "account_id", "platform", "timestamp",
			"hour_of_day", "day_of_week",
			"likes", "comments", "shares", "clicks", "impressions",
		).
		Values(
			event.PostID,
			event.AccountID,
			event.Platform,
			event.Timestamp,
			event.HourOfDay,
			event.DayOfWeek,
			event.Metrics.Likes,
			event.Metrics.Comments,
			event.Metrics.Shares,
			event.Metrics.Clicks,
			event.Metrics.Impressions,
		).
		Suffix(`
			ON CONFLICT (post_id, hour_of_day, day_of_week) DO UPDATE SET
				likes = engagement_events.likes + EXCLUDED.likes,
				comments = engagement_events.comments + EXCLUDED.comments,
				shares = engagement_events.shares + EXCLUDED.shares,
				clicks = engagement_events.clicks + EXCLUDED.clicks,
				impressions = engagement_events.impressions + EXCLUDED.impressions,
				timestamp = EXCLUDED.timestamp,
				platform = EXCLUDED.platform,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SumMetricsByPost soma todas as métricas de engajamento de um post.
// Retorna também a quantidade de eventos agregados.
func (r *engagementRepository) SumMetricsByPost(postID string) (*domain.EngagementMetrics, int64, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(ee.likes), 0)",
			"COALESCE(SUM(ee.comments), 0)",
			"COALESCE(SUM(ee.shares), 0)",
			"COALESCE(SUM(ee.clicks), 0)",
			"COALESCE(SUM(ee.impressions), 0)",
			"COUNT(ee.id)",
		).
		From(engagementEventsTable).
		Where(squirrel.Eq{"ee.post_id": postID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics := &domain.EngagementMetrics{}
	var eventCount int64

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&metrics.Likes,
		&metrics.Comments,
		&metrics.Shares,
		&metrics.Clicks,
		&metrics.Impressions,
		&eventCount,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao escanear métricas do post: %w", err)
	}

	return metrics, eventCount, nil
}

// ListSamplesSince lista os eventos de uma conta a partir de since com o
// engajamento composto já calculado, na forma crua que o cálculo de
// horários ótimos consome.
func (r *engagementRepository) ListSamplesSince(accountID string, since time.Time) ([]*domain.EngagementSample, error) {
	query, args, err := squirrel.
		Select(
			"ee.day_of_week",
			"ee.hour_of_day",
			"ee.timestamp",
			"ee.likes + ee.comments + ee.shares",
		).
		From(engagementEventsTable).
		Where(squirrel.Eq{"ee.account_id": accountID}).
		Where(squirrel.GtOrEq{"ee.timestamp": since}).
		OrderBy("ee.timestamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	samples := make([]*domain.EngagementSample, 0)
	for rows.Next() {
		sample := &domain.EngagementSample{}
		if err := rows.Scan(&sample.DayOfWeek, &sample.HourOfDay, &sample.Timestamp, &sample.TotalEngagement); err != nil {
			return nil, fmt.Errorf("erro ao escanear amostra de engajamento: %w", err)
		}
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}

// SumMetricByBucket agrupa os eventos da conta por timestamp truncado na
// granularidade pedida, somando a métrica selecionada por bucket. O
// agrupamento é empurrado para o banco via date_trunc.
func (r *engagementRepository) SumMetricByBucket(
	accountID string,
	since time.Time,
	granularity domain.Granularity,
	metric domain.Metric,
) ([]*domain.TrendBucket, error) {
	truncUnit, err := dateTruncUnit(granularity)
	if err != nil {
		return nil, err
	}

	metricExpr, err := metricExpression(metric)
	if err != nil {
		return nil, err
	}

	bucketExpr := fmt.Sprintf("date_trunc('%s', ee.timestamp)", truncUnit)

	query, args, err := squirrel.
		Select(
			bucketExpr+" AS bucket",
			fmt.Sprintf("COALESCE(SUM(%s), 0) AS total", metricExpr),
		).
		From(engagementEventsTable).
		Where(squirrel.Eq{"ee.account_id": accountID}).
		Where(squirrel.GtOrEq{"ee.timestamp": since}).
		GroupBy(bucketExpr).
		OrderBy("bucket ASC").
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

	buckets := make([]*domain.TrendBucket, 0)
	for rows.Next() {
		bucket := &domain.TrendBucket{}
		if err := rows.Scan(&bucket.Bucket, &bucket.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear bucket de tendência: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}

// SumMetricsByPlatform agrupa todos os eventos da conta por plataforma.
// O filtro de plataforma é opcional.
func (r *engagementRepository) SumMetricsByPlatform(accountID string, platform *domain.Platform) ([]*domain.PlatformPerformance, error) {
	builder := squirrel.
		Select(
			"ee.platform",
			"COALESCE(SUM(ee.likes), 0)",
			"COALESCE(SUM(ee.comments), 0)",
			"COALESCE(SUM(ee.shares), 0)",
			"COALESCE(SUM(ee.clicks), 0)",
			"COALESCE(SUM(ee.impressions), 0)",
		).
		From(engagementEventsTable).
		Where(squirrel.Eq{"ee.account_id": accountID}).
		GroupBy("ee.platform")

	if platform != nil {
		builder = builder.Where(squirrel.Eq{"ee.platform": *platform})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.PlatformPerformance, 0)
	for rows.Next() {
		entry := &domain.PlatformPerformance{}
		err := rows.Scan(
			&entry.Platform,
			&entry.Metrics.Likes,
			&entry.Metrics.Comments,
			&entry.Metrics.Shares,
			&entry.Metrics.Clicks,
			&entry.Metrics.Impressions,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por plataforma: %w", err)
		}
		totals = append(totals, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// SumMetricsByPostForAccount agrupa os eventos por post e resolve os
// metadados de cada post via join reverso com a tabela de posts.
func (r *engagementRepository) SumMetricsByPostForAccount(accountID string) ([]*domain.PostTotals, error) {
	query, args, err := squirrel.
		Select(
			"ee.post_id",
			"p.platform",
			"p.content",
			"p.published_at",
			"COALESCE(SUM(ee.likes), 0)",
			"COALESCE(SUM(ee.comments), 0)",
			"COALESCE(SUM(ee.shares), 0)",
			"COALESCE(SUM(ee.clicks), 0)",
			"COALESCE(SUM(ee.impressions), 0)",
		).
		From(engagementEventsTable).
		Join("posts p ON p.id = ee.post_id").
		Where(squirrel.Eq{"ee.account_id": accountID}).
		GroupBy("ee.post_id", "p.platform", "p.content", "p.published_at").
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

	totals := make([]*domain.PostTotals, 0)
	for rows.Next() {
		entry := &domain.PostTotals{}
		err := rows.Scan(
			&entry.PostID,
			&entry.Platform,
			&entry.Content,
			&entry.PublishedAt,
			&entry.Metrics.Likes,
			&entry.Metrics.Comments,
			&entry.Metrics.Shares,
			&entry.Metrics.Clicks,
			&entry.Metrics.Impressions,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por post: %w", err)
		}
		totals = append(totals, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// SumMetricsInRange soma as métricas da conta dentro da janela [start, end]
func (r *engagementRepository) SumMetricsInRange(accountID string, startDate, endDate time.Time) (*domain.EngagementMetrics, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(ee.likes), 0)",
			"COALESCE(SUM(ee.comments), 0)",
			"COALESCE(SUM(ee.shares), 0)",
			"COALESCE(SUM(ee.clicks), 0)",
			"COALESCE(SUM(ee.impressions), 0)",
		).
		From(engagementEventsTable).
		Where(squirrel.Eq{"ee.account_id": accountID}).
		Where(squirrel.GtOrEq{"ee.timestamp": startDate}).
		Where(squirrel.LtOrEq{"ee.timestamp": endDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics := &domain.EngagementMetrics{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&metrics.Likes,
		&metrics.Comments,
		&metrics.Shares,
		&metrics.Clicks,
		&metrics.Impressions,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear métricas do período: %w", err)
	}

	return metrics, nil
}

// DeleteOlderThan remove eventos fora da janela de retenção
func (r *engagementRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("engagement_events").
		Where(squirrel.Lt{"timestamp": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// dateTruncUnit traduz a granularidade para o argumento do date_trunc.
// A granularidade semanal usa a semana ISO do Postgres (início na segunda).
func dateTruncUnit(granularity domain.Granularity) (string, error) {
	switch granularity {
	case domain.GranularityHourly:
		return "hour", nil
	case domain.GranularityDaily:
		return "day", nil
	case domain.GranularityWeekly:
		return "week", nil
	default:
		return "", fmt.Errorf("granularidade desconhecida: %s", granularity)
	}
}

// metricExpression traduz a métrica selecionada para a expressão SQL somada
func metricExpression(metric domain.Metric) (string, error) {
	switch metric {
	case domain.MetricLikes:
		return "ee.likes", nil
	case domain.MetricComments:
		return "ee.comments", nil
	case domain.MetricShares:
		return "ee.shares", nil
	case domain.MetricClicks:
		return "ee.clicks", nil
	case domain.MetricImpressions:
		return "ee.impressions", nil
	case domain.MetricEngagement:
		return "ee.likes + ee.comments + ee.shares", nil
	default:
		return "", fmt.Errorf("métrica desconhecida: %s", metric)
	}
}
