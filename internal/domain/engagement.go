package domain

import "time"

// EngagementMetrics é o pacote de contadores acumulados de um evento de
// engajamento. Os contadores nunca são decrementados.
type EngagementMetrics struct {
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Clicks      int64 `json:"clicks"`
	Impressions int64 `json:"impressions"`
}

// TotalEngagement retorna o engajamento composto (likes + comments + shares).
// Clicks e impressions ficam de fora do sinal principal de ranqueamento.
func (m EngagementMetrics) TotalEngagement() int64 {
	return m.Likes + m.Comments + m.Shares
}

// EngagementEvent representa um evento lógico de engajamento de um post no
// bucket horário corrente. HourOfDay e DayOfWeek são derivados do timestamp
// em UTC uma única vez na escrita e nunca recalculados na leitura, para
// manter as queries de agrupamento indexáveis.
type EngagementEvent struct {
	ID        int64             `json:"id"`
	PostID    string            `json:"post_id"`
	AccountID string            `json:"account_id"`
	Platform  Platform          `json:"platform"` // Cópia desnormalizada do post
	Timestamp time.Time         `json:"timestamp"`
	HourOfDay int               `json:"hour_of_day"` // 0–23
	DayOfWeek int               `json:"day_of_week"` // 0–6 (0 = domingo)
	Metrics   EngagementMetrics `json:"metrics"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewEngagementIncrement monta o incremento de engajamento de um post para o
// bucket horário de now (em UTC), com a chave de upsert
// {post, hour_of_day, day_of_week} preenchida a partir do timestamp.
func NewEngagementIncrement(post *Post, now time.Time, metrics EngagementMetrics) *EngagementEvent {
	utcNow := now.UTC()

	return &EngagementEvent{
		PostID:    post.ID,
		AccountID: post.AccountID,
		Platform:  post.Platform,
		Timestamp: utcNow,
		HourOfDay: utcNow.Hour(),
		DayOfWeek: int(utcNow.Weekday()),
		Metrics:   metrics,
	}
}
