package domain

import "time"

// Granularity define o truncamento temporal das séries de tendência
type Granularity string

const (
	GranularityHourly Granularity = "hourly"
	GranularityDaily  Granularity = "daily"
	GranularityWeekly Granularity = "weekly"
)

// Metric identifica a métrica selecionada em uma consulta de tendência.
// Além das cinco métricas brutas existe a composta "engagement"
// (likes + comments + shares).
type Metric string

const (
	MetricLikes       Metric = "likes"
	MetricComments    Metric = "comments"
	MetricShares      Metric = "shares"
	MetricClicks      Metric = "clicks"
	MetricImpressions Metric = "impressions"
	MetricEngagement  Metric = "engagement"
)

// PostPerformance consolida o desempenho de um post somando todos os seus
// eventos de engajamento
type PostPerformance struct {
	PostID                   string            `json:"post_id"`
	AccountID                string            `json:"account_id"`
	Platform                 Platform          `json:"platform"`
	PublishedAt              *time.Time        `json:"published_at,omitempty"`
	Metrics                  EngagementMetrics `json:"metrics"`
	TotalEngagement          int64             `json:"total_engagement"`
	EngagementRate           float64           `json:"engagement_rate"`
	ClickThroughRate         float64           `json:"click_through_rate"`
	AverageEngagementPerHour float64           `json:"average_engagement_per_hour"`
	PerformanceScore         float64           `json:"performance_score"`
}

// OptimalTimeSlot representa um bucket (dia da semana × hora do dia)
// recomendado para publicação
type OptimalTimeSlot struct {
	DayOfWeek       int     `json:"day_of_week"` // 0–6 (0 = domingo)
	HourOfDay       int     `json:"hour_of_day"` // 0–23
	AverageScore    float64 `json:"average_score"`
	SampleSize      int     `json:"sample_size"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// TrendPoint é um bucket cronológico de uma série de tendência
type TrendPoint struct {
	Bucket        time.Time `json:"bucket"`
	Total         int64     `json:"total"`
	MovingAverage float64   `json:"moving_average"`
}

// TrendSummary agrega os totais da série completa
type TrendSummary struct {
	Total            int64   `json:"total"`
	AveragePerBucket float64 `json:"average_per_bucket"`
	GrowthPercent    float64 `json:"growth_percent"`
}

// TrendSeries é a resposta completa de uma consulta de tendência
type TrendSeries struct {
	PeriodDays  int          `json:"period_days"`
	Granularity Granularity  `json:"granularity"`
	Metric      Metric       `json:"metric"`
	Points      []TrendPoint `json:"points"`
	Peak        *TrendPoint  `json:"peak,omitempty"`
	Summary     TrendSummary `json:"summary"`
}

// PlatformPerformance agrega as métricas de uma plataforma
type PlatformPerformance struct {
	Platform        Platform          `json:"platform"`
	Metrics         EngagementMetrics `json:"metrics"`
	TotalEngagement int64             `json:"total_engagement"`
	EngagementRate  float64           `json:"engagement_rate"`
}

// TopPost é um post ranqueado por taxa de engajamento com os metadados do
// post já resolvidos
type TopPost struct {
	PostID          string            `json:"post_id"`
	Platform        Platform          `json:"platform"`
	Content         string            `json:"content"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
	Metrics         EngagementMetrics `json:"metrics"`
	TotalEngagement int64             `json:"total_engagement"`
	EngagementRate  float64           `json:"engagement_rate"`
}

// PeriodTotals agrega as métricas de uma janela de tempo
type PeriodTotals struct {
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	Metrics         EngagementMetrics `json:"metrics"`
	TotalEngagement int64             `json:"total_engagement"`
}

// GrowthMetrics reporta o crescimento percentual por métrica entre dois
// períodos. Baseline zero: 0% se ambos zerados, 100% se apenas o período
// anterior for zero.
type GrowthMetrics struct {
	Likes       float64 `json:"likes"`
	Comments    float64 `json:"comments"`
	Shares      float64 `json:"shares"`
	Clicks      float64 `json:"clicks"`
	Impressions float64 `json:"impressions"`
	Engagement  float64 `json:"engagement"`
}

// PeriodComparison compara uma janela [start, end] com a janela
// imediatamente anterior de mesma duração
type PeriodComparison struct {
	Current  PeriodTotals  `json:"current"`
	Previous PeriodTotals  `json:"previous"`
	Growth   GrowthMetrics `json:"growth"`
}

// DashboardOverview é um snapshot somente-leitura que compõe as consultas
// independentes do motor de agregação para uma conta
type DashboardOverview struct {
	AccountID    string                 `json:"account_id"`
	RangeDays    int                    `json:"range_days"`
	StatusCounts PostStatusCounts       `json:"status_counts"`
	Platforms    []*PlatformPerformance `json:"platforms"`
	TopPosts     []*TopPost             `json:"top_posts"`
	Trends       *TrendSeries           `json:"trends"`
	OptimalTimes []*OptimalTimeSlot     `json:"optimal_times"`
	Comparison   *PeriodComparison      `json:"comparison"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

// EngagementSample é uma linha crua usada pelo cálculo de horários ótimos:
// um evento com seu bucket e engajamento composto
type EngagementSample struct {
	DayOfWeek       int       `json:"day_of_week"`
	HourOfDay       int       `json:"hour_of_day"`
	Timestamp       time.Time `json:"timestamp"`
	TotalEngagement int64     `json:"total_engagement"`
}

// TrendBucket é uma linha agregada retornada pelo banco para tendências
type TrendBucket struct {
	Bucket time.Time
	Total  int64
}

// PostTotals é o resultado do agrupamento de eventos por post com os
// metadados do post resolvidos via join
type PostTotals struct {
	PostID      string
	Platform    Platform
	Content     string
	PublishedAt *time.Time
	Metrics     EngagementMetrics
}
