package analyzing

import (
	"time"

	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

// PostAnalyzer define a interface para métricas de desempenho de posts individuais
type PostAnalyzer interface {
	// GetPostPerformance obtém as métricas consolidadas de desempenho de um post
	GetPostPerformance(postID string) (*domain.PostPerformance, error)
}

// AccountAnalyzer define a interface para análises agregadas por conta
type AccountAnalyzer interface {
	// GetOptimalPostingTimes calcula os melhores horários de publicação dos últimos 30 dias
	GetOptimalPostingTimes(accountID string) ([]*domain.OptimalTimeSlot, error)

	// GetEngagementTrends obtém a série temporal de engajamento da conta
	GetEngagementTrends(accountID, period, granularity, metric string) (*domain.TrendSeries, error)

	// GetPlatformPerformance obtém os totais de engajamento agrupados por plataforma
	GetPlatformPerformance(accountID, platform string) ([]*domain.PlatformPerformance, error)

	// GetTopPosts obtém os posts de melhor desempenho da conta
	GetTopPosts(accountID string, limit int) ([]*domain.TopPost, error)

	// GetPeriodComparison compara o período informado com o período imediatamente anterior
	GetPeriodComparison(accountID string, startDate, endDate time.Time) (*domain.PeriodComparison, error)
}

// Analyzer é a interface completa do motor de análise de engajamento
type Analyzer interface {
	PostAnalyzer
	AccountAnalyzer

	// GetDashboardOverview monta o resumo consolidado da conta para o dashboard
	GetDashboardOverview(accountID, rangeStr string) (*domain.DashboardOverview, error)

	// InvalidatePostPerformance remove do cache o desempenho de um post específico
	InvalidatePostPerformance(postID string)
}
