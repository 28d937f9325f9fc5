package analyzing

import (
	"fmt"
	"time"

	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository"
	"github.com/socialpulse/engagement-analytics-api/internal/cache"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
)

// Service implementa o motor de análise de engajamento com cache-aside
type Service struct {
	cfg            *config.Config
	cache          *cache.Cache
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
	ttl            config.AnalyticsCacheConfig
}

func NewService(
	cfg *config.Config,
	analyticsCache *cache.Cache,
	engagementRepo repository.EngagementRepository,
	postRepo repository.PostRepository,
) *Service {
	return &Service{
		cfg:            cfg,
		cache:          analyticsCache,
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		ttl:            cfg.AnalyticsCache,
	}
}

// InvalidatePostPerformance remove do cache o desempenho consolidado de um post.
// Chamado pelo gerador sempre que novas métricas são gravadas para o post.
func (s *Service) InvalidatePostPerformance(postID string) {
	s.cache.Invalidate(performanceCacheKey(postID))
}

// Chaves de cache por família de consulta. O prefixo identifica a família e
// permite invalidação por padrão (ex.: "performance:*").
func performanceCacheKey(postID string) string {
	return fmt.Sprintf("performance:%s", postID)
}

func optimalTimesCacheKey(accountID string) string {
	return fmt.Sprintf("optimal-times:%s", accountID)
}

func trendsCacheKey(accountID string, days int, granularity, metric string) string {
	return fmt.Sprintf("trends:%s:%dd:%s:%s", accountID, days, granularity, metric)
}

func platformsCacheKey(accountID, platform string) string {
	if platform == "" {
		platform = "all"
	}

	return fmt.Sprintf("platforms:%s:%s", accountID, platform)
}

func topPostsCacheKey(accountID string, limit int) string {
	return fmt.Sprintf("top-posts:%s:%d", accountID, limit)
}

func comparisonCacheKey(accountID string, start, end time.Time) string {
	return fmt.Sprintf("comparison:%s:%s:%s",
		accountID,
		start.UTC().Format("2006-01-02"),
		end.UTC().Format("2006-01-02"),
	)
}

func dashboardCacheKey(accountID string, days int) string {
	return fmt.Sprintf("dashboard:%s:%dd", accountID, days)
}

// growthPercent calcula a variação percentual entre dois totais.
// Quando o total anterior é zero, a variação é 100% se o atual for positivo
// e 0% se ambos forem zero, evitando divisão por zero.
func growthPercent(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}

		return 0
	}

	return (current - previous) / previous * 100
}
