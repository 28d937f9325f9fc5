package analyzing

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/pkg/utils"
)

// Limite padrão de posts retornados pelo ranking
const topPostsDefaultLimit = 5

// GetPlatformPerformance obtém os totais de engajamento agrupados por
// plataforma, ordenados do maior para o menor engajamento composto.
// platform vazio retorna todas as plataformas da conta.
func (s *Service) GetPlatformPerformance(accountID, platform string) ([]*domain.PlatformPerformance, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	var filter *domain.Platform
	if platform != "" {
		if !domain.IsValidPlatform(platform) {
			return nil, ErrInvalidPlatform
		}

		p := domain.Platform(platform)
		filter = &p
	}

	var performances []*domain.PlatformPerformance

	err := s.cache.GetOrCompute(
		platformsCacheKey(accountID, platform),
		s.ttl.PlatformsTTL(),
		&performances,
		func() (interface{}, error) {
			return s.platformPerformance(accountID, filter)
		},
	)
	if err != nil {
		return nil, err
	}

	return performances, nil
}

func (s *Service) platformPerformance(accountID string, platform *domain.Platform) ([]*domain.PlatformPerformance, error) {
	performances, err := s.engagementRepo.SumMetricsByPlatform(accountID, platform)
	if err != nil {
		logrus.Errorf("Erro ao agregar métricas por plataforma da conta %s: %v", accountID, err)
		return nil, &AnalyticsError{Err: err, AccountID: accountID, Message: "erro ao agregar métricas por plataforma"}
	}

	for _, performance := range performances {
		performance.TotalEngagement = performance.Metrics.TotalEngagement()

		if performance.Metrics.Impressions > 0 {
			rate := float64(performance.TotalEngagement) / float64(performance.Metrics.Impressions) * 100
			performance.EngagementRate = utils.RoundWithTwoDecimalPlace(rate)
		}
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].TotalEngagement > performances[j].TotalEngagement
	})

	return performances, nil
}

// GetTopPosts obtém os posts de melhor desempenho da conta, ranqueados por
// taxa de engajamento com desempate pelo engajamento bruto
func (s *Service) GetTopPosts(accountID string, limit int) ([]*domain.TopPost, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	if limit == 0 {
		limit = topPostsDefaultLimit
	}

	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	var topPosts []*domain.TopPost

	err := s.cache.GetOrCompute(
		topPostsCacheKey(accountID, limit),
		s.ttl.TopPostsTTL(),
		&topPosts,
		func() (interface{}, error) {
			return s.topPosts(accountID, limit)
		},
	)
	if err != nil {
		return nil, err
	}

	return topPosts, nil
}

func (s *Service) topPosts(accountID string, limit int) ([]*domain.TopPost, error) {
	totals, err := s.engagementRepo.SumMetricsByPostForAccount(accountID)
	if err != nil {
		logrus.Errorf("Erro ao agregar métricas por post da conta %s: %v", accountID, err)
		return nil, &AnalyticsError{Err: err, AccountID: accountID, Message: "erro ao agregar métricas por post"}
	}

	topPosts := make([]*domain.TopPost, 0, len(totals))

	for _, total := range totals {
		totalEngagement := total.Metrics.TotalEngagement()

		var rate float64
		if total.Metrics.Impressions > 0 {
			rate = float64(totalEngagement) / float64(total.Metrics.Impressions) * 100
		}

		topPosts = append(topPosts, &domain.TopPost{
			PostID:          total.PostID,
			Platform:        total.Platform,
			Content:         total.Content,
			PublishedAt:     total.PublishedAt,
			Metrics:         total.Metrics,
			TotalEngagement: totalEngagement,
			EngagementRate:  utils.RoundWithTwoDecimalPlace(rate),
		})
	}

	sort.SliceStable(topPosts, func(i, j int) bool {
		if topPosts[i].EngagementRate != topPosts[j].EngagementRate {
			return topPosts[i].EngagementRate > topPosts[j].EngagementRate
		}

		return topPosts[i].TotalEngagement > topPosts[j].TotalEngagement
	})

	if len(topPosts) > limit {
		topPosts = topPosts[:limit]
	}

	return topPosts, nil
}

// GetPeriodComparison compara a janela [startDate, endDate] com a janela
// imediatamente anterior de mesma duração, terminando um segundo antes do
// início da janela atual
func (s *Service) GetPeriodComparison(accountID string, startDate, endDate time.Time) (*domain.PeriodComparison, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	if startDate.IsZero() || endDate.IsZero() || !startDate.Before(endDate) {
		return nil, ErrInvalidDateRange
	}

	var comparison domain.PeriodComparison

	err := s.cache.GetOrCompute(
		comparisonCacheKey(accountID, startDate, endDate),
		s.ttl.ComparisonTTL(),
		&comparison,
		func() (interface{}, error) {
			return s.periodComparison(accountID, startDate, endDate)
		},
	)
	if err != nil {
		return nil, err
	}

	return &comparison, nil
}

func (s *Service) periodComparison(accountID string, startDate, endDate time.Time) (*domain.PeriodComparison, error) {
	duration := endDate.Sub(startDate)
	previousEnd := startDate.Add(-time.Second)
	previousStart := previousEnd.Add(-duration)

	current, err := s.periodTotals(accountID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	previous, err := s.periodTotals(accountID, previousStart, previousEnd)
	if err != nil {
		return nil, err
	}

	growth := domain.GrowthMetrics{
		Likes:       utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.Metrics.Likes), float64(current.Metrics.Likes))),
		Comments:    utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.Metrics.Comments), float64(current.Metrics.Comments))),
		Shares:      utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.Metrics.Shares), float64(current.Metrics.Shares))),
		Clicks:      utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.Metrics.Clicks), float64(current.Metrics.Clicks))),
		Impressions: utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.Metrics.Impressions), float64(current.Metrics.Impressions))),
		Engagement:  utils.RoundWithTwoDecimalPlace(growthPercent(float64(previous.TotalEngagement), float64(current.TotalEngagement))),
	}

	return &domain.PeriodComparison{
		Current:  *current,
		Previous: *previous,
		Growth:   growth,
	}, nil
}

func (s *Service) periodTotals(accountID string, start, end time.Time) (*domain.PeriodTotals, error) {
	metrics, err := s.engagementRepo.SumMetricsInRange(accountID, start, end)
	if err != nil {
		logrus.Errorf("Erro ao somar métricas da conta %s no período: %v", accountID, err)
		return nil, &AnalyticsError{Err: err, AccountID: accountID, Message: "erro ao somar métricas do período"}
	}

	if metrics == nil {
		metrics = &domain.EngagementMetrics{}
	}

	return &domain.PeriodTotals{
		StartDate:       start,
		EndDate:         end,
		Metrics:         *metrics,
		TotalEngagement: metrics.TotalEngagement(),
	}, nil
}
