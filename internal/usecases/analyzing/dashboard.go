package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

// Ranges aceitos pelo dashboard
const dashboardDefaultRangeDays = 30

var dashboardRangeDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// GetDashboardOverview monta o snapshot consolidado da conta compondo as
// consultas independentes do motor. Falhas parciais são registradas em log e
// o snapshot é retornado com os componentes disponíveis.
func (s *Service) GetDashboardOverview(accountID, rangeStr string) (*domain.DashboardOverview, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	days := dashboardDefaultRangeDays
	if rangeStr != "" {
		parsed, ok := dashboardRangeDays[rangeStr]
		if !ok {
			return nil, ErrInvalidRange
		}

		days = parsed
	}

	var overview domain.DashboardOverview

	err := s.cache.GetOrCompute(
		dashboardCacheKey(accountID, days),
		s.ttl.DashboardTTL(),
		&overview,
		func() (interface{}, error) {
			return s.dashboardOverviewAt(accountID, days, time.Now().UTC())
		},
	)
	if err != nil {
		return nil, err
	}

	return &overview, nil
}

func (s *Service) dashboardOverviewAt(accountID string, days int, now time.Time) (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{
		AccountID:   accountID,
		RangeDays:   days,
		GeneratedAt: now,
	}

	period := fmt.Sprintf("%dd", days)

	// As consultas são independentes entre si, então são disparadas em
	// paralelo e cada uma registra sua própria falha
	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()

		counts, err := s.postRepo.CountByStatus(accountID)
		if err != nil {
			logrus.Errorf("Erro ao contar posts por status da conta %s: %v", accountID, err)
			return
		}

		if counts != nil {
			overview.StatusCounts = *counts
		}
	}()

	go func() {
		defer wg.Done()

		platforms, err := s.GetPlatformPerformance(accountID, "")
		if err != nil {
			logrus.Errorf("Erro ao obter desempenho por plataforma da conta %s: %v", accountID, err)
			return
		}

		overview.Platforms = platforms
	}()

	go func() {
		defer wg.Done()

		topPosts, err := s.GetTopPosts(accountID, topPostsDefaultLimit)
		if err != nil {
			logrus.Errorf("Erro ao obter top posts da conta %s: %v", accountID, err)
			return
		}

		overview.TopPosts = topPosts
	}()

	go func() {
		defer wg.Done()

		trends, err := s.GetEngagementTrends(accountID, period, string(domain.GranularityDaily), string(domain.MetricEngagement))
		if err != nil {
			logrus.Errorf("Erro ao obter tendências da conta %s: %v", accountID, err)
			return
		}

		overview.Trends = trends
	}()

	go func() {
		defer wg.Done()

		optimalTimes, err := s.GetOptimalPostingTimes(accountID)
		if err != nil {
			logrus.Errorf("Erro ao obter horários ótimos da conta %s: %v", accountID, err)
			return
		}

		overview.OptimalTimes = optimalTimes
	}()

	go func() {
		defer wg.Done()

		comparison, err := s.GetPeriodComparison(accountID, now.AddDate(0, 0, -days), now)
		if err != nil {
			logrus.Errorf("Erro ao comparar períodos da conta %s: %v", accountID, err)
			return
		}

		overview.Comparison = comparison
	}()

	wg.Wait()

	return overview, nil
}
