package analyzing

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/pkg/utils"
)

const (
	// Período padrão quando a consulta não informa um
	trendsDefaultPeriodDays = 7

	// Período máximo aceito, alinhado à retenção de 90 dias
	trendsMaxPeriodDays = 365

	// Janela da média móvel (bucket atual + até 6 anteriores)
	trendsMovingAverageWindow = 7
)

// GetEngagementTrends obtém a série temporal de engajamento da conta.
// period segue o formato "Nd" (ex.: "7d", "30d"); granularity aceita
// hourly, daily ou weekly; metric aceita as cinco métricas brutas ou a
// composta "engagement". Valores vazios assumem os padrões.
func (s *Service) GetEngagementTrends(accountID, period, granularity, metric string) (*domain.TrendSeries, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	days, err := parsePeriodDays(period)
	if err != nil {
		return nil, err
	}

	gran, err := parseGranularity(granularity)
	if err != nil {
		return nil, err
	}

	m, err := parseMetric(metric)
	if err != nil {
		return nil, err
	}

	var series domain.TrendSeries

	err = s.cache.GetOrCompute(
		trendsCacheKey(accountID, days, string(gran), string(m)),
		s.ttl.TrendsTTL(),
		&series,
		func() (interface{}, error) {
			return s.engagementTrendsAt(accountID, days, gran, m, time.Now().UTC())
		},
	)
	if err != nil {
		return nil, err
	}

	return &series, nil
}

func (s *Service) engagementTrendsAt(
	accountID string,
	days int,
	granularity domain.Granularity,
	metric domain.Metric,
	now time.Time,
) (*domain.TrendSeries, error) {
	since := now.AddDate(0, 0, -days)

	buckets, err := s.engagementRepo.SumMetricByBucket(accountID, since, granularity, metric)
	if err != nil {
		logrus.Errorf("Erro ao agregar tendências da conta %s: %v", accountID, err)
		return nil, &AnalyticsError{Err: err, AccountID: accountID, Message: "erro ao agregar tendências"}
	}

	series := &domain.TrendSeries{
		PeriodDays:  days,
		Granularity: granularity,
		Metric:      metric,
		Points:      make([]domain.TrendPoint, 0, len(buckets)),
	}

	if len(buckets) == 0 {
		return series, nil
	}

	var total int64
	var peakIndex int

	for i, bucket := range buckets {
		total += bucket.Total

		// Média móvel sobre o bucket atual e até seis anteriores
		start := i - trendsMovingAverageWindow + 1
		if start < 0 {
			start = 0
		}

		var windowSum int64
		for _, prev := range buckets[start : i+1] {
			windowSum += prev.Total
		}

		series.Points = append(series.Points, domain.TrendPoint{
			Bucket:        bucket.Bucket,
			Total:         bucket.Total,
			MovingAverage: utils.RoundWithTwoDecimalPlace(float64(windowSum) / float64(i+1-start)),
		})

		// Em caso de empate vale a primeira ocorrência
		if bucket.Total > buckets[peakIndex].Total {
			peakIndex = i
		}
	}

	peak := series.Points[peakIndex]
	series.Peak = &peak

	first := float64(series.Points[0].Total)
	last := float64(series.Points[len(series.Points)-1].Total)

	series.Summary = domain.TrendSummary{
		Total:            total,
		AveragePerBucket: utils.RoundWithTwoDecimalPlace(float64(total) / float64(len(series.Points))),
		GrowthPercent:    utils.RoundWithTwoDecimalPlace(growthPercent(first, last)),
	}

	return series, nil
}

// parsePeriodDays interpreta períodos no formato "Nd". Vazio assume 7 dias.
func parsePeriodDays(period string) (int, error) {
	if period == "" {
		return trendsDefaultPeriodDays, nil
	}

	value, ok := strings.CutSuffix(period, "d")
	if !ok {
		return 0, ErrInvalidPeriod
	}

	days, err := strconv.Atoi(value)
	if err != nil || days < 1 || days > trendsMaxPeriodDays {
		return 0, ErrInvalidPeriod
	}

	return days, nil
}

func parseGranularity(granularity string) (domain.Granularity, error) {
	switch domain.Granularity(granularity) {
	case domain.GranularityHourly, domain.GranularityDaily, domain.GranularityWeekly:
		return domain.Granularity(granularity), nil
	case "":
		return domain.GranularityDaily, nil
	default:
		return "", ErrInvalidGranularity
	}
}

func parseMetric(metric string) (domain.Metric, error) {
	switch domain.Metric(metric) {
	case domain.MetricLikes, domain.MetricComments, domain.MetricShares,
		domain.MetricClicks, domain.MetricImpressions, domain.MetricEngagement:
		return domain.Metric(metric), nil
	case "":
		return domain.MetricEngagement, nil
	default:
		return "", ErrInvalidMetric
	}
}
