package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

func trendBucket(day int, total int64) *domain.TrendBucket {
	return &domain.TrendBucket{
		Bucket: time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
		Total:  total,
	}
}

func TestEngagementTrendsSeries(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	buckets := []*domain.TrendBucket{
		trendBucket(14, 10),
		trendBucket(15, 20),
		trendBucket(16, 30),
		trendBucket(17, 40),
	}

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -7), domain.GranularityDaily, domain.MetricEngagement).
		Return(buckets, nil)

	series, err := service.engagementTrendsAt("acc1", 7, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)

	require.Len(t, series.Points, 4)
	assert.Equal(t, 7, series.PeriodDays)

	// Média móvel acumulada enquanto a janela não enche
	assert.Equal(t, 10.0, series.Points[0].MovingAverage)
	assert.Equal(t, 15.0, series.Points[1].MovingAverage)
	assert.Equal(t, 20.0, series.Points[2].MovingAverage)
	assert.Equal(t, 25.0, series.Points[3].MovingAverage)

	require.NotNil(t, series.Peak)
	assert.Equal(t, int64(40), series.Peak.Total)

	assert.Equal(t, int64(100), series.Summary.Total)
	assert.Equal(t, 25.0, series.Summary.AveragePerBucket)

	// (40 - 10) / 10 * 100
	assert.Equal(t, 300.0, series.Summary.GrowthPercent)
}

func TestEngagementTrendsMovingAverageWindow(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	// Nove buckets de valor 10 e um pico final: a janela de sete buckets
	// dilui o pico
	buckets := make([]*domain.TrendBucket, 0, 10)
	for day := 8; day < 17; day++ {
		buckets = append(buckets, trendBucket(day, 10))
	}
	buckets = append(buckets, trendBucket(17, 80))

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -14), domain.GranularityDaily, domain.MetricEngagement).
		Return(buckets, nil)

	series, err := service.engagementTrendsAt("acc1", 14, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)
	require.Len(t, series.Points, 10)

	// (6*10 + 80) / 7
	assert.Equal(t, 20.0, series.Points[9].MovingAverage)
}

func TestEngagementTrendsZeroBaselineGrowth(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -7), domain.GranularityDaily, domain.MetricEngagement).
		Return([]*domain.TrendBucket{trendBucket(14, 0), trendBucket(15, 50)}, nil)

	series, err := service.engagementTrendsAt("acc1", 7, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)

	// Base zero com crescimento: 100%
	assert.Equal(t, 100.0, series.Summary.GrowthPercent)
}

func TestEngagementTrendsFlatZeroGrowth(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -7), domain.GranularityDaily, domain.MetricEngagement).
		Return([]*domain.TrendBucket{trendBucket(14, 0), trendBucket(15, 0)}, nil)

	series, err := service.engagementTrendsAt("acc1", 7, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)

	assert.Equal(t, 0.0, series.Summary.GrowthPercent)
}

func TestEngagementTrendsPeakFirstOccurrenceWins(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -7), domain.GranularityDaily, domain.MetricEngagement).
		Return([]*domain.TrendBucket{trendBucket(14, 50), trendBucket(15, 50), trendBucket(16, 10)}, nil)

	series, err := service.engagementTrendsAt("acc1", 7, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)

	require.NotNil(t, series.Peak)
	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), series.Peak.Bucket)
}

func TestEngagementTrendsEmptySeries(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", now.AddDate(0, 0, -7), domain.GranularityDaily, domain.MetricEngagement).
		Return(nil, nil)

	series, err := service.engagementTrendsAt("acc1", 7, domain.GranularityDaily, domain.MetricEngagement, now)
	require.NoError(t, err)

	assert.Empty(t, series.Points)
	assert.Nil(t, series.Peak)
	assert.Equal(t, int64(0), series.Summary.Total)
}

func TestEngagementTrendsValidation(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name        string
		accountID   string
		period      string
		granularity string
		metric      string
		wantErr     error
	}{
		{
			name:      "conta ausente",
			accountID: "",
			wantErr:   ErrMissingAccountID,
		},
		{
			name:      "período sem sufixo",
			accountID: "acc1",
			period:    "7",
			wantErr:   ErrInvalidPeriod,
		},
		{
			name:      "período não numérico",
			accountID: "acc1",
			period:    "xd",
			wantErr:   ErrInvalidPeriod,
		},
		{
			name:      "período negativo",
			accountID: "acc1",
			period:    "-3d",
			wantErr:   ErrInvalidPeriod,
		},
		{
			name:        "granularidade inválida",
			accountID:   "acc1",
			period:      "7d",
			granularity: "monthly",
			wantErr:     ErrInvalidGranularity,
		},
		{
			name:        "métrica inválida",
			accountID:   "acc1",
			period:      "7d",
			granularity: "daily",
			metric:      "views",
			wantErr:     ErrInvalidMetric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GetEngagementTrends(tt.accountID, tt.period, tt.granularity, tt.metric)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestParsePeriodDefaults(t *testing.T) {
	days, err := parsePeriodDays("")
	require.NoError(t, err)
	assert.Equal(t, 7, days)

	days, err = parsePeriodDays("30d")
	require.NoError(t, err)
	assert.Equal(t, 30, days)

	gran, err := parseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, domain.GranularityDaily, gran)

	metric, err := parseMetric("")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricEngagement, metric)
}
