package analyzing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

func TestDashboardOverviewComposesComponents(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	now := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	postRepo.EXPECT().
		CountByStatus("acc1").
		Return(&domain.PostStatusCounts{Published: 12, Draft: 3, Scheduled: 2, Total: 17}, nil)

	engagementRepo.EXPECT().
		SumMetricsByPlatform("acc1", nil).
		Return([]*domain.PlatformPerformance{
			{Platform: domain.PlatformInstagram, Metrics: domain.EngagementMetrics{Likes: 50, Impressions: 200}},
		}, nil)

	engagementRepo.EXPECT().
		SumMetricsByPostForAccount("acc1").
		Return([]*domain.PostTotals{
			{PostID: "post1", Platform: domain.PlatformInstagram, Metrics: domain.EngagementMetrics{Likes: 20, Impressions: 100}},
		}, nil)

	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", gomock.Any(), domain.GranularityDaily, domain.MetricEngagement).
		Return([]*domain.TrendBucket{
			{Bucket: now.AddDate(0, 0, -1), Total: 40},
		}, nil)

	engagementRepo.EXPECT().
		ListSamplesSince("acc1", gomock.Any()).
		Return([]*domain.EngagementSample{
			{DayOfWeek: 2, HourOfDay: 9, Timestamp: now.Add(-time.Hour), TotalEngagement: 100},
		}, nil)

	engagementRepo.EXPECT().
		SumMetricsInRange("acc1", gomock.Any(), gomock.Any()).
		Return(&domain.EngagementMetrics{Likes: 10}, nil).
		Times(2)

	overview, err := service.dashboardOverviewAt("acc1", 30, now)
	require.NoError(t, err)

	assert.Equal(t, "acc1", overview.AccountID)
	assert.Equal(t, 30, overview.RangeDays)
	assert.Equal(t, 12, overview.StatusCounts.Published)
	require.Len(t, overview.Platforms, 1)
	require.Len(t, overview.TopPosts, 1)
	require.NotNil(t, overview.Trends)
	require.Len(t, overview.OptimalTimes, 1)
	require.NotNil(t, overview.Comparison)
}

func TestDashboardOverviewPartialFailure(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	now := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	// A contagem de status falha; o restante do snapshot continua disponível
	postRepo.EXPECT().
		CountByStatus("acc1").
		Return(nil, errors.New("connection refused"))

	engagementRepo.EXPECT().SumMetricsByPlatform("acc1", nil).Return(nil, nil)
	engagementRepo.EXPECT().SumMetricsByPostForAccount("acc1").Return(nil, nil)
	engagementRepo.EXPECT().
		SumMetricByBucket("acc1", gomock.Any(), domain.GranularityDaily, domain.MetricEngagement).
		Return(nil, nil)
	engagementRepo.EXPECT().ListSamplesSince("acc1", gomock.Any()).Return(nil, nil)
	engagementRepo.EXPECT().
		SumMetricsInRange("acc1", gomock.Any(), gomock.Any()).
		Return(&domain.EngagementMetrics{}, nil).
		Times(2)

	overview, err := service.dashboardOverviewAt("acc1", 7, now)
	require.NoError(t, err)

	assert.Equal(t, 0, overview.StatusCounts.Total)
	assert.NotNil(t, overview.Comparison)
}

func TestDashboardOverviewValidation(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetDashboardOverview("", "30d")
	assert.ErrorIs(t, err, ErrMissingAccountID)

	_, err = service.GetDashboardOverview("acc1", "15d")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
