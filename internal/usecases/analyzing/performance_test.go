package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository/mocks"
	"github.com/socialpulse/engagement-analytics-api/internal/cache"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockEngagementRepository, *mocks.MockPostRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engagementRepo := mocks.NewMockEngagementRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)

	cfg := &config.Config{
		AnalyticsCache: config.AnalyticsCacheConfig{
			PerformanceSeconds:  600,
			OptimalTimesSeconds: 3600,
			TrendsSeconds:       900,
			PlatformsSeconds:    900,
			TopPostsSeconds:     300,
			ComparisonSeconds:   300,
			DashboardSeconds:    300,
		},
	}

	return NewService(cfg, cache.New(), engagementRepo, postRepo), engagementRepo, postRepo
}

func TestPostPerformanceScore(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	publishedAt := now.Add(-10 * time.Hour)

	post := &domain.Post{
		ID:          "post1",
		AccountID:   "acc1",
		Platform:    domain.PlatformInstagram,
		Status:      domain.PostStatusPublished,
		PublishedAt: &publishedAt,
	}

	postRepo.EXPECT().GetByID("post1").Return(post, nil)
	engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{
		Likes:       150,
		Comments:    30,
		Shares:      20,
		Clicks:      50,
		Impressions: 1000,
	}, int64(12), nil)

	performance, err := service.postPerformanceAt("post1", now)
	require.NoError(t, err)

	// 200 de engajamento sobre 1000 impressões
	assert.Equal(t, int64(200), performance.TotalEngagement)
	assert.Equal(t, 20.0, performance.EngagementRate)
	assert.Equal(t, 5.0, performance.ClickThroughRate)

	// 20*0.4 + 5*0.3 + 20*0.3
	assert.Equal(t, 15.5, performance.PerformanceScore)

	// 200 de engajamento em 10 horas
	assert.Equal(t, 20.0, performance.AverageEngagementPerHour)
}

func TestPostPerformanceZeroImpressions(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	publishedAt := now.Add(-2 * time.Hour)

	postRepo.EXPECT().GetByID("post1").Return(&domain.Post{
		ID:          "post1",
		AccountID:   "acc1",
		Platform:    domain.PlatformFacebook,
		PublishedAt: &publishedAt,
	}, nil)
	engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{
		Likes:  10,
		Clicks: 5,
	}, int64(1), nil)

	performance, err := service.postPerformanceAt("post1", now)
	require.NoError(t, err)

	// Sem impressões as taxas são zero em vez de divisão por zero
	assert.Equal(t, 0.0, performance.EngagementRate)
	assert.Equal(t, 0.0, performance.ClickThroughRate)
	assert.Equal(t, 5.0, performance.AverageEngagementPerHour)
}

func TestPostPerformanceRecentPostUsesMinimumOneHour(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	publishedAt := now.Add(-10 * time.Minute)

	postRepo.EXPECT().GetByID("post1").Return(&domain.Post{
		ID:          "post1",
		AccountID:   "acc1",
		Platform:    domain.PlatformTwitter,
		PublishedAt: &publishedAt,
	}, nil)
	engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{
		Likes:       30,
		Impressions: 100,
	}, int64(1), nil)

	performance, err := service.postPerformanceAt("post1", now)
	require.NoError(t, err)

	// Post com menos de uma hora usa o piso de uma hora
	assert.Equal(t, 30.0, performance.AverageEngagementPerHour)
}

func TestPostPerformanceNotFoundIsNotCached(t *testing.T) {
	service, _, postRepo := newTestService(t)

	// Duas chamadas porque o erro não deve deixar entrada no cache
	postRepo.EXPECT().GetByID("ghost").Return(nil, nil).Times(2)

	_, err := service.GetPostPerformance("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPostNotFound))

	_, err = service.GetPostPerformance("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPostNotFound))
}

func TestPostPerformanceServedFromCache(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	publishedAt := time.Now().UTC().Add(-5 * time.Hour)

	postRepo.EXPECT().GetByID("post1").Return(&domain.Post{
		ID:          "post1",
		AccountID:   "acc1",
		Platform:    domain.PlatformLinkedin,
		PublishedAt: &publishedAt,
	}, nil).Times(1)
	engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{
		Likes:       10,
		Impressions: 100,
	}, int64(3), nil).Times(1)

	first, err := service.GetPostPerformance("post1")
	require.NoError(t, err)

	second, err := service.GetPostPerformance("post1")
	require.NoError(t, err)

	assert.Equal(t, first.TotalEngagement, second.TotalEngagement)
	assert.Equal(t, first.EngagementRate, second.EngagementRate)
}

func TestPostPerformanceInvalidation(t *testing.T) {
	service, engagementRepo, postRepo := newTestService(t)

	publishedAt := time.Now().UTC().Add(-5 * time.Hour)
	post := &domain.Post{
		ID:          "post1",
		AccountID:   "acc1",
		Platform:    domain.PlatformInstagram,
		PublishedAt: &publishedAt,
	}

	// Recalcula após a invalidação feita pelo gerador
	postRepo.EXPECT().GetByID("post1").Return(post, nil).Times(2)
	gomock.InOrder(
		engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{Likes: 10, Impressions: 100}, int64(1), nil),
		engagementRepo.EXPECT().SumMetricsByPost("post1").Return(&domain.EngagementMetrics{Likes: 20, Impressions: 100}, int64(2), nil),
	)

	first, err := service.GetPostPerformance("post1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.TotalEngagement)

	service.InvalidatePostPerformance("post1")

	second, err := service.GetPostPerformance("post1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), second.TotalEngagement)
}

func TestPostPerformanceMissingID(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetPostPerformance("")
	assert.ErrorIs(t, err, ErrMissingPostID)
	assert.True(t, IsValidationError(err))
}
