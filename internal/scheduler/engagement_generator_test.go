package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkg/errors"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository/mocks"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) InvalidatePostPerformance(postID string) {
	f.invalidated = append(f.invalidated, postID)
}

func newTestGenerator(t *testing.T) (*EngagementGeneratorService, *mocks.MockPostRepository, *mocks.MockEngagementRepository, *fakeInvalidator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	postRepo := mocks.NewMockPostRepository(ctrl)
	engagementRepo := mocks.NewMockEngagementRepository(ctrl)
	invalidator := &fakeInvalidator{}

	cfg := &config.Config{
		EngagementGenerator: config.EngagementGenerator{
			IntervalSeconds: 30,
			MaxPostsPerTick: 1000,
			Enabled:         true,
		},
	}

	service := NewEngagementGeneratorService(postRepo, engagementRepo, invalidator, cfg, rand.New(rand.NewSource(1)))

	return service, postRepo, engagementRepo, invalidator
}

func publishedPostAt(id string, publishedAt time.Time) *domain.Post {
	return &domain.Post{
		ID:          id,
		AccountID:   "acc1",
		Platform:    domain.PlatformInstagram,
		Status:      domain.PostStatusPublished,
		PublishedAt: &publishedAt,
	}
}

func TestEngagementMultiplierBusinessHours(t *testing.T) {
	// Quarta-feira às 10h UTC, post recém-publicado: 1.4 * 1.0 * 2.0
	now := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	publishedAt := now

	multiplier := engagementMultiplier(&publishedAt, now)

	assert.InDelta(t, 2.8, multiplier, 0.0001)
}

func TestEngagementMultiplierWeekendOffHours(t *testing.T) {
	// Sábado às 22h UTC, post recém-publicado: 0.9 * 0.7 * 2.0
	now := time.Date(2026, 8, 22, 22, 0, 0, 0, time.UTC)
	publishedAt := now

	multiplier := engagementMultiplier(&publishedAt, now)

	assert.InDelta(t, 1.26, multiplier, 0.0001)
}

func TestEngagementMultiplierDecayFloor(t *testing.T) {
	// Post com 30 dias ou mais não recebe amplificação por recência
	now := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	publishedAt := now.AddDate(0, 0, -45)

	multiplier := engagementMultiplier(&publishedAt, now)

	assert.InDelta(t, 1.4, multiplier, 0.0001)
}

func TestEngagementMultiplierUnpublished(t *testing.T) {
	// Sem data de publicação a idade é zero e o decaimento fica no máximo
	now := time.Date(2026, 8, 22, 22, 0, 0, 0, time.UTC)

	multiplier := engagementMultiplier(nil, now)

	assert.InDelta(t, 1.26, multiplier, 0.0001)
}

func TestGenerateEngagementUpsertsAndInvalidates(t *testing.T) {
	service, postRepo, engagementRepo, invalidator := newTestGenerator(t)

	posts := []*domain.Post{
		publishedPostAt("post1", time.Now().UTC().AddDate(0, 0, -1)),
		publishedPostAt("post2", time.Now().UTC().AddDate(0, 0, -10)),
	}

	postRepo.EXPECT().ListByStatus(domain.PostStatusPublished, uint64(1000)).Return(posts, nil)

	var events []*domain.EngagementEvent
	engagementRepo.EXPECT().
		UpsertIncrement(gomock.Any()).
		DoAndReturn(func(event *domain.EngagementEvent) error {
			events = append(events, event)
			return nil
		}).
		Times(2)

	err := service.GenerateEngagement()
	require.NoError(t, err)

	assert.Equal(t, []string{"post1", "post2"}, invalidator.invalidated)

	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "acc1", event.AccountID)
		assert.Equal(t, event.Timestamp.Hour(), event.HourOfDay)
		assert.Equal(t, int(event.Timestamp.Weekday()), event.DayOfWeek)
		assert.GreaterOrEqual(t, event.Metrics.Impressions, int64(0))
	}

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sync_posts"])
}

func TestGenerateEngagementIsolatesFailures(t *testing.T) {
	service, postRepo, engagementRepo, invalidator := newTestGenerator(t)

	posts := []*domain.Post{
		publishedPostAt("post1", time.Now().UTC()),
		publishedPostAt("post2", time.Now().UTC()),
	}

	postRepo.EXPECT().ListByStatus(domain.PostStatusPublished, uint64(1000)).Return(posts, nil)

	gomock.InOrder(
		engagementRepo.EXPECT().
			UpsertIncrement(gomock.Any()).
			Return(errors.New("deadlock detected")),
		engagementRepo.EXPECT().
			UpsertIncrement(gomock.Any()).
			Return(nil),
	)

	err := service.GenerateEngagement()
	require.NoError(t, err)

	// Apenas o post gravado com sucesso é invalidado no cache
	assert.Equal(t, []string{"post2"}, invalidator.invalidated)

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sync_posts"])
}

func TestGenerateEngagementNoPublishedPosts(t *testing.T) {
	service, postRepo, _, invalidator := newTestGenerator(t)

	postRepo.EXPECT().ListByStatus(domain.PostStatusPublished, uint64(1000)).Return(nil, nil)

	err := service.GenerateEngagement()
	require.NoError(t, err)
	assert.Empty(t, invalidator.invalidated)
}
