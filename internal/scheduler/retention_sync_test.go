package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository/mocks"
	"github.com/socialpulse/engagement-analytics-api/internal/cache"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
)

func newTestRetention(t *testing.T) (*RetentionSyncService, *mocks.MockEngagementRepository, *cache.Cache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engagementRepo := mocks.NewMockEngagementRepository(ctrl)
	analyticsCache := cache.New()

	cfg := &config.Config{
		Retention: config.Retention{
			CronSchedule: "0 2 * * *",
			Days:         90,
			Enabled:      true,
		},
	}

	return NewRetentionSyncService(engagementRepo, analyticsCache, cfg), engagementRepo, analyticsCache
}

func TestPurgeExpiredData(t *testing.T) {
	service, engagementRepo, analyticsCache := newTestRetention(t)

	// Entrada expirada que deve ser varrida junto com os eventos antigos
	err := analyticsCache.GetOrCompute("performance:post1", time.Nanosecond, new(int), func() (interface{}, error) {
		return 1, nil
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	engagementRepo.EXPECT().DeleteOlderThan(90).Return(int64(42), nil)

	err = service.PurgeExpiredData()
	require.NoError(t, err)

	assert.Equal(t, 0, analyticsCache.Len())

	status := service.GetStatus()
	assert.Equal(t, int64(42), status["last_sync_deleted"])
}

func TestPurgeExpiredDataRepositoryError(t *testing.T) {
	service, engagementRepo, _ := newTestRetention(t)

	engagementRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), errors.New("connection refused"))

	err := service.PurgeExpiredData()
	assert.Error(t, err)
}
