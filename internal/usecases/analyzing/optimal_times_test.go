package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

func sampleAt(dayOfWeek, hourOfDay int, timestamp time.Time, total int64) *domain.EngagementSample {
	return &domain.EngagementSample{
		DayOfWeek:       dayOfWeek,
		HourOfDay:       hourOfDay,
		Timestamp:       timestamp,
		TotalEngagement: total,
	}
}

func TestOptimalTimesEmptyAccount(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(nil, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestOptimalTimesConfidenceGrowsWithSampleSize(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	// Quatro amostras idênticas em um único bucket: melhor bucket com
	// fator relativo 1, confiança limitada pelo tamanho da amostra
	samples := []*domain.EngagementSample{
		sampleAt(2, 10, now, 100),
		sampleAt(2, 10, now, 100),
		sampleAt(2, 10, now, 100),
		sampleAt(2, 10, now, 100),
	}

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(samples, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, 2, slots[0].DayOfWeek)
	assert.Equal(t, 10, slots[0].HourOfDay)
	assert.Equal(t, 4, slots[0].SampleSize)
	assert.Equal(t, 0.4, slots[0].ConfidenceScore)

	// Idade zero dobra o peso do engajamento
	assert.Equal(t, 200.0, slots[0].AverageScore)
}

func TestOptimalTimesRanksBucketsAndBoundsConfidence(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	samples := make([]*domain.EngagementSample, 0, 20)

	// Bucket forte (terça 10h) e bucket fraco (sexta 20h), dez amostras cada
	for i := 0; i < 10; i++ {
		samples = append(samples, sampleAt(2, 10, now, 200))
		samples = append(samples, sampleAt(5, 20, now, 100))
	}

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(samples, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	// Ordenado do melhor para o pior bucket
	assert.Equal(t, 2, slots[0].DayOfWeek)
	assert.Equal(t, 10, slots[0].HourOfDay)
	assert.Equal(t, 5, slots[1].DayOfWeek)
	assert.Equal(t, 20, slots[1].HourOfDay)

	// Melhor bucket com amostra cheia tem confiança máxima; o segundo é
	// proporcional à média relativa
	assert.Equal(t, 1.0, slots[0].ConfidenceScore)
	assert.Equal(t, 0.5, slots[1].ConfidenceScore)

	for _, slot := range slots {
		assert.GreaterOrEqual(t, slot.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, slot.ConfidenceScore, 1.0)
	}
}

func TestOptimalTimesDiscardsOutliers(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	samples := make([]*domain.EngagementSample, 0, 11)
	for i := 0; i < 10; i++ {
		samples = append(samples, sampleAt(3, 9, now, 10))
	}
	samples = append(samples, sampleAt(3, 9, now, 1000))

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(samples, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	// A amostra de 1000 fica acima de média + 3 desvios e é descartada;
	// a média filtrada reflete apenas as amostras regulares (peso 2)
	assert.Equal(t, 20.0, slots[0].AverageScore)
	assert.Equal(t, 11, slots[0].SampleSize)
}

func TestOptimalTimesReturnsAtMostFiveSlots(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	samples := make([]*domain.EngagementSample, 0, 8)
	for hour := 8; hour < 16; hour++ {
		samples = append(samples, sampleAt(1, hour, now, int64(hour*10)))
	}

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(samples, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	assert.Len(t, slots, 5)

	// Melhor horário primeiro
	assert.Equal(t, 15, slots[0].HourOfDay)
}

func TestOptimalTimesMissingAccountID(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetOptimalPostingTimes("")
	assert.ErrorIs(t, err, ErrMissingAccountID)
}

func TestRecencyWeighting(t *testing.T) {
	service, engagementRepo, _ := newTestService(t)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	// Mesmo engajamento bruto: a amostra recente vale o dobro da antiga
	samples := []*domain.EngagementSample{
		sampleAt(2, 10, now, 100),
		sampleAt(4, 15, now.AddDate(0, 0, -30), 100),
	}

	engagementRepo.EXPECT().ListSamplesSince("acc1", now.AddDate(0, 0, -30)).Return(samples, nil)

	slots, err := service.optimalPostingTimesAt("acc1", now)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, 2, slots[0].DayOfWeek)
	assert.Equal(t, 200.0, slots[0].AverageScore)
	assert.Equal(t, 4, slots[1].DayOfWeek)
	assert.Equal(t, 100.0, slots[1].AverageScore)
}
