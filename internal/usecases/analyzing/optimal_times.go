package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/pkg/utils"
)

const (
	// Janela de análise dos horários ótimos
	optimalTimesWindowDays = 30

	// Quantidade de recomendações retornadas
	optimalTimesTopSlots = 5

	// Amostras necessárias em um bucket para confiança máxima
	optimalTimesFullSampleSize = 10

	// Amostras acima de média + 3 desvios-padrão são descartadas como outliers
	optimalTimesOutlierStdDevs = 3.0
)

// GetOptimalPostingTimes calcula os melhores horários de publicação da conta
// a partir dos eventos dos últimos 30 dias
func (s *Service) GetOptimalPostingTimes(accountID string) ([]*domain.OptimalTimeSlot, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	var slots []*domain.OptimalTimeSlot

	err := s.cache.GetOrCompute(
		optimalTimesCacheKey(accountID),
		s.ttl.OptimalTimesTTL(),
		&slots,
		func() (interface{}, error) {
			return s.optimalPostingTimesAt(accountID, time.Now().UTC())
		},
	)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// bucketStats acumula as amostras ponderadas de um bucket (dia × hora)
type bucketStats struct {
	dayOfWeek    int
	hourOfDay    int
	weighted     []float64
	filteredMean float64
}

func (s *Service) optimalPostingTimesAt(accountID string, now time.Time) ([]*domain.OptimalTimeSlot, error) {
	since := now.AddDate(0, 0, -optimalTimesWindowDays)

	samples, err := s.engagementRepo.ListSamplesSince(accountID, since)
	if err != nil {
		logrus.Errorf("Erro ao listar amostras de engajamento da conta %s: %v", accountID, err)
		return nil, &AnalyticsError{Err: err, AccountID: accountID, Message: "erro ao listar amostras de engajamento"}
	}

	if len(samples) == 0 {
		return []*domain.OptimalTimeSlot{}, nil
	}

	// Agrupa por (dia da semana, hora do dia) aplicando decaimento por
	// recência: eventos de hoje pesam 2x, eventos com 30 dias pesam 1x
	buckets := make(map[[2]int]*bucketStats)

	for _, sample := range samples {
		ageInDays := now.Sub(sample.Timestamp).Hours() / 24
		weight := math.Pow(2, (optimalTimesWindowDays-ageInDays)/optimalTimesWindowDays)
		weighted := float64(sample.TotalEngagement) * weight

		key := [2]int{sample.DayOfWeek, sample.HourOfDay}
		stats, ok := buckets[key]
		if !ok {
			stats = &bucketStats{dayOfWeek: sample.DayOfWeek, hourOfDay: sample.HourOfDay}
			buckets[key] = stats
		}

		stats.weighted = append(stats.weighted, weighted)
	}

	ranked := make([]*bucketStats, 0, len(buckets))

	for _, stats := range buckets {
		m := mean(stats.weighted)
		sd := stdDevPopulation(stats.weighted, m)
		threshold := m + optimalTimesOutlierStdDevs*sd

		filtered := make([]float64, 0, len(stats.weighted))
		for _, value := range stats.weighted {
			if value <= threshold {
				filtered = append(filtered, value)
			}
		}

		if len(filtered) == 0 {
			stats.filteredMean = m
		} else {
			stats.filteredMean = mean(filtered)
		}

		ranked = append(ranked, stats)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].filteredMean != ranked[j].filteredMean {
			return ranked[i].filteredMean > ranked[j].filteredMean
		}

		if ranked[i].dayOfWeek != ranked[j].dayOfWeek {
			return ranked[i].dayOfWeek < ranked[j].dayOfWeek
		}

		return ranked[i].hourOfDay < ranked[j].hourOfDay
	})

	if len(ranked) > optimalTimesTopSlots {
		ranked = ranked[:optimalTimesTopSlots]
	}

	maxMean := ranked[0].filteredMean

	slots := make([]*domain.OptimalTimeSlot, 0, len(ranked))

	for _, stats := range ranked {
		sampleSize := len(stats.weighted)

		sampleFactor := math.Min(1, float64(sampleSize)/optimalTimesFullSampleSize)

		var relativeFactor float64
		if maxMean > 0 {
			relativeFactor = stats.filteredMean / maxMean
		}

		slots = append(slots, &domain.OptimalTimeSlot{
			DayOfWeek:       stats.dayOfWeek,
			HourOfDay:       stats.hourOfDay,
			AverageScore:    utils.RoundWithTwoDecimalPlace(stats.filteredMean),
			SampleSize:      sampleSize,
			ConfidenceScore: utils.RoundWithTwoDecimalPlace(sampleFactor * relativeFactor),
		})
	}

	return slots, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}

// stdDevPopulation calcula o desvio-padrão populacional (divisor N)
func stdDevPopulation(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		diff := value - mean
		sum += diff * diff
	}

	return math.Sqrt(sum / float64(len(values)))
}
