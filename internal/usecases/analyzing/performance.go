package analyzing

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/pkg/utils"
)

// Pesos da nota composta de desempenho de um post
const (
	performanceWeightEngagementRate = 0.4
	performanceWeightCTR            = 0.3
	performanceWeightShares         = 0.3
)

// GetPostPerformance obtém as métricas consolidadas de desempenho de um post,
// servindo do cache quando disponível
func (s *Service) GetPostPerformance(postID string) (*domain.PostPerformance, error) {
	if postID == "" {
		return nil, ErrMissingPostID
	}

	var performance domain.PostPerformance

	err := s.cache.GetOrCompute(
		performanceCacheKey(postID),
		s.ttl.PerformanceTTL(),
		&performance,
		func() (interface{}, error) {
			return s.postPerformanceAt(postID, time.Now().UTC())
		},
	)
	if err != nil {
		return nil, err
	}

	return &performance, nil
}

func (s *Service) postPerformanceAt(postID string, now time.Time) (*domain.PostPerformance, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		logrus.Errorf("Erro ao buscar o post %s: %v", postID, err)
		return nil, &AnalyticsError{Err: err, PostID: postID, Message: "erro ao buscar o post"}
	}

	if post == nil {
		return nil, &AnalyticsError{Err: ErrPostNotFound, PostID: postID}
	}

	metrics, _, err := s.engagementRepo.SumMetricsByPost(postID)
	if err != nil {
		logrus.Errorf("Erro ao somar métricas do post %s: %v", postID, err)
		return nil, &AnalyticsError{Err: err, PostID: postID, Message: "erro ao consolidar métricas do post"}
	}

	if metrics == nil {
		metrics = &domain.EngagementMetrics{}
	}

	totalEngagement := metrics.TotalEngagement()

	var engagementRate, clickThroughRate float64
	if metrics.Impressions > 0 {
		engagementRate = float64(totalEngagement) / float64(metrics.Impressions) * 100
		clickThroughRate = float64(metrics.Clicks) / float64(metrics.Impressions) * 100
	}

	// Posts ainda não publicados usam o instante atual como referência,
	// resultando em zero horas desde a publicação
	publishReference := now
	if post.PublishedAt != nil {
		publishReference = *post.PublishedAt
	}

	hoursSincePublish := now.Sub(publishReference).Hours()
	avgEngagementPerHour := float64(totalEngagement) / math.Max(1, hoursSincePublish)

	performanceScore := engagementRate*performanceWeightEngagementRate +
		clickThroughRate*performanceWeightCTR +
		float64(metrics.Shares)*performanceWeightShares

	return &domain.PostPerformance{
		PostID:                   post.ID,
		AccountID:                post.AccountID,
		Platform:                 post.Platform,
		PublishedAt:              post.PublishedAt,
		Metrics:                  *metrics,
		TotalEngagement:          totalEngagement,
		EngagementRate:           utils.RoundWithTwoDecimalPlace(engagementRate),
		ClickThroughRate:         utils.RoundWithTwoDecimalPlace(clickThroughRate),
		AverageEngagementPerHour: utils.RoundWithTwoDecimalPlace(avgEngagementPerHour),
		PerformanceScore:         utils.RoundWithTwoDecimalPlace(performanceScore),
	}, nil
}
