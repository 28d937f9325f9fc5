// Package scheduler contém os serviços agendados de geração e retenção de dados
package scheduler

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

// Faixas de sorteio das métricas base por tick
const (
	generatorMaxBaseLikes    = 50
	generatorMaxBaseComments = 20
	generatorMaxBaseShares   = 15
	generatorMaxBaseClicks   = 100

	generatorMinBaseImpressions = 100
	generatorMaxBaseImpressions = 1000
)

// Multiplicadores do padrão de engajamento simulado
const (
	generatorBusinessHoursMultiplier = 1.4
	generatorOffHoursMultiplier      = 0.9
	generatorWeekendMultiplier       = 0.7

	generatorDecayWindowDays = 30.0
)

// PerformanceInvalidator remove do cache o desempenho de um post após a
// gravação de novas métricas
type PerformanceInvalidator interface {
	InvalidatePostPerformance(postID string)
}

// EngagementGeneratorService gera eventos sintéticos de engajamento para os
// posts publicados em intervalos regulares
type EngagementGeneratorService struct {
	scheduler           *gocron.Scheduler
	postRepo            repository.PostRepository
	engagementRepo      repository.EngagementRepository
	invalidator         PerformanceInvalidator
	config              config.EngagementGenerator
	rng                 *rand.Rand
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncPosts       int
}

func NewEngagementGeneratorService(
	postRepo repository.PostRepository,
	engagementRepo repository.EngagementRepository,
	invalidator PerformanceInvalidator,
	cfg *config.Config,
	rng *rand.Rand,
) *EngagementGeneratorService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"interval_seconds":   cfg.EngagementGenerator.IntervalSeconds,
		"max_posts_per_tick": cfg.EngagementGenerator.MaxPostsPerTick,
	}).Info("Configuração do gerador de engajamento carregada")

	return &EngagementGeneratorService{
		scheduler:      scheduler,
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		invalidator:    invalidator,
		config:         cfg.EngagementGenerator,
		rng:            rng,
	}
}

func (s *EngagementGeneratorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Gerador de engajamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando gerador de engajamento")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		if err := s.GenerateEngagement(); err != nil {
			logrus.WithError(err).Error("Erro na geração de engajamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de engajamento: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando gerador de engajamento")
		s.scheduler.Stop()
	}()

	return nil
}

// GenerateEngagement executa um tick do gerador: sorteia métricas para cada
// post publicado e grava o incremento no bucket horário correspondente. A
// falha em um post não interrompe os demais.
func (s *EngagementGeneratorService) GenerateEngagement() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração de engajamento já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	posts, err := s.postRepo.ListByStatus(domain.PostStatusPublished, uint64(s.config.MaxPostsPerTick))
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar posts publicados para geração de engajamento")
		return err
	}

	if len(posts) == 0 {
		logrus.Debug("Nenhum post publicado para gerar engajamento")
		s.lastSyncPosts = 0
		return nil
	}

	now := time.Now().UTC()
	generated := 0

	for _, post := range posts {
		metrics := s.syntheticMetrics(post, now)

		event := domain.NewEngagementIncrement(post, now, metrics)

		if err := s.engagementRepo.UpsertIncrement(event); err != nil {
			logrus.WithError(err).WithField("post_id", post.ID).Warn("Erro ao gravar engajamento do post")
			continue
		}

		s.invalidator.InvalidatePostPerformance(post.ID)
		generated++
	}

	s.lastSyncPosts = generated

	logrus.WithFields(logrus.Fields{
		"posts_processed": len(posts),
		"posts_generated": generated,
	}).Info("Geração de engajamento concluída")

	return nil
}

// syntheticMetrics sorteia as métricas base e aplica o multiplicador do
// padrão de engajamento do instante atual
func (s *EngagementGeneratorService) syntheticMetrics(post *domain.Post, now time.Time) domain.EngagementMetrics {
	multiplier := engagementMultiplier(post.PublishedAt, now)

	return domain.EngagementMetrics{
		Likes:       scaleMetric(s.rng.Intn(generatorMaxBaseLikes+1), multiplier),
		Comments:    scaleMetric(s.rng.Intn(generatorMaxBaseComments+1), multiplier),
		Shares:      scaleMetric(s.rng.Intn(generatorMaxBaseShares+1), multiplier),
		Clicks:      scaleMetric(s.rng.Intn(generatorMaxBaseClicks+1), multiplier),
		Impressions: scaleMetric(generatorMinBaseImpressions+s.rng.Intn(generatorMaxBaseImpressions-generatorMinBaseImpressions+1), multiplier),
	}
}

// engagementMultiplier combina os fatores de horário comercial, fim de
// semana e decaimento por idade do post, sempre em UTC
func engagementMultiplier(publishedAt *time.Time, now time.Time) float64 {
	now = now.UTC()

	timeOfDay := generatorOffHoursMultiplier
	if hour := now.Hour(); hour >= 9 && hour < 17 {
		timeOfDay = generatorBusinessHoursMultiplier
	}

	dayOfWeek := 1.0
	if weekday := now.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		dayOfWeek = generatorWeekendMultiplier
	}

	var ageInDays float64
	if publishedAt != nil {
		ageInDays = now.Sub(publishedAt.UTC()).Hours() / 24
	}

	decay := math.Pow(2, math.Max(0, generatorDecayWindowDays-ageInDays)/generatorDecayWindowDays)

	return timeOfDay * dayOfWeek * decay
}

func scaleMetric(base int, multiplier float64) int64 {
	return int64(math.Round(float64(base) * multiplier))
}

// TriggerManualSync inicia manualmente um tick de geração de engajamento
func (s *EngagementGeneratorService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de engajamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de engajamento")
	go s.GenerateEngagement()
}

// GetStatus retorna o status atual do gerador
func (s *EngagementGeneratorService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                s.config.Enabled,
		"interval_seconds":       s.config.IntervalSeconds,
		"max_posts_per_tick":     s.config.MaxPostsPerTick,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_posts":        s.lastSyncPosts,
	}
}
