package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository"
	"github.com/socialpulse/engagement-analytics-api/internal/cache"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
)

// RetentionSyncService remove diariamente os eventos de engajamento mais
// antigos que a janela de retenção e descarta entradas expiradas do cache
type RetentionSyncService struct {
	scheduler           *gocron.Scheduler
	engagementRepo      repository.EngagementRepository
	analyticsCache      *cache.Cache
	config              config.Retention
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncDeleted     int64
}

func NewRetentionSyncService(
	engagementRepo repository.EngagementRepository,
	analyticsCache *cache.Cache,
	cfg *config.Config,
) *RetentionSyncService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.Retention.CronSchedule,
		"retention_days": cfg.Retention.Days,
	}).Info("Configuração da retenção de eventos carregada")

	return &RetentionSyncService{
		scheduler:      scheduler,
		engagementRepo: engagementRepo,
		analyticsCache: analyticsCache,
		config:         cfg.Retention,
	}
}

func (s *RetentionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de eventos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retenção de eventos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.PurgeExpiredData(); err != nil {
			logrus.WithError(err).Error("Erro na retenção de eventos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de eventos: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retenção de eventos")
		s.scheduler.Stop()
	}()

	return nil
}

// PurgeExpiredData remove eventos fora da janela de retenção e entradas
// expiradas do cache de análises
func (s *RetentionSyncService) PurgeExpiredData() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Retenção de eventos já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	deleted, err := s.engagementRepo.DeleteOlderThan(s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover eventos antigos")
		return err
	}

	s.lastSyncDeleted = deleted

	expired := s.analyticsCache.RemoveExpired()

	logrus.WithFields(logrus.Fields{
		"events_deleted":        deleted,
		"cache_entries_expired": expired,
	}).Info("Retenção de eventos concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma execução da retenção
func (s *RetentionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retenção de eventos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando retenção manual de eventos")
	go s.PurgeExpiredData()
}

// GetStatus retorna o status atual da retenção
func (s *RetentionSyncService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"retention_days":         s.config.Days,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_deleted":      s.lastSyncDeleted,
	}
}
