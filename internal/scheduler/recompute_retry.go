package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-compliance-api/internal/config"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
)

// RecomputeRetryConfig representa a configuração do varredor de recálculos
type RecomputeRetryConfig struct {
	CronSchedule string
	Enabled      bool
	MaxAttempts  int
	BatchSize    int
}

// RecomputeRetryService drena periodicamente os jobs de recálculo de
// progresso que ficaram pendentes após falha na etapa pós-commit
type RecomputeRetryService struct {
	scheduler           *gocron.Scheduler
	config              RecomputeRetryConfig
	orchestrator        recomputing.Orchestrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastProcessedCount  int
}

// NewRecomputeRetryService cria uma nova instância do varredor de recálculos
func NewRecomputeRetryService(
	orchestrator recomputing.Orchestrator,
	appConfig *config.Config,
) *RecomputeRetryService {
	retryConfig := RecomputeRetryConfig{
		CronSchedule: appConfig.RecomputeRetry.CronSchedule,
		Enabled:      appConfig.RecomputeRetry.Enabled,
		MaxAttempts:  appConfig.RecomputeRetry.MaxAttempts,
		BatchSize:    appConfig.RecomputeRetry.BatchSize,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retryConfig.CronSchedule,
		"enabled":       retryConfig.Enabled,
		"max_attempts":  retryConfig.MaxAttempts,
		"batch_size":    retryConfig.BatchSize,
	}).Info("Configuração do varredor de recálculos carregada")

	return &RecomputeRetryService{
		scheduler:    scheduler,
		config:       retryConfig,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *RecomputeRetryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de recálculos pendentes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de recálculos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.drainPendingJobs(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de recálculos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de recálculos")
		s.scheduler.Stop()
	}()

	return nil
}

// drainPendingJobs drena um lote de jobs pendentes, em sequência
func (s *RecomputeRetryService) drainPendingJobs(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de recálculos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	processed, err := s.orchestrator.DrainPendingJobs(ctx, s.config.BatchSize, s.config.MaxAttempts)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"processed": processed,
		}).Error("Varredura de recálculos interrompida por erro")
	}

	s.lastProcessedCount = processed
	s.lastSyncCompletedAt = time.Now()

	if processed > 0 {
		logrus.WithFields(logrus.Fields{
			"processed": processed,
			"duration":  time.Since(startTime).String(),
		}).Info("Varredura de recálculos concluída")
	}
}

// TriggerManualSync inicia manualmente uma varredura de recálculos
func (s *RecomputeRetryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de recálculos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de recálculos pendentes")
	go s.drainPendingJobs(context.Background())
}

// GetStatus retorna o status atual da varredura
func (s *RecomputeRetryService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_processed_count":   s.lastProcessedCount,
	}
}
