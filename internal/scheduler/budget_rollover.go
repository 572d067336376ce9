package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-compliance-api/internal/config"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
)

// rolloverActorID identifica o sistema como autor das metas copiadas pela virada
const rolloverActorID = "system"

// BudgetRolloverConfig representa a configuração da virada mensal de orçamentos
type BudgetRolloverConfig struct {
	CronSchedule string
	Enabled      bool
	Scope        string
}

// BudgetRolloverService copia na virada do mês as metas do período anterior
// para as chaves ainda sem orçamento no período corrente
type BudgetRolloverService struct {
	scheduler           *gocron.Scheduler
	config              BudgetRolloverConfig
	orchestrator        recomputing.Orchestrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCopiedCount     int
}

// NewBudgetRolloverService cria uma nova instância do serviço de virada de orçamentos
func NewBudgetRolloverService(
	orchestrator recomputing.Orchestrator,
	appConfig *config.Config,
) *BudgetRolloverService {
	rolloverConfig := BudgetRolloverConfig{
		CronSchedule: appConfig.BudgetRollover.CronSchedule,
		Enabled:      appConfig.BudgetRollover.Enabled,
		Scope:        appConfig.BudgetRollover.Scope,
	}

	if rolloverConfig.Scope == "" {
		rolloverConfig.Scope = domain.BudgetScopeSales
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rolloverConfig.CronSchedule,
		"enabled":       rolloverConfig.Enabled,
		"scope":         rolloverConfig.Scope,
	}).Info("Configuração da virada de orçamentos carregada")

	return &BudgetRolloverService{
		scheduler:    scheduler,
		config:       rolloverConfig,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *BudgetRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Virada mensal de orçamentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da virada de orçamentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rolloverBudgets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar virada de orçamentos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da virada de orçamentos")
		s.scheduler.Stop()
	}()

	return nil
}

// rolloverBudgets copia as metas do mês anterior para o mês corrente sem
// sobrescrever chaves já existentes
func (s *BudgetRolloverService) rolloverBudgets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Virada de orçamentos já em andamento, ignorando")
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

	period := domain.PeriodOf(time.Now())

	logrus.WithFields(logrus.Fields{
		"period": period.String(),
		"scope":  s.config.Scope,
	}).Info("Iniciando virada mensal de orçamentos")

	copied, err := s.orchestrator.CopyBudgetsFromPreviousPeriod(ctx, rolloverActorID, period, s.config.Scope)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"period": period.String(),
		}).Error("Erro na virada mensal de orçamentos")
		return
	}

	s.lastCopiedCount = len(copied)
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"period":   period.String(),
		"copied":   len(copied),
		"duration": time.Since(startTime).String(),
	}).Info("Virada mensal de orçamentos concluída")
}

// TriggerManualSync inicia manualmente uma virada de orçamentos
func (s *BudgetRolloverService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Virada de orçamentos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando virada manual de orçamentos")
	go s.rolloverBudgets(context.Background())
}

// GetStatus retorna o status atual da virada de orçamentos
func (s *BudgetRolloverService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"scope":                  s.config.Scope,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_copied_count":      s.lastCopiedCount,
	}
}
