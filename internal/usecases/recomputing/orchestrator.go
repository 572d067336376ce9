package recomputing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/allocating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/budgeting"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/progressing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/visibility"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/utils"
)

var ErrForbidden = errors.New("actor cannot mutate records for this person")

// target é um alvo de recálculo: uma pessoa em um período
type target struct {
	personID string
	period   domain.Period
}

// Orchestrator sequencia toda mutação de Budget/Novelty em duas etapas:
//
//	RECEIVED → VALIDATED → PERSISTED(tx) → ALLOCATIONS_RECOMPUTED(tx) →
//	COMMITTED → PROGRESS_RECOMPUTED(best-effort) → DONE
//
// A etapa 1 (mutação + alocações de todos os períodos afetados) é atômica.
// A etapa 2 enfileira jobs de progresso por (pessoa, período) e os drena em
// sequência, fora de transação: períodos já recalculados permanecem
// confirmados mesmo quando um lote multi-período falha no meio.
type Orchestrator interface {
	CreateNovelty(ctx context.Context, actor *domain.Claims, req domain.CreateNoveltyRequest) (*domain.Novelty, error)
	UpdateNovelty(ctx context.Context, actor *domain.Claims, id string, patch domain.NoveltyPatch) (*domain.Novelty, error)
	DeleteNovelty(ctx context.Context, actor *domain.Claims, id string) error

	UpsertBudgetBatch(ctx context.Context, actor *domain.Claims, req domain.BudgetBatchRequest) ([]*domain.Budget, error)
	UpdateBudget(ctx context.Context, actor *domain.Claims, id string, patch domain.BudgetPatch) (*domain.Budget, error)
	CopyBudgetsFromPreviousPeriod(ctx context.Context, actorID string, period domain.Period, scope string) ([]*domain.Budget, error)

	// DrainPendingJobs reexecuta jobs de progresso pendentes (varredor)
	DrainPendingJobs(ctx context.Context, limit, maxAttempts int) (int, error)
}

type Service struct {
	conn       postgres.Conn
	novelties  novelty.Store
	budgets    budgeting.Store
	calculator allocating.Calculator
	progress   progressing.Aggregator
	jobRepo    repository.RecomputeJobRepository
	policy     visibility.Policy
}

func NewService(
	conn postgres.Conn,
	novelties novelty.Store,
	budgets budgeting.Store,
	calculator allocating.Calculator,
	progress progressing.Aggregator,
	jobRepo repository.RecomputeJobRepository,
	policy visibility.Policy,
) Orchestrator {
	return &Service{
		conn:       conn,
		novelties:  novelties,
		budgets:    budgets,
		calculator: calculator,
		progress:   progress,
		jobRepo:    jobRepo,
		policy:     policy,
	}
}

func (s *Service) CreateNovelty(ctx context.Context, actor *domain.Claims, req domain.CreateNoveltyRequest) (*domain.Novelty, error) {
	// Validação antes de qualquer escrita
	if err := s.novelties.ValidateCreate(req); err != nil {
		return nil, err
	}
	if err := s.authorize(actor, req.PersonID); err != nil {
		return nil, err
	}

	var created *domain.Novelty
	err := s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		record, periods, err := s.novelties.CreateTx(tx, req, actor.PersonID)
		if err != nil {
			return nil, err
		}
		created = record
		return targetsFor(record.PersonID, periods), nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateNovelty(ctx context.Context, actor *domain.Claims, id string, patch domain.NoveltyPatch) (*domain.Novelty, error) {
	existing, err := s.novelties.GetByID(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, existing.PersonID); err != nil {
		return nil, err
	}

	var updated *domain.Novelty
	err = s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		record, periods, err := s.novelties.UpdateTx(tx, id, patch)
		if err != nil {
			return nil, err
		}
		updated = record
		return targetsFor(record.PersonID, periods), nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteNovelty(ctx context.Context, actor *domain.Claims, id string) error {
	existing, err := s.novelties.GetByID(actor, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, existing.PersonID); err != nil {
		return err
	}

	return s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		record, periods, err := s.novelties.DeleteTx(tx, id)
		if err != nil {
			return nil, err
		}
		return targetsFor(record.PersonID, periods), nil
	})
}

func (s *Service) UpsertBudgetBatch(ctx context.Context, actor *domain.Claims, req domain.BudgetBatchRequest) ([]*domain.Budget, error) {
	if err := s.budgets.ValidateBatch(req); err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	var affected []*domain.Budget
	err = s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		budgets, err := s.budgets.UpsertBatchTx(tx, req, actor.PersonID)
		if err != nil {
			return nil, err
		}
		affected = budgets

		targets := make([]target, 0, len(budgets))
		for _, budget := range budgets {
			targets = append(targets, target{personID: budget.PersonID, period: period})
		}
		return targets, nil
	})
	if err != nil {
		return nil, err
	}

	return affected, nil
}

func (s *Service) UpdateBudget(ctx context.Context, actor *domain.Claims, id string, patch domain.BudgetPatch) (*domain.Budget, error) {
	var updated *domain.Budget
	err := s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		budget, err := s.budgets.UpdateByIDTx(tx, id, patch, actor.PersonID)
		if err != nil {
			return nil, err
		}
		updated = budget

		period, err := domain.ParsePeriod(budget.Period)
		if err != nil {
			return nil, err
		}
		// Só o período do orçamento alterado é retrabalhado; nenhuma outra
		// pessoa ou período é tocado
		return []target{{personID: budget.PersonID, period: period}}, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) CopyBudgetsFromPreviousPeriod(ctx context.Context, actorID string, period domain.Period, scope string) ([]*domain.Budget, error) {
	var copied []*domain.Budget
	err := s.runAtomic(ctx, func(tx *sql.Tx) ([]target, error) {
		budgets, err := s.budgets.CopyFromPreviousPeriodTx(tx, period, scope, actorID)
		if err != nil {
			return nil, err
		}
		copied = budgets

		targets := make([]target, 0, len(budgets))
		for _, budget := range budgets {
			targets = append(targets, target{personID: budget.PersonID, period: period})
		}
		return targets, nil
	})
	if err != nil {
		return nil, err
	}

	return copied, nil
}

// runAtomic executa a etapa 1 da saga (mutação + recálculo de alocações +
// enfileiramento dos jobs de progresso) dentro de uma transação e, após o
// commit, drena os jobs da etapa 2. Os jobs são escritos na mesma transação
// da mutação: uma queda entre commit e drenagem deixa os jobs pendentes para
// o varredor em vez de perdê-los.
func (s *Service) runAtomic(ctx context.Context, mutate func(tx *sql.Tx) ([]target, error)) error {
	var jobs []*domain.RecomputeJob

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		affected, err := mutate(tx)
		if err != nil {
			return err
		}

		for _, tg := range affected {
			if _, err := s.calculator.RecomputeTx(tx, tg.personID, tg.period); err != nil {
				return err
			}
		}

		enqueued, err := s.enqueueTargetsTx(tx, affected)
		if err != nil {
			return err
		}

		jobs = enqueued
		return nil
	})
	if err != nil {
		return err
	}

	s.drainJobs(jobs)
	return nil
}

func (s *Service) enqueueTargetsTx(tx *sql.Tx, targets []target) ([]*domain.RecomputeJob, error) {
	repo := s.jobRepo.WithTx(tx)

	jobs := make([]*domain.RecomputeJob, 0, len(targets))
	for _, tg := range targets {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		job, err := repo.Enqueue(&domain.RecomputeJob{
			ID:       id,
			PersonID: tg.personID,
			Period:   tg.period.String(),
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao enfileirar job de recálculo de progresso: %w", err)
		}
		if job != nil {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// drainJobs roda a etapa 2 em sequência. Fail-fast: o primeiro erro
// interrompe o lote e deixa os jobs restantes pendentes para o varredor;
// períodos já recalculados permanecem.
func (s *Service) drainJobs(jobs []*domain.RecomputeJob) {
	for _, job := range jobs {
		if err := s.runJob(job); err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"job_id":    job.ID,
				"person_id": job.PersonID,
				"period":    job.Period,
			}).Error("Erro no recálculo de progresso; job permanece pendente")
			return
		}
	}
}

func (s *Service) runJob(job *domain.RecomputeJob) error {
	period, err := domain.ParsePeriod(job.Period)
	if err != nil {
		return err
	}

	if _, err := s.progress.Recompute(job.PersonID, period); err != nil {
		if markErr := s.jobRepo.MarkFailed(job.ID, err.Error()); markErr != nil {
			log.L.WithError(markErr).Error("Erro ao marcar job de recálculo como falho")
		}
		return err
	}

	return s.jobRepo.MarkDone(job.ID)
}

func (s *Service) DrainPendingJobs(ctx context.Context, limit, maxAttempts int) (int, error) {
	jobs, err := s.jobRepo.ListPending(limit, maxAttempts)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return processed, ctx.Err()
		default:
		}

		if err := s.runJob(job); err != nil {
			return processed, err
		}
		processed++
	}

	return processed, nil
}

func (s *Service) authorize(actor *domain.Claims, personID string) error {
	scope, err := s.policy.Resolve(actor)
	if err != nil {
		return err
	}
	if !scope.Allows(personID) {
		return ErrForbidden
	}
	return nil
}

func targetsFor(personID string, periods []domain.Period) []target {
	targets := make([]target, 0, len(periods))
	for _, period := range periods {
		targets = append(targets, target{personID: personID, period: period})
	}
	return targets
}
