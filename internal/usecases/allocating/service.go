package allocating

import (
	"database/sql"
	"errors"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
)

var ErrAllocationNotFound = errors.New("monthly allocation not found")

// Calculator recalcula a alocação mensal (dias trabalhados + meta rateada)
// de uma pessoa em um período. O recálculo roda dentro da transação do
// orquestrador para que a mutação e o estado derivado sejam tudo-ou-nada.
type Calculator interface {
	GetByPersonAndPeriod(personID, period string) (*domain.MonthlyAllocation, error)
	RecomputeTx(tx *sql.Tx, personID string, period domain.Period) (*domain.MonthlyAllocation, error)
}

type Service struct {
	noveltyRepo    repository.NoveltyRepository
	budgetRepo     repository.BudgetRepository
	allocationRepo repository.AllocationRepository
	scope          string
	fallbackBase   int
}

func NewService(
	noveltyRepo repository.NoveltyRepository,
	budgetRepo repository.BudgetRepository,
	allocationRepo repository.AllocationRepository,
	scope string,
	fallbackBase int,
) Calculator {
	return &Service{
		noveltyRepo:    noveltyRepo,
		budgetRepo:     budgetRepo,
		allocationRepo: allocationRepo,
		scope:          scope,
		fallbackBase:   fallbackBase,
	}
}

func (s *Service) GetByPersonAndPeriod(personID, period string) (*domain.MonthlyAllocation, error) {
	allocation, err := s.allocationRepo.GetByPersonAndPeriod(personID, period)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, ErrAllocationNotFound
	}
	return allocation, nil
}

func (s *Service) RecomputeTx(tx *sql.Tx, personID string, period domain.Period) (*domain.MonthlyAllocation, error) {
	noveltyRepo := s.noveltyRepo.WithTx(tx)
	budgetRepo := s.budgetRepo.WithTx(tx)
	allocationRepo := s.allocationRepo.WithTx(tx)

	novelties, err := noveltyRepo.FindOverlapping(personID, period.Start(), period.End(), "")
	if err != nil {
		return nil, err
	}

	base, err := s.resolveBaseAmount(budgetRepo, allocationRepo, personID, period)
	if err != nil {
		return nil, err
	}

	daysInMonth := period.DaysInMonth()
	workedDays := WorkedDays(period, novelties)

	allocation := &domain.MonthlyAllocation{
		PersonID:       personID,
		Period:         period.String(),
		BaseAmount:     base,
		WorkedDays:     workedDays,
		DaysInMonth:    daysInMonth,
		ProratedTarget: ProratedTarget(base, workedDays, daysInMonth),
	}

	if err := allocationRepo.SaveOrUpdate(allocation); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"person_id":       personID,
		"period":          allocation.Period,
		"base_amount":     allocation.BaseAmount,
		"worked_days":     allocation.WorkedDays,
		"prorated_target": allocation.ProratedTarget,
	}).Debug("Alocação mensal recalculada")

	return allocation, nil
}

// resolveBaseAmount prefere o Budget ativo do período; na ausência dele, a
// base da alocação já persistida; por último o valor de fallback configurado
func (s *Service) resolveBaseAmount(
	budgetRepo repository.BudgetRepository,
	allocationRepo repository.AllocationRepository,
	personID string,
	period domain.Period,
) (int, error) {
	budget, err := budgetRepo.GetActiveByKey(period.String(), personID, s.scope)
	if err != nil {
		return 0, err
	}
	if budget != nil {
		return budget.Amount, nil
	}

	previous, err := allocationRepo.GetByPersonAndPeriod(personID, period.String())
	if err != nil {
		return 0, err
	}
	if previous != nil {
		return previous.BaseAmount, nil
	}

	return s.fallbackBase, nil
}
