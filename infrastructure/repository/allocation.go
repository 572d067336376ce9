package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	monthlyAllocationsTable = "monthly_allocations ma"
)

type AllocationRepository interface {
	GetByPersonAndPeriod(personID, period string) (*domain.MonthlyAllocation, error)
	// SaveOrUpdate faz upsert pela chave natural (pessoa, período); reexecutar
	// com os mesmos dados converge para o mesmo estado
	SaveOrUpdate(allocation *domain.MonthlyAllocation) error
	WithTx(tx *sql.Tx) AllocationRepository
}

type allocationRepository struct {
	q postgres.Queryer
}

func NewAllocationRepository(conn *postgres.Connection) AllocationRepository {
	return &allocationRepository{
		q: conn,
	}
}

func (r *allocationRepository) WithTx(tx *sql.Tx) AllocationRepository {
	return &allocationRepository{q: tx}
}

func (r *allocationRepository) GetByPersonAndPeriod(personID, period string) (*domain.MonthlyAllocation, error) {
	query, args, err := squirrel.
		Select("ma.id, ma.person_id, ma.period, ma.base_amount, ma.worked_days, ma.days_in_month, ma.prorated_target, ma.created_at, ma.updated_at").
		From(monthlyAllocationsTable).
		Where(squirrel.Eq{"ma.person_id": personID, "ma.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	allocation := &domain.MonthlyAllocation{}
	row := r.q.QueryRow(query, args...)
	err = row.Scan(
		&allocation.ID,
		&allocation.PersonID,
		&allocation.Period,
		&allocation.BaseAmount,
		&allocation.WorkedDays,
		&allocation.DaysInMonth,
		&allocation.ProratedTarget,
		&allocation.CreatedAt,
		&allocation.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alocação mensal: %w", err)
	}

	return allocation, nil
}

func (r *allocationRepository) SaveOrUpdate(allocation *domain.MonthlyAllocation) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_allocations").
		Columns("person_id", "period", "base_amount", "worked_days", "days_in_month", "prorated_target").
		Values(
			allocation.PersonID,
			allocation.Period,
			allocation.BaseAmount,
			allocation.WorkedDays,
			allocation.DaysInMonth,
			allocation.ProratedTarget,
		).
		Suffix(`
			ON CONFLICT (person_id, period) DO UPDATE SET
				base_amount = EXCLUDED.base_amount,
				worked_days = EXCLUDED.worked_days,
				days_in_month = EXCLUDED.days_in_month,
				prorated_target = EXCLUDED.prorated_target,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.q.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
