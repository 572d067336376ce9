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
	budgetsTable = "budgets b"

	// Código do postgres para violação de unicidade
	pqUniqueViolation = "23505"
)

// ErrDuplicateBudget indica uma escrita rejeitada pela unicidade
// (período, pessoa, escopo)
var ErrDuplicateBudget = fmt.Errorf("orçamento duplicado para (período, pessoa, escopo)")

type BudgetRepository interface {
	GetByID(id string) (*domain.Budget, error)
	GetByKey(period, personID, scope string) (*domain.Budget, error)
	// GetActiveByKey retorna apenas orçamentos com status active
	GetActiveByKey(period, personID, scope string) (*domain.Budget, error)
	ListByPeriodScope(period, scope string) ([]*domain.Budget, error)
	// SaveOrUpdate insere ou atualiza pela chave natural (período, pessoa, escopo)
	SaveOrUpdate(budget *domain.Budget) (*domain.Budget, error)
	// InsertIgnoreDuplicate insere somente se a chave natural ainda não existe;
	// retorna false quando a linha já existia (nunca sobrescreve)
	InsertIgnoreDuplicate(budget *domain.Budget) (bool, error)
	Update(budget *domain.Budget) error
	WithTx(tx *sql.Tx) BudgetRepository
}

type budgetRepository struct {
	q postgres.Queryer
}

func NewBudgetRepository(conn *postgres.Connection) BudgetRepository {
	return &budgetRepository{
		q: conn,
	}
}

func (r *budgetRepository) WithTx(tx *sql.Tx) BudgetRepository {
	return &budgetRepository{q: tx}
}

const budgetColumns = "b.id, b.period, b.person_id, b.scope, b.amount, b.status, b.created_by, b.created_at, b.updated_at"

func (r *budgetRepository) GetByID(id string) (*domain.Budget, error) {
	query, args, err := squirrel.
		Select(budgetColumns).
		From(budgetsTable).
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.q.QueryRow(query, args...))
}

func (r *budgetRepository) GetByKey(period, personID, scope string) (*domain.Budget, error) {
	query, args, err := squirrel.
		Select(budgetColumns).
		From(budgetsTable).
		Where(squirrel.Eq{"b.period": period, "b.person_id": personID, "b.scope": scope}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.q.QueryRow(query, args...))
}

func (r *budgetRepository) GetActiveByKey(period, personID, scope string) (*domain.Budget, error) {
	query, args, err := squirrel.
		Select(budgetColumns).
		From(budgetsTable).
		Where(squirrel.Eq{
			"b.period":    period,
			"b.person_id": personID,
			"b.scope":     scope,
			"b.status":    domain.BudgetStatusActive,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.q.QueryRow(query, args...))
}

func (r *budgetRepository) ListByPeriodScope(period, scope string) ([]*domain.Budget, error) {
	query, args, err := squirrel.
		Select(budgetColumns).
		From(budgetsTable).
		Where(squirrel.Eq{"b.period": period, "b.scope": scope}).
		OrderBy("b.person_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		budget := &domain.Budget{}
		if err := r.scanInto(rows, budget); err != nil {
			return nil, fmt.Errorf("erro ao escanear orçamentos: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return budgets, nil
}

func (r *budgetRepository) SaveOrUpdate(budget *domain.Budget) (*domain.Budget, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("budgets").
		Columns("id", "period", "person_id", "scope", "amount", "status", "created_by").
		Values(
			budget.ID,
			budget.Period,
			budget.PersonID,
			budget.Scope,
			budget.Amount,
			budget.Status,
			budget.CreatedBy,
		).
		Suffix(`
			ON CONFLICT (period, person_id, scope) DO UPDATE SET
				amount = EXCLUDED.amount,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING id, period, person_id, scope, amount, status, created_by, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	saved, err := r.scanOne(r.q.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return saved, nil
}

func (r *budgetRepository) InsertIgnoreDuplicate(budget *domain.Budget) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("budgets").
		Columns("id", "period", "person_id", "scope", "amount", "status", "created_by").
		Values(
			budget.ID,
			budget.Period,
			budget.PersonID,
			budget.Scope,
			budget.Amount,
			budget.Status,
			budget.CreatedBy,
		).
		Suffix("ON CONFLICT (period, person_id, scope) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *budgetRepository) Update(budget *domain.Budget) error {
	query, args, err := squirrel.StatementBuilder.
		Update("budgets").
		Set("amount", budget.Amount).
		Set("status", budget.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": budget.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicateBudget
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *budgetRepository) scanOne(row *sql.Row) (*domain.Budget, error) {
	budget := &domain.Budget{}
	err := row.Scan(
		&budget.ID,
		&budget.Period,
		&budget.PersonID,
		&budget.Scope,
		&budget.Amount,
		&budget.Status,
		&budget.CreatedBy,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear orçamento: %w", err)
	}

	return budget, nil
}

func (r *budgetRepository) scanInto(rows *sql.Rows, budget *domain.Budget) error {
	return rows.Scan(
		&budget.ID,
		&budget.Period,
		&budget.PersonID,
		&budget.Scope,
		&budget.Amount,
		&budget.Status,
		&budget.CreatedBy,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
}
