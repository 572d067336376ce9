package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	recomputeJobsTable = "recompute_jobs rj"
)

// RecomputeJobRepository é a fila persistida da etapa 2 da saga: jobs de
// recálculo de ProgressRecord por (pessoa, período).
type RecomputeJobRepository interface {
	// Enqueue insere o job; se já existe um job pendente para a mesma
	// (pessoa, período), mantém o existente e retorna o id dele
	Enqueue(job *domain.RecomputeJob) (*domain.RecomputeJob, error)
	ListPending(limit, maxAttempts int) ([]*domain.RecomputeJob, error)
	MarkDone(id string) error
	MarkFailed(id string, lastError string) error
	WithTx(tx *sql.Tx) RecomputeJobRepository
}

type recomputeJobRepository struct {
	q postgres.Queryer
}

func NewRecomputeJobRepository(conn *postgres.Connection) RecomputeJobRepository {
	return &recomputeJobRepository{
		q: conn,
	}
}

func (r *recomputeJobRepository) WithTx(tx *sql.Tx) RecomputeJobRepository {
	return &recomputeJobRepository{q: tx}
}

const recomputeJobColumns = "rj.id, rj.person_id, rj.period, rj.status, rj.attempts, rj.last_error, rj.created_at, rj.updated_at, rj.done_at"

func (r *recomputeJobRepository) Enqueue(job *domain.RecomputeJob) (*domain.RecomputeJob, error) {
	// Índice único parcial em (person_id, period) WHERE status = 'pending'
	// garante no máximo um job pendente por alvo
	query, args, err := squirrel.StatementBuilder.
		Insert("recompute_jobs").
		Columns("id", "person_id", "period", "status").
		Values(job.ID, job.PersonID, job.Period, domain.RecomputeJobPending).
		Suffix("ON CONFLICT (person_id, period) WHERE status = 'pending' DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.q.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return r.getPendingByTarget(job.PersonID, job.Period)
}

func (r *recomputeJobRepository) getPendingByTarget(personID, period string) (*domain.RecomputeJob, error) {
	query, args, err := squirrel.
		Select(recomputeJobColumns).
		From(recomputeJobsTable).
		Where(squirrel.Eq{
			"rj.person_id": personID,
			"rj.period":    period,
			"rj.status":    domain.RecomputeJobPending,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	job := &domain.RecomputeJob{}
	row := r.q.QueryRow(query, args...)
	err = row.Scan(
		&job.ID,
		&job.PersonID,
		&job.Period,
		&job.Status,
		&job.Attempts,
		&job.LastError,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.DoneAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear job de recálculo: %w", err)
	}

	return job, nil
}

func (r *recomputeJobRepository) ListPending(limit, maxAttempts int) ([]*domain.RecomputeJob, error) {
	query, args, err := squirrel.
		Select(recomputeJobColumns).
		From(recomputeJobsTable).
		Where(squirrel.Eq{"rj.status": domain.RecomputeJobPending}).
		Where(squirrel.Lt{"rj.attempts": maxAttempts}).
		OrderBy("rj.created_at ASC").
		Limit(uint64(limit)).
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

	jobs := make([]*domain.RecomputeJob, 0)
	for rows.Next() {
		job := &domain.RecomputeJob{}
		err := rows.Scan(
			&job.ID,
			&job.PersonID,
			&job.Period,
			&job.Status,
			&job.Attempts,
			&job.LastError,
			&job.CreatedAt,
			&job.UpdatedAt,
			&job.DoneAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear jobs de recálculo: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}

func (r *recomputeJobRepository) MarkDone(id string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("recompute_jobs").
		Set("status", domain.RecomputeJobDone).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("last_error", nil).
		Set("done_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *recomputeJobRepository) MarkFailed(id string, lastError string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("recompute_jobs").
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("last_error", lastError).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
