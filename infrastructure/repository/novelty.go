package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	noveltiesTable = "novelties n"
)

type NoveltyRepository interface {
	GetByID(id string) (*domain.Novelty, error)
	ListByPersonIDs(personIDs []string) ([]*domain.Novelty, error)
	// FindOverlapping retorna as novidades da pessoa cujo intervalo cruza
	// [start, end] (datas inclusivas), excluindo excludeID quando informado
	FindOverlapping(personID string, start, end time.Time, excludeID string) ([]*domain.Novelty, error)
	Insert(novelty *domain.Novelty) error
	Update(novelty *domain.Novelty) error
	Delete(id string) error
	WithTx(tx *sql.Tx) NoveltyRepository
}

type noveltyRepository struct {
	q postgres.Queryer
}

func NewNoveltyRepository(conn *postgres.Connection) NoveltyRepository {
	return &noveltyRepository{
		q: conn,
	}
}

// WithTx retorna o mesmo repositório executando dentro da transação
func (r *noveltyRepository) WithTx(tx *sql.Tx) NoveltyRepository {
	return &noveltyRepository{q: tx}
}

func (r *noveltyRepository) GetByID(id string) (*domain.Novelty, error) {
	query, args, err := squirrel.
		Select("n.id, n.person_id, n.type, n.start_date, n.end_date, n.notes, n.created_by, n.created_at, n.updated_at").
		From(noveltiesTable).
		Where(squirrel.Eq{"n.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.q.QueryRow(query, args...)
	novelty, err := scanNovelty(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear novidade: %w", err)
	}

	return novelty, nil
}

func (r *noveltyRepository) ListByPersonIDs(personIDs []string) ([]*domain.Novelty, error) {
	query, args, err := squirrel.
		Select("n.id, n.person_id, n.type, n.start_date, n.end_date, n.notes, n.created_by, n.created_at, n.updated_at").
		From(noveltiesTable).
		Where(squirrel.Eq{"n.person_id": personIDs}).
		OrderBy("n.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryNovelties(query, args)
}

func (r *noveltyRepository) FindOverlapping(personID string, start, end time.Time, excludeID string) ([]*domain.Novelty, error) {
	builder := squirrel.
		Select("n.id, n.person_id, n.type, n.start_date, n.end_date, n.notes, n.created_by, n.created_at, n.updated_at").
		From(noveltiesTable).
		Where(squirrel.Eq{"n.person_id": personID}).
		Where(squirrel.LtOrEq{"n.start_date": end.Format(time.DateOnly)}).
		Where(squirrel.GtOrEq{"n.end_date": start.Format(time.DateOnly)})

	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"n.id": excludeID})
	}

	query, args, err := builder.
		OrderBy("n.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryNovelties(query, args)
}

func (r *noveltyRepository) Insert(novelty *domain.Novelty) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("novelties").
		Columns("id", "person_id", "type", "start_date", "end_date", "notes", "created_by").
		Values(
			novelty.ID,
			novelty.PersonID,
			novelty.Type,
			novelty.StartDate.Format(time.DateOnly),
			novelty.EndDate.Format(time.DateOnly),
			novelty.Notes,
			novelty.CreatedBy,
		).
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

func (r *noveltyRepository) Update(novelty *domain.Novelty) error {
	query, args, err := squirrel.StatementBuilder.
		Update("novelties").
		Set("type", novelty.Type).
		Set("start_date", novelty.StartDate.Format(time.DateOnly)).
		Set("end_date", novelty.EndDate.Format(time.DateOnly)).
		Set("notes", novelty.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": novelty.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.Exec(query, args...)
	if err != nil {
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

func (r *noveltyRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("novelties").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.Exec(query, args...)
	if err != nil {
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

func (r *noveltyRepository) queryNovelties(query string, args []interface{}) ([]*domain.Novelty, error) {
	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	novelties := make([]*domain.Novelty, 0)
	for rows.Next() {
		novelty := &domain.Novelty{}
		err := rows.Scan(
			&novelty.ID,
			&novelty.PersonID,
			&novelty.Type,
			&novelty.StartDate,
			&novelty.EndDate,
			&novelty.Notes,
			&novelty.CreatedBy,
			&novelty.CreatedAt,
			&novelty.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear novidades: %w", err)
		}
		novelties = append(novelties, novelty)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return novelties, nil
}

func scanNovelty(row *sql.Row) (*domain.Novelty, error) {
	novelty := &domain.Novelty{}
	err := row.Scan(
		&novelty.ID,
		&novelty.PersonID,
		&novelty.Type,
		&novelty.StartDate,
		&novelty.EndDate,
		&novelty.Notes,
		&novelty.CreatedBy,
		&novelty.CreatedAt,
		&novelty.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return novelty, nil
}
