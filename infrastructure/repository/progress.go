package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	progressRecordsTable = "progress_records pr"
)

type ProgressRepository interface {
	GetByPersonAndPeriod(personID, period string) (*domain.ProgressRecord, error)
	// SaveOrUpdate faz upsert pela chave natural (pessoa, período) com guarda
	// otimista: a atualização só é aplicada se a versão no banco ainda for
	// expectedVersion. Retorna false quando a guarda falhou (versão obsoleta).
	SaveOrUpdate(record *domain.ProgressRecord, expectedVersion int) (bool, error)
	WithTx(tx *sql.Tx) ProgressRepository
}

type progressRepository struct {
	q postgres.Queryer
}

func NewProgressRepository(conn *postgres.Connection) ProgressRepository {
	return &progressRepository{
		q: conn,
	}
}

func (r *progressRepository) WithTx(tx *sql.Tx) ProgressRepository {
	return &progressRepository{q: tx}
}

func (r *progressRepository) GetByPersonAndPeriod(personID, period string) (*domain.ProgressRecord, error) {
	query, args, err := squirrel.
		Select(`pr.id, pr.person_id, pr.period, pr.in_count, pr.out_count, pr.total_count,
			pr.expected, pr.adjusted, pr.compliance_in, pr.compliance_global,
			pr.met_in, pr.met_global, pr.version, pr.created_at, pr.updated_at`).
		From(progressRecordsTable).
		Where(squirrel.Eq{"pr.person_id": personID, "pr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.ProgressRecord{}
	row := r.q.QueryRow(query, args...)
	err = row.Scan(
		&record.ID,
		&record.PersonID,
		&record.Period,
		&record.InCount,
		&record.OutCount,
		&record.TotalCount,
		&record.Expected,
		&record.Adjusted,
		&record.ComplianceIn,
		&record.ComplianceGlobal,
		&record.MetIn,
		&record.MetGlobal,
		&record.Version,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de progresso: %w", err)
	}

	return record, nil
}

func (r *progressRepository) SaveOrUpdate(record *domain.ProgressRecord, expectedVersion int) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("progress_records").
		Columns("person_id", "period", "in_count", "out_count", "total_count",
			"expected", "adjusted", "compliance_in", "compliance_global",
			"met_in", "met_global", "version").
		Values(
			record.PersonID,
			record.Period,
			record.InCount,
			record.OutCount,
			record.TotalCount,
			record.Expected,
			record.Adjusted,
			record.ComplianceIn,
			record.ComplianceGlobal,
			record.MetIn,
			record.MetGlobal,
			1,
		).
		Suffix(`
			ON CONFLICT (person_id, period) DO UPDATE SET
				in_count = EXCLUDED.in_count,
				out_count = EXCLUDED.out_count,
				total_count = EXCLUDED.total_count,
				expected = EXCLUDED.expected,
				adjusted = EXCLUDED.adjusted,
				compliance_in = EXCLUDED.compliance_in,
				compliance_global = EXCLUDED.compliance_global,
				met_in = EXCLUDED.met_in,
				met_global = EXCLUDED.met_global,
				version = progress_records.version + 1,
				updated_at = NOW()
			WHERE progress_records.version = ?
		`, expectedVersion).
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

	// 0 linhas: a linha existia mas a versão esperada não bateu
	return rowsAffected > 0, nil
}
