package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	salesRecordsTable = "sales_records sr"
)

// SalesRecordRepository lê o feed externo de vendas. O feed é produzido por
// um processo de importação upstream e nunca é escrito por este serviço.
type SalesRecordRepository interface {
	ListByAdvisorAndPeriod(advisorExternalID, period string) ([]*domain.SalesRecord, error)
	// CountUnmatched conta as vendas do período cujo assessor não existe no
	// diretório de pessoas (balde "sem correspondência")
	CountUnmatched(period string) (int, error)
}

type salesRecordRepository struct {
	q postgres.Queryer
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		q: conn,
	}
}

func (r *salesRecordRepository) ListByAdvisorAndPeriod(advisorExternalID, period string) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.period, sr.advisor_external_id, sr.territory, sr.date").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.advisor_external_id": advisorExternalID, "sr.period": period}).
		OrderBy("sr.date ASC").
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

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record := &domain.SalesRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Period,
			&record.AdvisorExternalID,
			&record.Territory,
			&record.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRecordRepository) CountUnmatched(period string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.period": period}).
		Where("NOT EXISTS (SELECT 1 FROM persons p WHERE p.external_id = sr.advisor_external_id)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.q.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem: %w", err)
	}

	return count, nil
}
