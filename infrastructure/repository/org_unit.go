package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	orgUnitsTable = "org_units ou"
)

// OrgUnitRepository lê a árvore organizacional (contexto somente-leitura)
type OrgUnitRepository interface {
	GetByID(id string) (*domain.OrgUnit, error)
	ListAll() ([]*domain.OrgUnit, error)
}

type orgUnitRepository struct {
	q postgres.Queryer
}

func NewOrgUnitRepository(conn *postgres.Connection) OrgUnitRepository {
	return &orgUnitRepository{
		q: conn,
	}
}

func (r *orgUnitRepository) GetByID(id string) (*domain.OrgUnit, error) {
	query, args, err := squirrel.
		Select("ou.id, ou.name, ou.tier, ou.parent_id").
		From(orgUnitsTable).
		Where(squirrel.Eq{"ou.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	unit := &domain.OrgUnit{}
	row := r.q.QueryRow(query, args...)
	err = row.Scan(&unit.ID, &unit.Name, &unit.Tier, &unit.ParentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear unidade organizacional: %w", err)
	}

	return unit, nil
}

func (r *orgUnitRepository) ListAll() ([]*domain.OrgUnit, error) {
	query, args, err := squirrel.
		Select("ou.id, ou.name, ou.tier, ou.parent_id").
		From(orgUnitsTable).
		OrderBy("ou.tier ASC, ou.name ASC").
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

	units := make([]*domain.OrgUnit, 0)
	for rows.Next() {
		unit := &domain.OrgUnit{}
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Tier, &unit.ParentID); err != nil {
			return nil, fmt.Errorf("erro ao escanear unidades organizacionais: %w", err)
		}
		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return units, nil
}
