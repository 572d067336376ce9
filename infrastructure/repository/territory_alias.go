package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	territoryAliasesTable = "territory_aliases ta"
)

// TerritoryAliasRepository lê a tabela de aliases de território
// (nome bruto → nome canônico)
type TerritoryAliasRepository interface {
	ListAll() ([]*domain.TerritoryAlias, error)
}

type territoryAliasRepository struct {
	q postgres.Queryer
}

func NewTerritoryAliasRepository(conn *postgres.Connection) TerritoryAliasRepository {
	return &territoryAliasRepository{
		q: conn,
	}
}

func (r *territoryAliasRepository) ListAll() ([]*domain.TerritoryAlias, error) {
	query, args, err := squirrel.
		Select("ta.raw_name, ta.canonical_name").
		From(territoryAliasesTable).
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

	aliases := make([]*domain.TerritoryAlias, 0)
	for rows.Next() {
		alias := &domain.TerritoryAlias{}
		if err := rows.Scan(&alias.RawName, &alias.CanonicalName); err != nil {
			return nil, fmt.Errorf("erro ao escanear aliases de território: %w", err)
		}
		aliases = append(aliases, alias)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aliases, nil
}
