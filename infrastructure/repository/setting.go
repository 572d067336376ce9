package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
)

const (
	settingsTable = "settings s"
)

// SettingRepository lê o mapa plano chave/valor de configurações de negócio
// (limiares de conformidade e afins)
type SettingRepository interface {
	GetAll() (map[string]string, error)
}

type settingRepository struct {
	q postgres.Queryer
}

func NewSettingRepository(conn *postgres.Connection) SettingRepository {
	return &settingRepository{
		q: conn,
	}
}

func (r *settingRepository) GetAll() (map[string]string, error) {
	query, args, err := squirrel.
		Select("s.key, s.value").
		From(settingsTable).
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

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear configurações: %w", err)
		}
		settings[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settings, nil
}
