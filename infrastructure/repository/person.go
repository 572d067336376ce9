package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const (
	personsTable = "persons p"
)

// PersonRepository lê o diretório organizacional. A única escrita permitida é
// o espelho legado do campo monthly_goal, mantido por compatibilidade com o
// consumidor antigo de relatórios.
type PersonRepository interface {
	GetByID(id string) (*domain.Person, error)
	ListByIDs(ids []string) ([]*domain.Person, error)
	ListActive() ([]*domain.Person, error)
	ListByOrgUnitIDs(orgUnitIDs []string) ([]*domain.Person, error)
	UpdateMonthlyGoal(personID string, amount int) error
	WithTx(tx *sql.Tx) PersonRepository
}

type personRepository struct {
	q postgres.Queryer
}

func NewPersonRepository(conn *postgres.Connection) PersonRepository {
	return &personRepository{
		q: conn,
	}
}

func (r *personRepository) WithTx(tx *sql.Tx) PersonRepository {
	return &personRepository{q: tx}
}

const personColumns = `p.id, p.name, p.lastname, p.external_id, p.org_unit_id, p.territory,
	p.territory_override, p.role_id, p.monthly_goal, p.active, p.deleted_at, p.created_at, p.updated_at`

func (r *personRepository) GetByID(id string) (*domain.Person, error) {
	query, args, err := squirrel.
		Select(personColumns).
		From(personsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	person := &domain.Person{}
	row := r.q.QueryRow(query, args...)
	if err := scanPersonRow(row, person); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pessoa: %w", err)
	}

	return person, nil
}

func (r *personRepository) ListByIDs(ids []string) ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select(personColumns).
		From(personsTable).
		Where(squirrel.Eq{"p.id": ids}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPersons(query, args)
}

func (r *personRepository) ListActive() ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select(personColumns).
		From(personsTable).
		Where(squirrel.Eq{"p.active": true}).
		Where("p.deleted_at IS NULL").
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPersons(query, args)
}

func (r *personRepository) ListByOrgUnitIDs(orgUnitIDs []string) ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select(personColumns).
		From(personsTable).
		Where(squirrel.Eq{"p.org_unit_id": orgUnitIDs}).
		Where(squirrel.Eq{"p.active": true}).
		Where("p.deleted_at IS NULL").
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPersons(query, args)
}

func (r *personRepository) UpdateMonthlyGoal(personID string, amount int) error {
	query, args, err := squirrel.StatementBuilder.
		Update("persons").
		Set("monthly_goal", amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": personID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *personRepository) queryPersons(query string, args []interface{}) ([]*domain.Person, error) {
	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{}
		err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Lastname,
			&person.ExternalID,
			&person.OrgUnitID,
			&person.Territory,
			&person.TerritoryOverride,
			&person.RoleID,
			&person.MonthlyGoal,
			&person.Active,
			&person.DeletedAt,
			&person.CreatedAt,
			&person.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pessoas: %w", err)
		}
		persons = append(persons, person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return persons, nil
}

func scanPersonRow(row *sql.Row, person *domain.Person) error {
	return row.Scan(
		&person.ID,
		&person.Name,
		&person.Lastname,
		&person.ExternalID,
		&person.OrgUnitID,
		&person.Territory,
		&person.TerritoryOverride,
		&person.RoleID,
		&person.MonthlyGoal,
		&person.Active,
		&person.DeletedAt,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
}
