package repository

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

var noveltyColumns = []string{
	"id", "person_id", "type", "start_date", "end_date", "notes", "created_by", "created_at", "updated_at",
}

func newNoveltyRepo(t *testing.T) (NoveltyRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := NewNoveltyRepository(&postgres.Connection{DB: db})
	return repo, mock, func() { db.Close() }
}

func noveltyRow(id, personID string, start, end time.Time) []driver.Value {
	now := time.Now()
	return []driver.Value{id, personID, domain.NoveltyTypeVacation, start, end, "", "USR001", now, now}
}

func TestNoveltyRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newNoveltyRepo(t)
	defer cleanup()

	t.Run("Novidade encontrada", func(t *testing.T) {
		start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("FROM novelties n WHERE n.id = $1")).
			WithArgs("NVL001").
			WillReturnRows(sqlmock.NewRows(noveltyColumns).AddRow(noveltyRow("NVL001", "PRS001", start, end)...))

		novelty, err := repo.GetByID("NVL001")
		assert.NoError(t, err)
		assert.Equal(t, "NVL001", novelty.ID)
		assert.Equal(t, start, novelty.StartDate)
	})

	t.Run("Novidade inexistente - nil sem erro", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM novelties n WHERE n.id = $1")).
			WithArgs("NVL999").
			WillReturnRows(sqlmock.NewRows(noveltyColumns))

		novelty, err := repo.GetByID("NVL999")
		assert.NoError(t, err)
		assert.Nil(t, novelty)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoveltyRepository_FindOverlapping(t *testing.T) {
	repo, mock, cleanup := newNoveltyRepo(t)
	defer cleanup()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Cruzamento por datas inclusivas", func(t *testing.T) {
		// Intervalos cruzam quando start <= fim-pedido e end >= início-pedido
		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM novelties n WHERE n.person_id = $1 AND n.start_date <= $2 AND n.end_date >= $3 ORDER BY n.start_date ASC",
		)).
			WithArgs("PRS001", "2025-03-14", "2025-03-10").
			WillReturnRows(sqlmock.NewRows(noveltyColumns).
				AddRow(noveltyRow("NVL001", "PRS001", start.AddDate(0, 0, 4), end.AddDate(0, 0, 4))...))

		colliding, err := repo.FindOverlapping("PRS001", start, end, "")
		assert.NoError(t, err)
		assert.Len(t, colliding, 1)
	})

	t.Run("Registro em edição é excluído da checagem", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"n.start_date <= $2 AND n.end_date >= $3 AND n.id <> $4",
		)).
			WithArgs("PRS001", "2025-03-14", "2025-03-10", "NVL001").
			WillReturnRows(sqlmock.NewRows(noveltyColumns))

		colliding, err := repo.FindOverlapping("PRS001", start, end, "NVL001")
		assert.NoError(t, err)
		assert.Empty(t, colliding)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoveltyRepository_Insert(t *testing.T) {
	repo, mock, cleanup := newNoveltyRepo(t)
	defer cleanup()

	novelty := &domain.Novelty{
		ID:        "NVL001",
		PersonID:  "PRS001",
		Type:      domain.NoveltyTypeVacation,
		StartDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		CreatedBy: "USR001",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO novelties")).
		WithArgs("NVL001", "PRS001", domain.NoveltyTypeVacation, "2025-03-10", "2025-03-14", "", "USR001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Insert(novelty))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoveltyRepository_Update(t *testing.T) {
	repo, mock, cleanup := newNoveltyRepo(t)
	defer cleanup()

	novelty := &domain.Novelty{
		ID:        "NVL001",
		Type:      domain.NoveltyTypeSickLeave,
		StartDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Linha atualizada", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE novelties SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(novelty))
	})

	t.Run("Nenhuma linha afetada", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE novelties SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, sql.ErrNoRows, repo.Update(novelty))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoveltyRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newNoveltyRepo(t)
	defer cleanup()

	t.Run("Linha removida", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM novelties WHERE id = $1")).
			WithArgs("NVL001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("NVL001"))
	})

	t.Run("Novidade inexistente", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM novelties WHERE id = $1")).
			WithArgs("NVL999").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, sql.ErrNoRows, repo.Delete("NVL999"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
