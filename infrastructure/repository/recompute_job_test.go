package repository

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

var recomputeJobTestColumns = []string{
	"id", "person_id", "period", "status", "attempts", "last_error", "created_at", "updated_at", "done_at",
}

func newRecomputeJobRepo(t *testing.T) (RecomputeJobRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := NewRecomputeJobRepository(&postgres.Connection{DB: db})
	return repo, mock, func() { db.Close() }
}

func pendingJobRow(id, personID, period string, attempts int) []driver.Value {
	now := time.Now()
	return []driver.Value{id, personID, period, domain.RecomputeJobPending, attempts, nil, now, now, nil}
}

func TestRecomputeJobRepository_Enqueue(t *testing.T) {
	repo, mock, cleanup := newRecomputeJobRepo(t)
	defer cleanup()

	job := &domain.RecomputeJob{ID: "JOB001", PersonID: "PRS001", Period: "03-2025"}

	t.Run("Sem job pendente para o alvo - insere e devolve o novo", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"ON CONFLICT (person_id, period) WHERE status = 'pending' DO NOTHING",
		)).
			WithArgs("JOB001", "PRS001", "03-2025", domain.RecomputeJobPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(regexp.QuoteMeta("FROM recompute_jobs rj")).
			WillReturnRows(sqlmock.NewRows(recomputeJobTestColumns).
				AddRow(pendingJobRow("JOB001", "PRS001", "03-2025", 0)...))

		enqueued, err := repo.Enqueue(job)
		assert.NoError(t, err)
		assert.Equal(t, "JOB001", enqueued.ID)
	})

	t.Run("Já existe job pendente para a mesma pessoa e período - mantém o existente", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"ON CONFLICT (person_id, period) WHERE status = 'pending' DO NOTHING",
		)).
			WithArgs("JOB002", "PRS001", "03-2025", domain.RecomputeJobPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectQuery(regexp.QuoteMeta("FROM recompute_jobs rj")).
			WillReturnRows(sqlmock.NewRows(recomputeJobTestColumns).
				AddRow(pendingJobRow("JOB001", "PRS001", "03-2025", 2)...))

		enqueued, err := repo.Enqueue(&domain.RecomputeJob{ID: "JOB002", PersonID: "PRS001", Period: "03-2025"})
		assert.NoError(t, err)
		assert.Equal(t, "JOB001", enqueued.ID)
		assert.Equal(t, 2, enqueued.Attempts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeJobRepository_ListPending(t *testing.T) {
	repo, mock, cleanup := newRecomputeJobRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE rj.status = $1 AND rj.attempts < $2 ORDER BY rj.created_at ASC LIMIT 10",
	)).
		WithArgs(domain.RecomputeJobPending, 5).
		WillReturnRows(sqlmock.NewRows(recomputeJobTestColumns).
			AddRow(pendingJobRow("JOB001", "PRS001", "03-2025", 1)...).
			AddRow(pendingJobRow("JOB002", "PRS002", "04-2025", 0)...))

	jobs, err := repo.ListPending(10, 5)
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "JOB001", jobs[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeJobRepository_MarkDone(t *testing.T) {
	repo, mock, cleanup := newRecomputeJobRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE recompute_jobs SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkDone("JOB001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeJobRepository_MarkFailed(t *testing.T) {
	repo, mock, cleanup := newRecomputeJobRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE recompute_jobs SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed("JOB001", "timeout"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
