package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestCreateNoveltyPayload_ToRequest(t *testing.T) {
	t.Run("Datas convertidas de yyyy-mm-dd para o domínio", func(t *testing.T) {
		payload := CreateNoveltyPayload{
			PersonID:  "PRS001",
			Type:      "VACATION",
			StartDate: "2025-03-10",
			EndDate:   "2025-03-14",
			Notes:     "férias programadas",
		}

		req, err := payload.toRequest()
		assert.NoError(t, err)
		assert.Equal(t, "PRS001", req.PersonID)
		assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), req.StartDate)
		assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), req.EndDate)
	})

	t.Run("Data em formato inválido", func(t *testing.T) {
		payload := CreateNoveltyPayload{
			PersonID:  "PRS001",
			Type:      "VACATION",
			StartDate: "10/03/2025",
			EndDate:   "2025-03-14",
		}

		_, err := payload.toRequest()
		assert.Error(t, err)
	})

	t.Run("Datas ausentes chegam zeradas ao caso de uso", func(t *testing.T) {
		payload := CreateNoveltyPayload{PersonID: "PRS001", Type: "VACATION"}

		req, err := payload.toRequest()
		assert.NoError(t, err)
		// A rejeição é responsabilidade da validação do caso de uso
		assert.True(t, req.StartDate.IsZero())
		assert.True(t, req.EndDate.IsZero())
	})
}

func TestUpdateNoveltyPayload_ToPatch(t *testing.T) {
	t.Run("Só os campos presentes entram no patch", func(t *testing.T) {
		payload := UpdateNoveltyPayload{
			StartDate: stringPtr("2025-04-01"),
			Notes:     stringPtr("ajuste"),
		}

		patch, err := payload.toPatch()
		assert.NoError(t, err)
		assert.NotNil(t, patch.StartDate)
		assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), *patch.StartDate)
		assert.Nil(t, patch.EndDate)
		assert.Nil(t, patch.Type)
		assert.Equal(t, "ajuste", *patch.Notes)
	})

	t.Run("Data em formato inválido", func(t *testing.T) {
		payload := UpdateNoveltyPayload{EndDate: stringPtr("14-03-2025")}

		_, err := payload.toPatch()
		assert.Error(t, err)
	})
}
