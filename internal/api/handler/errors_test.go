package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Orçamento duplicado vira conflito e não erro interno",
			err:            repository.ErrDuplicateBudget,
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrConflictDuplicate,
		},
		{
			name:           "Datas obrigatórias ausentes",
			err:            novelty.ErrDatesRequired,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Novidade não encontrada",
			err:            novelty.ErrNoveltyNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeDomainError(recorder, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var apiErr apiErrors.APIError
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}
