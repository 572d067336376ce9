package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Thresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Chaves presentes na tabela de configurações", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)
		mockRepo.EXPECT().
			GetAll().
			Return(map[string]string{
				KeyMinComplianceIn:     "75.5",
				KeyMinComplianceGlobal: "85",
			}, nil)

		service := NewService(mockRepo, time.Minute)

		thresholds := service.Thresholds()
		assert.Equal(t, 75.5, thresholds.MinComplianceIn)
		assert.Equal(t, 85.0, thresholds.MinComplianceGlobal)
	})

	t.Run("Chaves ausentes caem nos limiares padrão", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)
		mockRepo.EXPECT().GetAll().Return(map[string]string{}, nil)

		service := NewService(mockRepo, time.Minute)

		thresholds := service.Thresholds()
		assert.Equal(t, DefaultMinComplianceIn, thresholds.MinComplianceIn)
		assert.Equal(t, DefaultMinComplianceGlobal, thresholds.MinComplianceGlobal)
	})

	t.Run("Valor não numérico cai no padrão da chave", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)
		mockRepo.EXPECT().
			GetAll().
			Return(map[string]string{KeyMinComplianceIn: "oitenta"}, nil)

		service := NewService(mockRepo, time.Minute)

		assert.Equal(t, DefaultMinComplianceIn, service.Thresholds().MinComplianceIn)
	})
}

func TestService_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Leituras dentro do TTL reutilizam o cache", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)
		mockRepo.EXPECT().
			GetAll().
			Return(map[string]string{KeyMinComplianceIn: "80"}, nil).
			Times(1)

		service := NewService(mockRepo, time.Minute)

		for i := 0; i < 5; i++ {
			value, ok := service.Get(KeyMinComplianceIn)
			assert.True(t, ok)
			assert.Equal(t, "80", value)
		}
	})

	t.Run("Falha de recarga mantém a última versão carregada", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)

		// TTL zero força a recarga em toda leitura
		service := NewService(mockRepo, 0)

		mockRepo.EXPECT().
			GetAll().
			Return(map[string]string{KeyMinComplianceIn: "80"}, nil)
		assert.NoError(t, service.Refresh())

		mockRepo.EXPECT().
			GetAll().
			Return(nil, errors.New("connection refused"))

		value, ok := service.Get(KeyMinComplianceIn)
		assert.True(t, ok)
		assert.Equal(t, "80", value)
	})

	t.Run("Refresh propaga o erro do repositório", func(t *testing.T) {
		mockRepo := mocks.NewMockSettingRepository(ctrl)
		mockRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

		service := NewService(mockRepo, time.Minute)
		assert.Error(t, service.Refresh())
	})
}
