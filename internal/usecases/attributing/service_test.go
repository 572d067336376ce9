package attributing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func newServiceWithAliases(t *testing.T, ctrl *gomock.Controller) (*Service, *mocks.MockSalesRecordRepository) {
	t.Helper()

	mockSalesRepo := mocks.NewMockSalesRecordRepository(ctrl)
	mockAliasRepo := mocks.NewMockTerritoryAliasRepository(ctrl)

	mockAliasRepo.EXPECT().
		ListAll().
		Return([]*domain.TerritoryAlias{
			{RawName: "BOGOTA NORTE", CanonicalName: "BOGOTA"},
			{RawName: "BTA", CanonicalName: "BOGOTA"},
			{RawName: "MDE", CanonicalName: "MEDELLIN"},
		}, nil)

	service := NewService(mockSalesRepo, mockAliasRepo)
	assert.NoError(t, service.RefreshAliases())

	return service, mockSalesRepo
}

func TestService_Normalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithAliases(t, ctrl)

	tests := []struct {
		name      string
		input     string
		canonical string
		resolved  bool
	}{
		{
			name:      "Alias conhecido resolve para o canônico",
			input:     "BOGOTA NORTE",
			canonical: "BOGOTA",
			resolved:  true,
		},
		{
			name:      "Caixa e espaços são normalizados antes da busca",
			input:     "  bogota   norte ",
			canonical: "BOGOTA",
			resolved:  true,
		},
		{
			name:      "Nome canônico resolve para si mesmo",
			input:     "medellin",
			canonical: "MEDELLIN",
			resolved:  true,
		},
		{
			name:      "Nome desconhecido cai no balde não classificado",
			input:     "CARTAGENA",
			canonical: domain.TerritoryUnclassified,
			resolved:  false,
		},
		{
			name:      "Nome vazio nunca resolve",
			input:     "   ",
			canonical: domain.TerritoryUnclassified,
			resolved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, ok := service.Normalize(tt.input)
			assert.Equal(t, tt.canonical, canonical)
			assert.Equal(t, tt.resolved, ok)
		})
	}
}

func TestService_TerritoryOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithAliases(t, ctrl)

	t.Run("Sem exceção declarada - usa o território primário", func(t *testing.T) {
		person := &domain.Person{Territory: "BOGOTA"}
		assert.Equal(t, "BOGOTA", service.TerritoryOf(person))
	})

	t.Run("Com exceção declarada - a exceção prevalece", func(t *testing.T) {
		person := &domain.Person{Territory: "BOGOTA", TerritoryOverride: stringPtr("MEDELLIN")}
		assert.Equal(t, "MEDELLIN", service.TerritoryOf(person))
	})

	t.Run("Exceção vazia é tratada como ausente", func(t *testing.T) {
		person := &domain.Person{Territory: "BOGOTA", TerritoryOverride: stringPtr("")}
		assert.Equal(t, "BOGOTA", service.TerritoryOf(person))
	})
}

func TestService_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithAliases(t, ctrl)

	person := &domain.Person{ID: "PRS001", Territory: "BOGOTA"}

	tests := []struct {
		name     string
		sale     *domain.SalesRecord
		expected domain.SaleClassification
	}{
		{
			name:     "Venda no território do vendedor",
			sale:     &domain.SalesRecord{Territory: "BTA"},
			expected: domain.ClassificationIn,
		},
		{
			name:     "Venda em outro território",
			sale:     &domain.SalesRecord{Territory: "MDE"},
			expected: domain.ClassificationOut,
		},
		{
			name:     "Território da venda não resolve - venda não classificada",
			sale:     &domain.SalesRecord{Territory: "CARTAGENA"},
			expected: domain.ClassificationUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Classify(tt.sale, person))
		})
	}

	t.Run("Território do vendedor não resolve - nenhuma venda classifica", func(t *testing.T) {
		unresolved := &domain.Person{ID: "PRS002", Territory: "PEREIRA"}
		sale := &domain.SalesRecord{Territory: "BTA"}
		assert.Equal(t, domain.ClassificationUnclassified, service.Classify(sale, unresolved))
	})
}

func TestService_Aggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSalesRepo := newServiceWithAliases(t, ctrl)

	person := &domain.Person{ID: "PRS001", ExternalID: "EXT-1001", Territory: "BOGOTA"}
	march := domain.Period{Year: 2025, Month: time.March}

	t.Run("Vendas não classificadas contam no total mas ficam fora de dentro/fora", func(t *testing.T) {
		mockSalesRepo.EXPECT().
			ListByAdvisorAndPeriod("EXT-1001", "03-2025").
			Return([]*domain.SalesRecord{
				{Territory: "BOGOTA NORTE"},
				{Territory: "BTA"},
				{Territory: "MDE"},
				{Territory: "CARTAGENA"},
			}, nil)

		breakdown, err := service.Aggregate(person, march)
		assert.NoError(t, err)
		assert.Equal(t, 2, breakdown.InCount)
		assert.Equal(t, 1, breakdown.OutCount)
		assert.Equal(t, 4, breakdown.TotalCount)
	})

	t.Run("Período sem vendas - agregado zerado", func(t *testing.T) {
		mockSalesRepo.EXPECT().
			ListByAdvisorAndPeriod("EXT-1001", "03-2025").
			Return(nil, nil)

		breakdown, err := service.Aggregate(person, march)
		assert.NoError(t, err)
		assert.Equal(t, domain.SalesBreakdown{}, breakdown)
	})
}
