package progressing

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/settings"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/attributing"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
)

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrProgressNotFound = errors.New("progress record not found")
	// ErrStaleVersion indica que dois recálculos concorrentes disputaram o
	// mesmo registro e a guarda otimista esgotou as tentativas
	ErrStaleVersion = errors.New("progress record version conflict")
)

// Aggregator combina a alocação mensal com a atribuição de vendas em um
// registro de conformidade persistido. Roda fora de transação: o upsert por
// chave natural com guarda de versão torna o recálculo idempotente.
type Aggregator interface {
	GetByPersonAndPeriod(personID, period string) (*domain.ProgressRecord, error)
	Recompute(personID string, period domain.Period) (*domain.ProgressRecord, error)
}

type Service struct {
	personRepo     repository.PersonRepository
	allocationRepo repository.AllocationRepository
	progressRepo   repository.ProgressRepository
	attributor     attributing.Attributor
	settings       *settings.Service
}

func NewService(
	personRepo repository.PersonRepository,
	allocationRepo repository.AllocationRepository,
	progressRepo repository.ProgressRepository,
	attributor attributing.Attributor,
	settingsService *settings.Service,
) Aggregator {
	return &Service{
		personRepo:     personRepo,
		allocationRepo: allocationRepo,
		progressRepo:   progressRepo,
		attributor:     attributor,
		settings:       settingsService,
	}
}

func (s *Service) GetByPersonAndPeriod(personID, period string) (*domain.ProgressRecord, error) {
	record, err := s.progressRepo.GetByPersonAndPeriod(personID, period)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrProgressNotFound
	}
	return record, nil
}

func (s *Service) Recompute(personID string, period domain.Period) (*domain.ProgressRecord, error) {
	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	// Sem alocação persistida a meta é zero; o orquestrador garante a
	// alocação para todos os períodos afetados antes de chegar aqui
	expected := 0
	adjusted := 0.0
	allocation, err := s.allocationRepo.GetByPersonAndPeriod(personID, period.String())
	if err != nil {
		return nil, err
	}
	if allocation != nil {
		expected = allocation.BaseAmount
		adjusted = allocation.ProratedTarget
	}

	breakdown, err := s.attributor.Aggregate(person, period)
	if err != nil {
		return nil, err
	}

	thresholds := s.settings.Thresholds()

	record := &domain.ProgressRecord{
		PersonID:         personID,
		Period:           period.String(),
		InCount:          breakdown.InCount,
		OutCount:         breakdown.OutCount,
		TotalCount:       breakdown.TotalCount,
		Expected:         expected,
		Adjusted:         adjusted,
		ComplianceIn:     compliancePercent(breakdown.InCount, adjusted),
		ComplianceGlobal: compliancePercent(breakdown.TotalCount, float64(expected)),
	}
	record.MetIn = record.ComplianceIn >= thresholds.MinComplianceIn
	record.MetGlobal = record.ComplianceGlobal >= thresholds.MinComplianceGlobal

	if err := s.persist(record); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"person_id":         personID,
		"period":            record.Period,
		"compliance_in":     record.ComplianceIn,
		"compliance_global": record.ComplianceGlobal,
	}).Debug("Registro de progresso recalculado")

	return record, nil
}

// persist aplica o upsert com guarda otimista, tentando novamente uma única
// vez quando outro recálculo avançou a versão no meio do caminho
func (s *Service) persist(record *domain.ProgressRecord) error {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := s.progressRepo.GetByPersonAndPeriod(record.PersonID, record.Period)
		if err != nil {
			return err
		}

		expectedVersion := 0
		if current != nil {
			expectedVersion = current.Version
		}

		applied, err := s.progressRepo.SaveOrUpdate(record, expectedVersion)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}

	return ErrStaleVersion
}

// compliancePercent = 100 * achieved / target, arredondado em duas casas;
// zero sempre que o alvo não é positivo, independente do realizado
func compliancePercent(achieved int, target float64) float64 {
	if target <= 0 {
		return 0
	}

	percent := decimal.NewFromInt(int64(achieved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromFloat(target)).
		Round(2)

	value, _ := percent.Float64()
	return value
}
