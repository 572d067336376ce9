package novelty

import (
	"database/sql"
	"time"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/visibility"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/utils"
)

// Store mantém os registros de ausência garantindo a invariante de intervalos
// disjuntos por pessoa. As mutações rodam dentro da transação aberta pelo
// orquestrador de recálculo; as leituras aplicam o escopo de visibilidade.
type Store interface {
	List(actor *domain.Claims) ([]*domain.Novelty, error)
	GetByID(actor *domain.Claims, id string) (*domain.Novelty, error)

	ValidateCreate(req domain.CreateNoveltyRequest) error
	// CreateTx persiste a novidade e retorna os períodos tocados pelo intervalo
	CreateTx(tx *sql.Tx, req domain.CreateNoveltyRequest, actorID string) (*domain.Novelty, []domain.Period, error)
	// UpdateTx retorna a união dos períodos tocados pelo intervalo antigo e
	// pelo novo: remover dias de um intervalo antigo também muda a contagem
	// de dias trabalhados daqueles meses
	UpdateTx(tx *sql.Tx, id string, patch domain.NoveltyPatch) (*domain.Novelty, []domain.Period, error)
	// DeleteTx retorna os períodos tocados pelo intervalo removido
	DeleteTx(tx *sql.Tx, id string) (*domain.Novelty, []domain.Period, error)
}

type Service struct {
	noveltyRepo repository.NoveltyRepository
	personRepo  repository.PersonRepository
	policy      visibility.Policy
}

func NewService(
	noveltyRepo repository.NoveltyRepository,
	personRepo repository.PersonRepository,
	policy visibility.Policy,
) Store {
	return &Service{
		noveltyRepo: noveltyRepo,
		personRepo:  personRepo,
		policy:      policy,
	}
}

func (s *Service) List(actor *domain.Claims) ([]*domain.Novelty, error) {
	scope, err := s.policy.Resolve(actor)
	if err != nil {
		return nil, err
	}

	if scope.All {
		persons, err := s.personRepo.ListActive()
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(persons))
		for _, person := range persons {
			ids = append(ids, person.ID)
		}
		return s.noveltyRepo.ListByPersonIDs(ids)
	}

	return s.noveltyRepo.ListByPersonIDs(scope.PersonIDs)
}

func (s *Service) GetByID(actor *domain.Claims, id string) (*domain.Novelty, error) {
	novelty, err := s.noveltyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if novelty == nil {
		return nil, ErrNoveltyNotFound
	}

	scope, err := s.policy.Resolve(actor)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(novelty.PersonID) {
		return nil, ErrNoveltyNotFound
	}

	return novelty, nil
}

// ValidateCreate roda antes de qualquer escrita: falha de validação não pode
// ter efeito colateral
func (s *Service) ValidateCreate(req domain.CreateNoveltyRequest) error {
	if req.PersonID == "" {
		return ErrPersonRequired
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrDatesRequired
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}
	if !validNoveltyType(req.Type) {
		return ErrInvalidType
	}

	person, err := s.personRepo.GetByID(req.PersonID)
	if err != nil {
		return err
	}
	if person == nil {
		return ErrPersonNotFound
	}

	return nil
}

func (s *Service) CreateTx(tx *sql.Tx, req domain.CreateNoveltyRequest, actorID string) (*domain.Novelty, []domain.Period, error) {
	repo := s.noveltyRepo.WithTx(tx)

	colliding, err := repo.FindOverlapping(req.PersonID, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, nil, err
	}
	if len(colliding) > 0 {
		return nil, nil, &OverlapError{Colliding: colliding}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, nil, err
	}

	novelty := &domain.Novelty{
		ID:        id,
		PersonID:  req.PersonID,
		Type:      req.Type,
		StartDate: truncateToDate(req.StartDate),
		EndDate:   truncateToDate(req.EndDate),
		Notes:     req.Notes,
		CreatedBy: actorID,
	}

	if err := repo.Insert(novelty); err != nil {
		return nil, nil, err
	}

	log.L.WithFields(log.Fields{
		"novelty_id": novelty.ID,
		"person_id":  novelty.PersonID,
		"start_date": novelty.StartDate.Format(time.DateOnly),
		"end_date":   novelty.EndDate.Format(time.DateOnly),
	}).Info("Novidade registrada")

	return novelty, novelty.PeriodsSpanned(), nil
}

func (s *Service) UpdateTx(tx *sql.Tx, id string, patch domain.NoveltyPatch) (*domain.Novelty, []domain.Period, error) {
	if patch.Type == nil && patch.StartDate == nil && patch.EndDate == nil && patch.Notes == nil {
		return nil, nil, ErrEmptyPatch
	}

	repo := s.noveltyRepo.WithTx(tx)

	existing, err := repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, ErrNoveltyNotFound
	}

	previousPeriods := existing.PeriodsSpanned()

	updated := *existing
	if patch.Type != nil {
		if !validNoveltyType(*patch.Type) {
			return nil, nil, ErrInvalidType
		}
		updated.Type = *patch.Type
	}
	if patch.StartDate != nil {
		updated.StartDate = truncateToDate(*patch.StartDate)
	}
	if patch.EndDate != nil {
		updated.EndDate = truncateToDate(*patch.EndDate)
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}

	if updated.StartDate.IsZero() || updated.EndDate.IsZero() {
		return nil, nil, ErrDatesRequired
	}
	if updated.EndDate.Before(updated.StartDate) {
		return nil, nil, ErrInvalidDateRange
	}

	// A checagem de sobreposição roda contra o intervalo novo, excluindo o
	// próprio registro em edição
	colliding, err := repo.FindOverlapping(updated.PersonID, updated.StartDate, updated.EndDate, updated.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(colliding) > 0 {
		return nil, nil, &OverlapError{Colliding: colliding}
	}

	if err := repo.Update(&updated); err != nil {
		return nil, nil, err
	}

	return &updated, domain.PeriodsUnion(previousPeriods, updated.PeriodsSpanned()), nil
}

func (s *Service) DeleteTx(tx *sql.Tx, id string) (*domain.Novelty, []domain.Period, error) {
	repo := s.noveltyRepo.WithTx(tx)

	existing, err := repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, ErrNoveltyNotFound
	}

	if err := repo.Delete(id); err != nil {
		return nil, nil, err
	}

	return existing, existing.PeriodsSpanned(), nil
}

func validNoveltyType(noveltyType string) bool {
	switch noveltyType {
	case domain.NoveltyTypeVacation,
		domain.NoveltyTypeSickLeave,
		domain.NoveltyTypeLicense,
		domain.NoveltyTypePermission,
		domain.NoveltyTypeTraining:
		return true
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
