package visibility

import (
	"errors"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

var ErrActorWithoutPerson = errors.New("ator não vinculado a uma pessoa do diretório")

// Policy resolve, uma única vez por chamada, o conjunto de pessoas que o ator
// pode enxergar. Todas as leituras reutilizam o mesmo conjunto em vez de
// consultar papel a papel.
type Policy interface {
	Resolve(actor *domain.Claims) (domain.Visibility, error)
}

type Service struct {
	personRepo repository.PersonRepository
}

func NewPolicy(personRepo repository.PersonRepository) Policy {
	return &Service{
		personRepo: personRepo,
	}
}

// Resolve aplica as regras de escopo: um vendedor enxerga só a si mesmo, um
// gestor direto enxerga a si e aos membros da sua unidade local, e os níveis
// regional/administrador enxergam tudo.
func (s *Service) Resolve(actor *domain.Claims) (domain.Visibility, error) {
	switch actor.UserRoleID {
	case domain.RoleAdmin, domain.RoleRegional:
		return domain.Visibility{All: true}, nil

	case domain.RoleManager:
		if actor.PersonID == "" {
			return domain.Visibility{}, ErrActorWithoutPerson
		}

		manager, err := s.personRepo.GetByID(actor.PersonID)
		if err != nil {
			return domain.Visibility{}, err
		}
		if manager == nil {
			return domain.Visibility{}, ErrActorWithoutPerson
		}

		members, err := s.personRepo.ListByOrgUnitIDs([]string{manager.OrgUnitID})
		if err != nil {
			return domain.Visibility{}, err
		}

		ids := make([]string, 0, len(members)+1)
		ids = append(ids, manager.ID)
		for _, member := range members {
			if member.ID != manager.ID {
				ids = append(ids, member.ID)
			}
		}

		return domain.Visibility{PersonIDs: ids}, nil

	default:
		if actor.PersonID == "" {
			return domain.Visibility{}, ErrActorWithoutPerson
		}
		return domain.Visibility{PersonIDs: []string{actor.PersonID}}, nil
	}
}
