package attributing

import (
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

const aliasCacheTTL = 5 * time.Minute

// Attributor classifica as vendas do feed externo como dentro ou fora do
// território do vendedor e agrega as contagens por período.
type Attributor interface {
	TerritoryOf(person *domain.Person) string
	// Normalize retorna o nome canônico do território; ok=false quando o nome
	// não resolve pela tabela de aliases (nunca é um erro)
	Normalize(name string) (string, bool)
	Classify(sale *domain.SalesRecord, person *domain.Person) domain.SaleClassification
	// Aggregate varre as vendas do período cujo assessor casa com o id
	// externo da pessoa. Vendas sem pessoa correspondente simplesmente não
	// aparecem em nenhum agregado (balde "sem correspondência" à parte).
	Aggregate(person *domain.Person, period domain.Period) (domain.SalesBreakdown, error)
	CountUnmatched(period domain.Period) (int, error)
	RefreshAliases() error
}

type Service struct {
	salesRepo repository.SalesRecordRepository
	aliasRepo repository.TerritoryAliasRepository

	mu         sync.RWMutex
	aliases    map[string]string
	canonicals map[string]bool
	loadedAt   time.Time
}

func NewService(
	salesRepo repository.SalesRecordRepository,
	aliasRepo repository.TerritoryAliasRepository,
) *Service {
	return &Service{
		salesRepo: salesRepo,
		aliasRepo: aliasRepo,
	}
}

// TerritoryOf prefere o território de exceção declarado sobre o primário
func (s *Service) TerritoryOf(person *domain.Person) string {
	if person.TerritoryOverride != nil && *person.TerritoryOverride != "" {
		return *person.TerritoryOverride
	}
	return person.Territory
}

func (s *Service) Normalize(name string) (string, bool) {
	key := foldName(name)
	if key == "" {
		return domain.TerritoryUnclassified, false
	}

	aliases, canonicals := s.aliasTables()

	if canonical, ok := aliases[key]; ok {
		return canonical, true
	}
	// Nomes canônicos resolvem para si mesmos
	if canonicals[key] {
		return key, true
	}

	return domain.TerritoryUnclassified, false
}

func (s *Service) Classify(sale *domain.SalesRecord, person *domain.Person) domain.SaleClassification {
	personTerritory, okPerson := s.Normalize(s.TerritoryOf(person))
	saleTerritory, okSale := s.Normalize(sale.Territory)

	if !okPerson || !okSale {
		return domain.ClassificationUnclassified
	}
	if personTerritory == saleTerritory {
		return domain.ClassificationIn
	}
	return domain.ClassificationOut
}

func (s *Service) Aggregate(person *domain.Person, period domain.Period) (domain.SalesBreakdown, error) {
	sales, err := s.salesRepo.ListByAdvisorAndPeriod(person.ExternalID, period.String())
	if err != nil {
		return domain.SalesBreakdown{}, err
	}

	breakdown := domain.SalesBreakdown{}
	for _, sale := range sales {
		// Vendas não classificadas contam no total bruto mas ficam fora da
		// conformidade por território
		breakdown.TotalCount++

		switch s.Classify(sale, person) {
		case domain.ClassificationIn:
			breakdown.InCount++
		case domain.ClassificationOut:
			breakdown.OutCount++
		}
	}

	return breakdown, nil
}

func (s *Service) CountUnmatched(period domain.Period) (int, error) {
	return s.salesRepo.CountUnmatched(period.String())
}

// RefreshAliases recarrega a tabela de aliases imediatamente
func (s *Service) RefreshAliases() error {
	return s.loadAliases()
}

func (s *Service) aliasTables() (map[string]string, map[string]bool) {
	s.mu.RLock()
	expired := s.aliases == nil || time.Since(s.loadedAt) > aliasCacheTTL
	aliases, canonicals := s.aliases, s.canonicals
	s.mu.RUnlock()

	if expired {
		// Falha de recarga mantém a última versão carregada
		if err := s.loadAliases(); err == nil {
			s.mu.RLock()
			aliases, canonicals = s.aliases, s.canonicals
			s.mu.RUnlock()
		}
	}

	if aliases == nil {
		return map[string]string{}, map[string]bool{}
	}
	return aliases, canonicals
}

func (s *Service) loadAliases() error {
	rows, err := s.aliasRepo.ListAll()
	if err != nil {
		return err
	}

	aliases := make(map[string]string, len(rows))
	canonicals := make(map[string]bool, len(rows))
	for _, row := range rows {
		canonical := foldName(row.CanonicalName)
		aliases[foldName(row.RawName)] = canonical
		canonicals[canonical] = true
	}

	s.mu.Lock()
	s.aliases = aliases
	s.canonicals = canonicals
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return nil
}

// foldName normaliza caixa e espaços de um nome de território
func foldName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
