package settings

import (
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
)

// Chaves de configuração de negócio
const (
	KeyMinComplianceIn     = "min_compliance_in"
	KeyMinComplianceGlobal = "min_compliance_global"
)

// Limiares usados quando a chave não existe na tabela de configurações
const (
	DefaultMinComplianceIn     = 80.0
	DefaultMinComplianceGlobal = 90.0
)

// Service é o cache do mapa chave/valor de configurações. Leituras dentro do
// TTL podem devolver valores defasados; Refresh força a recarga imediata.
// A referência é injetada em quem consome — não há singleton de módulo.
type Service struct {
	repo repository.SettingRepository
	ttl  time.Duration

	mu       sync.RWMutex
	values   map[string]string
	loadedAt time.Time
}

func NewService(repo repository.SettingRepository, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
	}
}

// Get retorna o valor bruto da chave, recarregando o cache se expirado
func (s *Service) Get(key string) (string, bool) {
	values := s.snapshot()
	value, ok := values[key]
	return value, ok
}

// Float retorna o valor numérico da chave, ou def quando ausente/ilegível
func (s *Service) Float(key string, def float64) float64 {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.L.WithError(err).Warnf("Valor não numérico para a configuração %s", key)
		return def
	}

	return value
}

// Thresholds retorna os limiares de conformidade vigentes
func (s *Service) Thresholds() domain.Thresholds {
	return domain.Thresholds{
		MinComplianceIn:     s.Float(KeyMinComplianceIn, DefaultMinComplianceIn),
		MinComplianceGlobal: s.Float(KeyMinComplianceGlobal, DefaultMinComplianceGlobal),
	}
}

// Refresh recarrega o cache imediatamente, ignorando o TTL
func (s *Service) Refresh() error {
	values, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return nil
}

func (s *Service) snapshot() map[string]string {
	s.mu.RLock()
	expired := s.values == nil || time.Since(s.loadedAt) > s.ttl
	values := s.values
	s.mu.RUnlock()

	if expired {
		// Falha de recarga mantém a última versão: defasado é aceitável até
		// o limite do TTL
		if err := s.Refresh(); err != nil {
			log.L.WithError(err).Warn("Erro ao recarregar configurações; usando valores em cache")
		} else {
			s.mu.RLock()
			values = s.values
			s.mu.RUnlock()
		}
	}

	if values == nil {
		return map[string]string{}
	}
	return values
}
