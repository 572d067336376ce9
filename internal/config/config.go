package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Settings       Settings       `mapstructure:",squash"`
	Allocation     Allocation     `mapstructure:",squash"`
	RecomputeRetry RecomputeRetry `mapstructure:",squash"`
	BudgetRollover BudgetRollover `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string        `mapstructure:"auth_secret"`
	TokenExpiration time.Duration `mapstructure:"auth_token_expiration"`
}

type Settings struct {
	CacheTTL time.Duration `mapstructure:"settings_cache_ttl"`
}

type Allocation struct {
	// Valor base usado quando não há Budget nem alocação anterior para a
	// pessoa/período. O valor histórico não tinha justificativa de negócio
	// documentada; por padrão 0 significa "sem meta".
	FallbackBase int `mapstructure:"allocation_fallback_base"`
}

type RecomputeRetry struct {
	CronSchedule string `mapstructure:"recompute_retry_cron"`
	Enabled      bool   `mapstructure:"recompute_retry_enabled"`
	MaxAttempts  int    `mapstructure:"recompute_retry_max_attempts"`
	BatchSize    int    `mapstructure:"recompute_retry_batch_size"`
}

type BudgetRollover struct {
	CronSchedule string `mapstructure:"budget_rollover_cron"`
	Enabled      bool   `mapstructure:"budget_rollover_enabled"`
	Scope        string `mapstructure:"budget_rollover_scope"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/compliance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_EXPIRATION", "24h")

	viper.SetDefault("SETTINGS_CACHE_TTL", "5m") // TTL do cache de limiares de conformidade

	viper.SetDefault("ALLOCATION_FALLBACK_BASE", 0)

	// Defaults do varredor de jobs de recálculo (etapa 2 da saga)
	viper.SetDefault("RECOMPUTE_RETRY_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("RECOMPUTE_RETRY_ENABLED", true)
	viper.SetDefault("RECOMPUTE_RETRY_MAX_ATTEMPTS", 5)
	viper.SetDefault("RECOMPUTE_RETRY_BATCH_SIZE", 50)

	// Defaults da cópia de orçamentos do mês anterior
	viper.SetDefault("BUDGET_ROLLOVER_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("BUDGET_ROLLOVER_ENABLED", false)
	viper.SetDefault("BUDGET_ROLLOVER_SCOPE", "SALES")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
