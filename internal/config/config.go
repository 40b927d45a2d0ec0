package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SinkModeDatabase = "database"
	SinkModeHTTP     = "http"

	// DevAuthSecret só é aceito com APP_ENV de desenvolvimento
	DevAuthSecret = "your_secret_key"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	GoogleAds     GoogleAds     `mapstructure:",squash"`
	Render        Render        `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Ingestion     Ingestion     `mapstructure:",squash"`
	Discovery     Discovery     `mapstructure:",squash"`
	Sink          Sink          `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type GoogleAds struct {
	BaseURL               string `mapstructure:"google_ads_base_url"`
	URL                   string `mapstructure:"-"`
	Version               string `mapstructure:"google_ads_version"`
	TokenURL              string `mapstructure:"google_ads_token_url"`
	ClientID              string `mapstructure:"google_ads_client_id"`
	ClientSecret          string `mapstructure:"google_ads_client_secret"`
	DeveloperToken        string `mapstructure:"google_ads_developer_token"`
	LoginCustomerID       string `mapstructure:"google_ads_login_customer_id"`
	RequestTimeoutSeconds int    `mapstructure:"google_ads_request_timeout_seconds"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	BaseURL   string `mapstructure:"render_base_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Ingestion struct {
	AllowFallback bool   `mapstructure:"ingestion_allow_fallback"`
	LookbackDays  int    `mapstructure:"ingestion_lookback_days"`
	Platform      string `mapstructure:"ingestion_platform"`
}

type Discovery struct {
	ExpandChildren       bool `mapstructure:"discovery_expand_children"`
	MaxConcurrentLookups int  `mapstructure:"discovery_max_concurrent_lookups"`
}

type Sink struct {
	Mode           string `mapstructure:"sink_mode"`
	URL            string `mapstructure:"sink_url"`
	SharedSecret   string `mapstructure:"sink_shared_secret"`
	TimeoutSeconds int    `mapstructure:"sink_timeout_seconds"`
	BatchSize      int    `mapstructure:"sink_batch_size"`
}

type IngestionSync struct {
	CronSchedule        string `mapstructure:"ingestion_sync_cron"`
	LookbackDays        int    `mapstructure:"ingestion_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"ingestion_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ingestion_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ingestion_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "") // MCC padrão quando a credencial não tem um
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("INGESTION_ALLOW_FALLBACK", true)
	viper.SetDefault("INGESTION_LOOKBACK_DAYS", 7)
	viper.SetDefault("INGESTION_PLATFORM", "google_ads")

	viper.SetDefault("DISCOVERY_EXPAND_CHILDREN", true)
	viper.SetDefault("DISCOVERY_MAX_CONCURRENT_LOOKUPS", 4)

	viper.SetDefault("SINK_MODE", SinkModeDatabase)
	viper.SetDefault("SINK_URL", "")
	viper.SetDefault("SINK_SHARED_SECRET", "")
	viper.SetDefault("SINK_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SINK_BATCH_SIZE", 500)

	// Sincronização periódica das contas vinculadas
	viper.SetDefault("INGESTION_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("INGESTION_SYNC_LOOKBACK_DAYS", 3)         // Reprocessa os últimos 3 dias
	viper.SetDefault("INGESTION_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre usuários
	viper.SetDefault("INGESTION_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INGESTION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// Normalize preenche os campos derivados e valida combinações inválidas.
func (c *Config) Normalize() error {
	c.GoogleAds.BaseURL = strings.TrimRight(c.GoogleAds.BaseURL, "/")
	c.GoogleAds.URL = fmt.Sprintf("%s/%s", c.GoogleAds.BaseURL, c.GoogleAds.Version)
	c.GoogleAds.LoginCustomerID = strings.ReplaceAll(c.GoogleAds.LoginCustomerID, "-", "")

	switch c.Database.Driver {
	case DriverSQLite:
		c.Database.DSN = c.Database.URL
	case DriverPostgres, "postgresql":
		c.Database.Driver = DriverPostgres
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	default:
		return fmt.Errorf("config: driver de banco não suportado: %q", c.Database.Driver)
	}

	switch c.Sink.Mode {
	case SinkModeDatabase:
	case SinkModeHTTP:
		if c.Sink.URL == "" {
			return fmt.Errorf("config: SINK_URL é obrigatório quando SINK_MODE=%s", SinkModeHTTP)
		}
	default:
		return fmt.Errorf("config: modo de sink inválido: %q", c.Sink.Mode)
	}

	// Com Render o AUTH_SECRET pode chegar depois, em LoadSecrets
	if c.Render.ServiceID == "" {
		if err := c.ValidateAuthSecret(); err != nil {
			return err
		}
	}

	if c.Ingestion.LookbackDays <= 0 {
		c.Ingestion.LookbackDays = 7
	}
	if c.Discovery.MaxConcurrentLookups <= 0 {
		c.Discovery.MaxConcurrentLookups = 1
	}
	if c.IngestionSync.MaxConcurrentJobs <= 0 {
		c.IngestionSync.MaxConcurrentJobs = 1
	}

	return nil
}

// ValidateAuthSecret recusa um AUTH_SECRET vazio ou o valor de desenvolvimento fora de
// APP_ENV=development. Em desenvolvimento um secret vazio recebe DevAuthSecret.
func (c *Config) ValidateAuthSecret() error {
	if log.IsDevelopment() {
		if c.Auth.Secret == "" {
			c.Auth.Secret = DevAuthSecret
		}
		return nil
	}

	if c.Auth.Secret == "" || c.Auth.Secret == DevAuthSecret {
		return fmt.Errorf("config: AUTH_SECRET precisa ser definido fora de desenvolvimento")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
