package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
	DriverMemory   = "memory"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Feed       Feed       `mapstructure:",squash"`
	FeedSync   FeedSync   `mapstructure:",squash"`
	Pagination Pagination `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	Name     string `mapstructure:"database_name"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Feed struct {
	URL     string        `mapstructure:"feed_url"`
	Timeout time.Duration `mapstructure:"feed_timeout"`
}

type FeedSync struct {
	CronSchedule string `mapstructure:"feed_sync_cron"`
	Enabled      bool   `mapstructure:"feed_sync_enabled"`
}

type Pagination struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

type Dashboard struct {
	APIURL string `mapstructure:"dashboard_api_url"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/transactions")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_NAME", "transactions") // Usado apenas pelo MongoDB
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("FEED_URL", "https://s3.amazonaws.com/roxiler.com/product_transaction.json")
	viper.SetDefault("FEED_TIMEOUT", "30s")

	// Recarga periódica do feed, desabilitada por padrão
	viper.SetDefault("FEED_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("FEED_SYNC_ENABLED", false)

	viper.SetDefault("DEFAULT_PER_PAGE", 10)
	viper.SetDefault("MAX_PER_PAGE", 100)

	viper.SetDefault("DASHBOARD_API_URL", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.L.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if config.Pagination.DefaultPerPage <= 0 {
		return nil, fmt.Errorf("config: DEFAULT_PER_PAGE deve ser positivo, recebido %d", config.Pagination.DefaultPerPage)
	}
	if config.Pagination.MaxPerPage < config.Pagination.DefaultPerPage {
		config.Pagination.MaxPerPage = config.Pagination.DefaultPerPage
	}

	dsn, err := buildDSN(config.Database)
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

// buildDSN monta a string de conexão conforme o driver configurado
func buildDSN(db Database) (string, error) {
	switch db.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("postgres://%s@%s", userInfo(db), db.URL)
		if db.SSLMode != "" {
			dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
		}
		return dsn, nil
	case DriverMongoDB:
		if db.User == "" {
			return fmt.Sprintf("mongodb://%s", db.URL), nil
		}
		return fmt.Sprintf("mongodb://%s@%s", userInfo(db), db.URL), nil
	case DriverMemory:
		return "", nil
	default:
		return "", fmt.Errorf("config: driver de banco de dados desconhecido: %q", db.Driver)
	}
}

func userInfo(db Database) string {
	return url.UserPassword(db.User, db.Password).String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.L.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			log.L.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	log.L.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
