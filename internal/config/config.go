package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	BackendPostgres   = "postgres"
	BackendDatabricks = "databricks"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	WatchlistGauge WatchlistGauge `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Backend         string        `mapstructure:"database_backend"`
	Host            string        `mapstructure:"database_host"`
	Port            int           `mapstructure:"database_port"`
	User            string        `mapstructure:"database_user"`
	Password        string        `mapstructure:"database_password"`
	Name            string        `mapstructure:"database_name"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	Token           string        `mapstructure:"database_token"`
	HTTPPath        string        `mapstructure:"database_http_path"`
	Catalog         string        `mapstructure:"database_catalog"`
	Schema          string        `mapstructure:"database_schema"` // qualifica as tabelas nos dois backends
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	ConnectTimeout  time.Duration `mapstructure:"database_connect_timeout"`
	QueryTimeout    time.Duration `mapstructure:"database_query_timeout"`
}

type Dashboard struct {
	Locale         string `mapstructure:"dashboard_locale"`
	CurrencySymbol string `mapstructure:"dashboard_currency_symbol"`
	UpcomingLimit  int    `mapstructure:"dashboard_upcoming_limit"`
}

type WatchlistGauge struct {
	CronSchedule string `mapstructure:"watchlist_gauge_cron"`
	Enabled      bool   `mapstructure:"watchlist_gauge_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_BACKEND", BackendPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", 5432)
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_NAME", "crm")
	viper.SetDefault("DATABASE_SSLMODE", "require") // criptografia em trânsito ligada por padrão
	viper.SetDefault("DATABASE_SCHEMA", "crm_cri")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "15m")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "15s")

	viper.SetDefault("DASHBOARD_LOCALE", "pt-BR")
	viper.SetDefault("DASHBOARD_CURRENCY_SYMBOL", "R$")
	viper.SetDefault("DASHBOARD_UPCOMING_LIMIT", 3)

	viper.SetDefault("WATCHLIST_GAUGE_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("WATCHLIST_GAUGE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	dsn, err := config.Database.BuildDSN()
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

// BuildDSN monta a string de conexão conforme o backend configurado
func (d Database) BuildDSN() (string, error) {
	switch strings.ToLower(d.Backend) {
	case BackendPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "require"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:     d.Name,
			RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
		}
		return u.String(), nil

	case BackendDatabricks:
		port := d.Port
		if port == 0 || port == 5432 {
			port = 443
		}
		query := url.Values{}
		if d.Catalog != "" {
			query.Set("catalog", d.Catalog)
		}
		if d.Schema != "" {
			query.Set("schema", d.Schema)
		}
		dsn := fmt.Sprintf("token:%s@%s:%d/%s", d.Token, d.Host, port, strings.TrimPrefix(d.HTTPPath, "/"))
		if encoded := query.Encode(); encoded != "" {
			dsn += "?" + encoded
		}
		return dsn, nil
	}

	return "", fmt.Errorf("backend de banco desconhecido: %q", d.Backend)
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
