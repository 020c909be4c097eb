package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	YouTube      YouTube      `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	EarningsSync EarningsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
}

type YouTube struct {
	APIBaseURL       string `mapstructure:"youtube_api_base_url"`
	AnalyticsBaseURL string `mapstructure:"youtube_analytics_base_url"`
	TokenURL         string `mapstructure:"youtube_token_url"`
	ClientID         string `mapstructure:"youtube_client_id"`
	ClientSecret     string `mapstructure:"youtube_client_secret"`
	ContentOwnerID   string `mapstructure:"youtube_content_owner_id"`
}

type Auth struct {
	Secret            string `mapstructure:"auth_secret"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
}

type EarningsSync struct {
	CronSchedule   string `mapstructure:"earnings_sync_cron"`
	RequestDelayMs int    `mapstructure:"earnings_sync_request_delay_ms"`
	Enabled        bool   `mapstructure:"earnings_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/earnings")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_ANALYTICS_BASE_URL", "https://youtubeanalytics.googleapis.com/v2")
	viper.SetDefault("YOUTUBE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("YOUTUBE_CLIENT_ID", "your_client_id")
	viper.SetDefault("YOUTUBE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("YOUTUBE_CONTENT_OWNER_ID", "your_content_owner_id")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	// Defaults para a sincronização diária de receitas
	viper.SetDefault("EARNINGS_SYNC_CRON", "0 6 * * *")     // Todos os dias às 6h da manhã
	viper.SetDefault("EARNINGS_SYNC_REQUEST_DELAY_MS", 150) // Delay entre requisições por entidade
	viper.SetDefault("EARNINGS_SYNC_ENABLED", false)        // Habilitar sincronização diária

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
