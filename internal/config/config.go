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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	GoogleAds      GoogleAds      `mapstructure:",squash"`
	MerchantCenter MerchantCenter `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SnapshotSync   SnapshotSync   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database configura a conexão com o PostgreSQL. HistoryEnabled desligado
// dispensa o banco por completo: o serviço sobe sem histórico de snapshots.
type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	HistoryEnabled bool   `mapstructure:"snapshot_history_enabled"`
}

// GoogleAds configura o provedor de métricas de anúncios. DeveloperToken
// vazio coloca o serviço de snapshots em modo de demonstração — nenhuma
// chamada é feita à API.
type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	AccessToken     string `mapstructure:"google_ads_access_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

// MerchantCenter configura o provedor do feed de produtos
type MerchantCenter struct {
	BaseURL     string `mapstructure:"merchant_center_base_url"`
	MerchantID  string `mapstructure:"merchant_center_merchant_id"`
	AccessToken string `mapstructure:"merchant_center_access_token"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SnapshotSync configura o job agendado que gera snapshots diários para as
// contas listadas e os grava no histórico
type SnapshotSync struct {
	CronSchedule string   `mapstructure:"snapshot_sync_cron"`
	CustomerIDs  []string `mapstructure:"snapshot_sync_customer_ids"`
	DateRange    string   `mapstructure:"snapshot_sync_date_range"`
	Enabled      bool     `mapstructure:"snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_diagnostics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("SNAPSHOT_HISTORY_ENABLED", false)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "") // vazio = modo demo
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("MERCHANT_CENTER_BASE_URL", "https://shoppingcontent.googleapis.com/content/v2.1")
	viper.SetDefault("MERCHANT_CENTER_MERCHANT_ID", "")
	viper.SetDefault("MERCHANT_CENTER_ACCESS_TOKEN", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do job de sincronização de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_CUSTOMER_IDS", "")
	viper.SetDefault("SNAPSHOT_SYNC_DATE_RANGE", "7d")
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
