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
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Google               Google               `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	MonthlyAnalyticsSync MonthlyAnalyticsSync `mapstructure:",squash"`
	DailyPositionSync    DailyPositionSync    `mapstructure:",squash"`
	DailyTrafficSync     DailyTrafficSync     `mapstructure:",squash"`
	SecretKey            string               `mapstructure:"secret_key"`
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

// Google concentra as credenciais OAuth usadas para renovar os tokens das
// contas conectadas ao Search Console
type Google struct {
	ClientID         string `mapstructure:"google_client_id"`
	ClientSecret     string `mapstructure:"google_client_secret"`
	SearchConsoleURL string `mapstructure:"google_search_console_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type MonthlyAnalyticsSync struct {
	CronSchedule        string `mapstructure:"monthly_analytics_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_analytics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_analytics_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_analytics_sync_enabled"`
	WaitForAllData      bool   `mapstructure:"monthly_analytics_sync_wait_for_all_data"`
}

type DailyPositionSync struct {
	CronSchedule        string `mapstructure:"daily_position_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"daily_position_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"daily_position_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"daily_position_sync_enabled"`
}

type DailyTrafficSync struct {
	CronSchedule        string `mapstructure:"daily_traffic_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"daily_traffic_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"daily_traffic_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"daily_traffic_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seo_campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_SEARCH_CONSOLE_URL", "https://www.googleapis.com/webmasters/v3")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização mensal de analytics
	viper.SetDefault("MONTHLY_ANALYTICS_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_ANALYTICS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre campanhas
	viper.SetDefault("MONTHLY_ANALYTICS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 campanhas concorrentes
	viper.SetDefault("MONTHLY_ANALYTICS_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_ANALYTICS_SYNC_WAIT_FOR_ALL_DATA", true) // Na carga mensal aguardamos a cota liberar

	// Defaults para sincronização diária de posições
	viper.SetDefault("DAILY_POSITION_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_POSITION_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("DAILY_POSITION_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("DAILY_POSITION_SYNC_ENABLED", false)

	// Defaults para sincronização diária de tráfego (depois das posições, para sequenciar dependências)
	viper.SetDefault("DAILY_TRAFFIC_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DAILY_TRAFFIC_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("DAILY_TRAFFIC_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("DAILY_TRAFFIC_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
