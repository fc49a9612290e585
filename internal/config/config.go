package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	LiveIQ       LiveIQ       `mapstructure:",squash"`
	Connectivity Connectivity `mapstructure:",squash"`
	Fetch        Fetch        `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	AccountCheck AccountCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	ConfigPassword string `mapstructure:"config_password"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type LiveIQ struct {
	BaseURL string        `mapstructure:"liveiq_base_url"`
	Timeout time.Duration `mapstructure:"liveiq_timeout"`
}

// Connectivity controla a verificação de DNS feita antes de cada relatório
type Connectivity struct {
	Enabled bool   `mapstructure:"connectivity_check_enabled"`
	Host    string `mapstructure:"connectivity_check_host"`
}

type Fetch struct {
	MaxAttempts int           `mapstructure:"fetch_max_attempts"`
	MinBackoff  time.Duration `mapstructure:"fetch_min_backoff"`
	MaxBackoff  time.Duration `mapstructure:"fetch_max_backoff"`
}

type Storage struct {
	ConfigFile   string `mapstructure:"config_file"`
	ReportsDir   string `mapstructure:"reports_dir"`
	ErrorLogFile string `mapstructure:"error_log_file"`
}

type AccountCheck struct {
	CronSchedule      string `mapstructure:"account_check_cron"`
	MaxConcurrentJobs int    `mapstructure:"account_check_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"account_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CONFIG_PASSWORD", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("LIVEIQ_BASE_URL", "https://liveiqfranchiseeapi.subway.com")
	viper.SetDefault("LIVEIQ_TIMEOUT", "10s")

	viper.SetDefault("CONNECTIVITY_CHECK_ENABLED", true)
	viper.SetDefault("CONNECTIVITY_CHECK_HOST", "google.com")

	// Política de retentativa das chamadas à LiveIQ
	viper.SetDefault("FETCH_MAX_ATTEMPTS", 3)    // 3 tentativas no total
	viper.SetDefault("FETCH_MIN_BACKOFF", "4s")  // primeira espera
	viper.SetDefault("FETCH_MAX_BACKOFF", "10s") // espera máxima

	viper.SetDefault("CONFIG_FILE", "config.dat")
	viper.SetDefault("REPORTS_DIR", "reports")
	viper.SetDefault("ERROR_LOG_FILE", "error.log")

	viper.SetDefault("ACCOUNT_CHECK_CRON", "0 */6 * * *")    // A cada 6 horas
	viper.SetDefault("ACCOUNT_CHECK_MAX_CONCURRENT_JOBS", 2) // 2 contas verificadas em paralelo
	viper.SetDefault("ACCOUNT_CHECK_ENABLED", false)         // Verificação periódica das contas
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Fetch.MaxAttempts < 1 {
		config.Fetch.MaxAttempts = 1
	}

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
