package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Upload   Upload   `mapstructure:",squash"`
	Forecast Forecast `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database cobre apenas o comportamento do caminho via banco: driver, porta
// padrão e timeout da conexão aberta por requisição. Host, nome do banco,
// usuário e senha chegam no estado dos widgets de cada requisição.
type Database struct {
	Driver                string `mapstructure:"database_driver"`
	DefaultPort           string `mapstructure:"database_default_port"`
	SSLMode               string `mapstructure:"database_sslmode"`
	ConnectTimeoutSeconds int    `mapstructure:"database_connect_timeout_seconds"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

// Forecast define os limites do widget de horizonte e as ordens do modelo
// SARIMA usado na delegação da previsão
type Forecast struct {
	MinHorizonDays     int `mapstructure:"forecast_min_horizon_days"`
	MaxHorizonDays     int `mapstructure:"forecast_max_horizon_days"`
	DefaultHorizonDays int `mapstructure:"forecast_default_horizon_days"`

	P int `mapstructure:"forecast_sarima_p"`
	D int `mapstructure:"forecast_sarima_d"`
	Q int `mapstructure:"forecast_sarima_q"`

	SeasonalP      int `mapstructure:"forecast_sarima_seasonal_p"`
	SeasonalD      int `mapstructure:"forecast_sarima_seasonal_d"`
	SeasonalQ      int `mapstructure:"forecast_sarima_seasonal_q"`
	SeasonalPeriod int `mapstructure:"forecast_sarima_seasonal_period"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_DEFAULT_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT_SECONDS", 10)

	viper.SetDefault("UPLOAD_MAX_BYTES", 16<<20) // 16 MiB por arquivo enviado

	// Limites do widget de horizonte de previsão
	viper.SetDefault("FORECAST_MIN_HORIZON_DAYS", 7)
	viper.SetDefault("FORECAST_MAX_HORIZON_DAYS", 365)
	viper.SetDefault("FORECAST_DEFAULT_HORIZON_DAYS", 30)

	// SARIMA(1,1,1)(0,1,1)[7] para séries diárias com sazonalidade semanal
	viper.SetDefault("FORECAST_SARIMA_P", 1)
	viper.SetDefault("FORECAST_SARIMA_D", 1)
	viper.SetDefault("FORECAST_SARIMA_Q", 1)
	viper.SetDefault("FORECAST_SARIMA_SEASONAL_P", 0)
	viper.SetDefault("FORECAST_SARIMA_SEASONAL_D", 1)
	viper.SetDefault("FORECAST_SARIMA_SEASONAL_Q", 1)
	viper.SetDefault("FORECAST_SARIMA_SEASONAL_PERIOD", 7)
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
