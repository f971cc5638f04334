package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	ExchangeDB `yaml:"exchange_db"`
	Exchange   `yaml:"exchange"`
	Kafka      `yaml:"kafka"`
	Auth       `yaml:"auth"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type ExchangeDB struct {
	Dsn            string `yaml:"dsn" env:"EXCHANGE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"EXCHANGE_MIGRATIONS_PATH"`
}

type Exchange struct {
	FeeRate             float64       `yaml:"fee_rate" env-default:"0.001"`
	ReferenceCurrency   string        `yaml:"reference_currency" env-default:"USDT"`
	RateRefreshInterval time.Duration `yaml:"rate_refresh_interval" env-default:"30s"`
	StuckTxTimeout      time.Duration `yaml:"stuck_tx_timeout" env-default:"5m"`
	StuckSweepInterval  time.Duration `yaml:"stuck_sweep_interval" env-default:"1m"`
}

type Kafka struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"exchange-events"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
