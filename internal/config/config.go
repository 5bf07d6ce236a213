package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port           string        `envconfig:"PORT" default:"8084"`
	DataDir        string        `envconfig:"DATA_DIR" default:"data"`
	StoreBackend   string        `envconfig:"STORE_BACKEND" default:"file"`
	StoreDSN       string        `envconfig:"STORE_DB_DSN"`
	RabbitURL      string        `envconfig:"RABBITMQ_URL"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"json"`
	CORSOrigins    []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendFile, BackendMemory:
	case BackendPostgres:
		if c.StoreDSN == "" {
			return fmt.Errorf("STORE_DB_DSN is required when STORE_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}
