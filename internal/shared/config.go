package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":4000"`
	MetricsAddr     string        `env:"METRICS_ADDR"`
	Catalog         string        `env:"REVIEW_CATALOG" envDefault:"backend"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPass       string        `env:"REDIS_PASSWORD" json:"-"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"15m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ClientConfig holds what the review client reads; server settings are ignored.
type ClientConfig struct {
	AppEnv string `env:"APP_ENV" envDefault:"prod"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return c, nil
}

func (c Config) Dev() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }

func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	var c ClientConfig
	if err := env.Parse(&c); err != nil {
		return ClientConfig{}, fmt.Errorf("env.Parse: %w", err)
	}
	return c, nil
}

func (c ClientConfig) Dev() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }
