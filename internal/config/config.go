package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MinJWTSecretLength is the shortest HS256 signing key accepted when admin
// auth is enabled.
const MinJWTSecretLength = 32

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"5000"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"trivia"`
	DBPath     string `env:"DB_PATH" envDefault:"trivia.db"`

	Seed bool `env:"TRIVIA_SEED" envDefault:"false"`

	AdminPasswordHash string `env:"TRIVIA_ADMIN_PASSWORD_HASH"`
	JWTSecret         string `env:"JWT_SECRET"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.AuthEnabled() && len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes when TRIVIA_ADMIN_PASSWORD_HASH is set", MinJWTSecretLength)
	}
	return &cfg, nil
}

// AuthEnabled reports whether mutating endpoints require an admin token.
func (c *Config) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}
