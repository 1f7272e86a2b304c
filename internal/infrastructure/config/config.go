package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	MySQL MySQLConfig
	Admin AdminConfig
}

type MySQLConfig struct {
	DSN        string `env:"MYSQL_DSN,        default=root:root@tcp(localhost:3306)/user_management?parseTime=true"`
	Migrations string `env:"MYSQL_MIGRATIONS, default=file://internal/infrastructure/db/mysql/migrations"`
}

// AdminConfig describes the bootstrap administrator ensured at startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@admin.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
