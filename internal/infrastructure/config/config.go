package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Upload  UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backend_development"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=bd_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
	// Secure marks the cookie as HTTPS-only; off by default so the demos
	// run over plain HTTP locally.
	Secure bool `env:"SESSION_SECURE, default=false"`
}

type UploadConfig struct {
	Dir       string `env:"UPLOAD_DIR,      default=uploads"`
	MaxSizeMB int64  `env:"UPLOAD_MAX_MB,   default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
