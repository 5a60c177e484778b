package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string        `env:"JWT_SECRET, required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,  default=30m"`
	AuthProviderURL string        `env:"AUTH_PROVIDER_URL, required"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173"`
	StaticDir   string   `env:"STATIC_DIR, default=static"`

	Postgres PostgresConfig
	Storage  StorageConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL, required"`
}

type StorageConfig struct {
	Endpoint      string `env:"STORAGE_ENDPOINT, required"`
	Region        string `env:"STORAGE_REGION,   default=us-east-1"`
	Bucket        string `env:"STORAGE_BUCKET,   default=newsimages"`
	AccessKey     string `env:"STORAGE_ACCESS_KEY, required"`
	SecretKey     string `env:"STORAGE_SECRET_KEY, required"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_URL"`
	UsePathStyle  bool   `env:"STORAGE_PATH_STYLE, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values (signing secret, provider URL, store credentials)
// fail here, before any traffic is served.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
