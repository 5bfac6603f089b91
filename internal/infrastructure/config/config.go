package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionCookie names the cookie carrying the session token.
	SessionCookie string `env:"SESSION_COOKIE, default=session"`
	// UserIDHeader carries a caller-asserted identity on trusted
	// server-to-server calls; treat it as authoritative only behind
	// infrastructure that strips it from external traffic.
	UserIDHeader string `env:"USER_ID_HEADER, default=X-User-Id"`

	// PlatformCacheTTL bounds how stale the cached platform tenant id may be.
	PlatformCacheTTL time.Duration `env:"PLATFORM_CACHE_TTL, default=1m"`
	// AuditWorkers sizes the audit dispatcher pool.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=platform_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
