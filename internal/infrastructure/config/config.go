package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionTTL of zero keeps the reference behaviour: sessions never expire.
	SessionTTL time.Duration `env:"SESSION_TTL, default=0"`

	// SearchRadiusKm bounds provider chore visibility around their location.
	SearchRadiusKm float64 `env:"SEARCH_RADIUS_KM, default=10"`

	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type RateLimitConfig struct {
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
	Max    int           `env:"RATE_LIMIT_MAX,    default=120"`
}

// RedisConfig is optional: with no Addr the API runs fully in-process and
// rate limiting falls back to the in-memory fixed-window limiter.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
