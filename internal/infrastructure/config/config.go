package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend selectors for swappable infrastructure.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	RateLimit RateLimitConfig
	Accounts  AccountsConfig
	Redis     RedisConfig
	Mongo     MongoConfig
}

// RateLimitConfig holds the two bucket limits. Both buckets share the same
// window duration, mirroring the original dashboard's 15-minute windows.
type RateLimitConfig struct {
	// Backend selects the window store: "memory" or "redis".
	Backend      string        `env:"RATE_LIMIT_BACKEND, default=memory"`
	Window       time.Duration `env:"RATE_LIMIT_WINDOW,  default=15m"`
	GeneralLimit int           `env:"RATE_LIMIT_GENERAL, default=100"`
	AuthLimit    int           `env:"RATE_LIMIT_AUTH,    default=5"`
}

// AccountsConfig selects where accounts live: the seeded in-memory store or
// a MongoDB collection.
type AccountsConfig struct {
	Backend string `env:"ACCOUNTS_BACKEND, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dashboard"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
