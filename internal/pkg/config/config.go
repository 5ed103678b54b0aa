package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Ledger  LedgerConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type LedgerConfig struct {
	BaseURL string        `env:"LEDGER_BASE_URL, default=http://localhost:8081"`
	Timeout time.Duration `env:"LEDGER_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	Backend string        `env:"SESSION_BACKEND, default=memory"`
	TTL     time.Duration `env:"SESSION_TTL,     default=8h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=operator_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Pretty reports whether logs should use the console writer.
func (c *Config) Pretty() bool {
	return c.Env == "development"
}

// LoadContext reads configuration from environment variables using
// go-envconfig. Lookuper may be nil, in which case the process environment
// is used.
func LoadContext(ctx context.Context, lookuper ...envconfig.Lookuper) (*Config, error) {
	var cfg Config
	ec := &envconfig.Config{Target: &cfg}
	if len(lookuper) > 0 && lookuper[0] != nil {
		ec.Lookuper = lookuper[0]
	}
	if err := envconfig.ProcessWith(ctx, ec); err != nil {
		return nil, err
	}
	switch cfg.Session.Backend {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return nil, fmt.Errorf("config: unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
