package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed once in main and passed down.
type Config struct {
	Server   Server
	Backend  Backend
	Rules    Rules
	Registry Registry
	Cache    Cache
	Redis    RedisConfig
	Audit    Audit
	Log      Log
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"GMARM_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"GMARM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Backend points at the persistence/API service that owns clients,
// documents and weapon assignments.
type Backend struct {
	BaseURL    string        `env:"GMARM_API_URL" envDefault:"http://localhost:8081/api"`
	Token      string        `env:"GMARM_API_TOKEN"`
	Timeout    time.Duration `env:"GMARM_API_TIMEOUT" envDefault:"15s"`
	UploadSize int64         `env:"GMARM_MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// BreakerThreshold consecutive unavailable responses open the circuit
	// for BreakerCooldown; 0 disables it.
	BreakerThreshold int           `env:"GMARM_API_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown  time.Duration `env:"GMARM_API_BREAKER_COOLDOWN" envDefault:"30s"`
}

// Rules holds the fallback values used when the backend cannot provide the
// regulatory parameters. They are the only place these numbers appear.
type Rules struct {
	MinimumPurchaseAge int     `env:"GMARM_MIN_PURCHASE_AGE" envDefault:"25"`
	TaxRate            float64 `env:"GMARM_TAX_RATE" envDefault:"0.15"`
}

// Registry configures the client-type registry load/retry lifecycle.
type Registry struct {
	RetryDelays []time.Duration `env:"GMARM_REGISTRY_RETRY_DELAYS" envDefault:"2s,4s,6s" envSeparator:","`
}

// Cache configures the document-requirement cache.
type Cache struct {
	RequirementsTTL time.Duration `env:"GMARM_REQUIREMENTS_TTL" envDefault:"10m"`
}

// RedisConfig enables the shared requirements cache when URL is set.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Audit selects where the compliance trail goes: Postgres when DatabaseURL
// is set, memory otherwise. Brokers add the Kafka stream on top.
type Audit struct {
	DatabaseURL  string   `env:"DATABASE_URL"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"GMARM_AUDIT_TOPIC" envDefault:"gmarm.audit"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Rules.MinimumPurchaseAge <= 0 {
		return Config{}, fmt.Errorf("GMARM_MIN_PURCHASE_AGE must be positive")
	}
	if cfg.Rules.TaxRate < 0 || cfg.Rules.TaxRate >= 1 {
		return Config{}, fmt.Errorf("GMARM_TAX_RATE must be in [0,1)")
	}
	return cfg, nil
}
