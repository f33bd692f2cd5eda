package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pending  PendingConfig
	Worker   WorkerConfig
	Wager    WagerConfig
	Remote   RemoteConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	FlipWaitTimeout time.Duration `env:"SERVER_FLIP_WAIT_TIMEOUT" envDefault:"75s"`
	PrettyLogs      bool          `env:"SERVER_PRETTY_LOGS" envDefault:"true"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"coinflip"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// PendingConfig selects where in-flight wagers are kept until their callback fires.
type PendingConfig struct {
	Store      string        `env:"PENDING_STORE" envDefault:"memory"`
	TTL        time.Duration `env:"PENDING_TTL" envDefault:"5m"`
	SweepLimit int           `env:"PENDING_SWEEP_LIMIT" envDefault:"50"`
}
type WorkerConfig struct {
	ExpiryInterval time.Duration `env:"WORKER_EXPIRY_INTERVAL" envDefault:"1m"`
}

// WagerConfig amounts are in the smallest currency unit (yocto).
type WagerConfig struct {
	MinDeposit  decimal.Decimal `env:"WAGER_MIN_DEPOSIT" envDefault:"10000000000000000000000"`
	CallbackGas uint64          `env:"WAGER_CALLBACK_GAS" envDefault:"5000000000000"`
	DefaultGas  uint64          `env:"WAGER_DEFAULT_GAS" envDefault:"300000000000000"`
}
type RemoteConfig struct {
	Mode                string        `env:"REMOTE_MODE" envDefault:"local"`
	URL                 string        `env:"REMOTE_URL" envDefault:"http://localhost:8080"`
	ContractID          string        `env:"REMOTE_CONTRACT_ID" envDefault:"outlayer.near"`
	Repo                string        `env:"REMOTE_REPO" envDefault:"https://github.com/zavodil/random-ark"`
	Commit              string        `env:"REMOTE_COMMIT" envDefault:"main"`
	BuildTarget         string        `env:"REMOTE_BUILD_TARGET" envDefault:"wasm32-wasip1"`
	MaxInstructions     uint64        `env:"REMOTE_MAX_INSTRUCTIONS" envDefault:"10000000000"`
	MaxMemoryMB         uint32        `env:"REMOTE_MAX_MEMORY_MB" envDefault:"128"`
	MaxExecutionSeconds uint64        `env:"REMOTE_MAX_EXECUTION_SECONDS" envDefault:"60"`
	MinGas              uint64        `env:"REMOTE_MIN_GAS" envDefault:"10000000000000"`
	CallTimeout         time.Duration `env:"REMOTE_CALL_TIMEOUT" envDefault:"70s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Wager.MinDeposit.IsNegative() || !cfg.Wager.MinDeposit.IsInteger() {
		return nil, fmt.Errorf("WAGER_MIN_DEPOSIT must be a non-negative integer, got %s", cfg.Wager.MinDeposit)
	}
	switch cfg.Pending.Store {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("unknown PENDING_STORE %q", cfg.Pending.Store)
	}
	switch cfg.Remote.Mode {
	case "local", "http":
	default:
		return nil, fmt.Errorf("unknown REMOTE_MODE %q", cfg.Remote.Mode)
	}
	return cfg, nil
}
