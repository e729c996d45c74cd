package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port string `envconfig:"PORT" default:"9090"`

	BookingAPIURL  string `envconfig:"BOOKING_API_URL"`
	BookingAPIKey  string `envconfig:"BOOKING_API_KEY"`
	BookingAPIStub bool   `envconfig:"BOOKING_API_STUB" default:"false"`

	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	DatabaseURL    string        `envconfig:"DATABASE_URL"`
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	DraftTTL       time.Duration `envconfig:"DRAFT_TTL" default:"1h"`

	SubmitRatePerSecond float64 `envconfig:"SUBMIT_RATE_PER_SECOND" default:"2"`
	SubmitBurst         int     `envconfig:"SUBMIT_BURST" default:"5"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file into the environment and binds it.
func Load(envFiles ...string) (Config, error) {
	logger := slog.Default().With("component", "config")

	if err := godotenv.Load(envFiles...); err != nil {
		logger.Info("no .env file loaded", "err", err)
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.SessionBackend = strings.ToLower(cfg.SessionBackend)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.SessionBackend) {
	case BackendMemory:
	case BackendPostgres:
		if len(c.DatabaseURL) == 0 {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingSetting)
		}
	case BackendRedis:
		if len(c.RedisAddr) == 0 {
			return fmt.Errorf("%w: REDIS_ADDR", ErrMissingSetting)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSessionBackend, c.SessionBackend)
	}

	if len(c.BookingAPIURL) == 0 && !c.BookingAPIStub {
		return fmt.Errorf("%w: BOOKING_API_URL", ErrMissingSetting)
	}

	return nil
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// APIURL is the booking API base URL. With the stub enabled and no URL set,
// it points at the stub mounted on this server.
func (c Config) APIURL() string {
	if len(c.BookingAPIURL) == 0 && c.BookingAPIStub {
		return "http://localhost:" + c.Port + "/stub"
	}
	return c.BookingAPIURL
}
