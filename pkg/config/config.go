package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverBadger   = "badger"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

// Transfer schedulers.
const (
	SchedulerLocal = "local"
	SchedulerSQS   = "sqs"
)

// Config is the process configuration read from the environment.
type Config struct {
	Env       string
	HTTPPort  string
	LogLevel  slog.Level
	Driver    string
	StorePath string
	TableName string
	// PollInterval is how often stores without push notifications look for remote writes.
	PollInterval time.Duration

	Scheduler     string
	QueueURL      string
	TransferDelay time.Duration
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when present and then the environment.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:       get("APP_ENV", "development"),
		HTTPPort:  get("HTTP_PORT", "8080"),
		Driver:    strings.ToLower(get("STORE_DRIVER", DriverMemory)),
		StorePath: get("STORE_PATH", ""),
		TableName: get("DYNAMODB_STORE_TABLE_NAME", ""),
		Scheduler: strings.ToLower(get("TRANSFER_SCHEDULER", SchedulerLocal)),
		QueueURL:  get("SQS_QUEUE_URL", ""),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	poll, err := time.ParseDuration(get("STORE_POLL_INTERVAL", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_POLL_INTERVAL: %w", err)
	}
	if poll <= 0 {
		return nil, fmt.Errorf("invalid STORE_POLL_INTERVAL: must be positive")
	}
	cfg.PollInterval = poll

	delay := get("TRANSFER_DELAY", "2s")
	d, err := time.ParseDuration(delay)
	if err != nil {
		ms, convErr := strconv.Atoi(delay)
		if convErr != nil {
			return nil, fmt.Errorf("invalid TRANSFER_DELAY: %w", err)
		}
		d = time.Duration(ms) * time.Millisecond
	}
	if d < 0 {
		return nil, fmt.Errorf("invalid TRANSFER_DELAY: must not be negative")
	}
	cfg.TransferDelay = d

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverMemory:
	case DriverFile, DriverBadger, DriverSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("STORE_PATH must be set for the %s driver", c.Driver)
		}
	case DriverDynamoDB:
		if c.TableName == "" {
			return fmt.Errorf("DYNAMODB_STORE_TABLE_NAME must be set for the %s driver", c.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Driver)
	}

	switch c.Scheduler {
	case SchedulerLocal:
	case SchedulerSQS:
		if c.QueueURL == "" {
			return fmt.Errorf("SQS_QUEUE_URL must be set for the %s scheduler", c.Scheduler)
		}
		// the transfer lambda only writes to DynamoDB
		if c.Driver != DriverDynamoDB {
			return fmt.Errorf("the %s scheduler requires STORE_DRIVER=%s, got %s", c.Scheduler, DriverDynamoDB, c.Driver)
		}
	default:
		return fmt.Errorf("unknown TRANSFER_SCHEDULER %q", c.Scheduler)
	}
	return nil
}
