package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := FromEnv(envOf(nil))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, DriverMemory, cfg.Driver)
		assert.Equal(t, SchedulerLocal, cfg.Scheduler)
		assert.Equal(t, 2*time.Second, cfg.TransferDelay)
		assert.Equal(t, 2*time.Second, cfg.PollInterval)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("Full", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{
			"APP_ENV":                   "production",
			"HTTP_PORT":                 "9090",
			"LOG_LEVEL":                 "debug",
			"STORE_DRIVER":              "DynamoDB",
			"DYNAMODB_STORE_TABLE_NAME": "wallet-store",
			"TRANSFER_SCHEDULER":        "sqs",
			"SQS_QUEUE_URL":             "https://sqs.local/q",
			"TRANSFER_DELAY":            "500",
			"STORE_POLL_INTERVAL":       "750ms",
		}))
		require.NoError(t, err)

		assert.False(t, cfg.IsDevelopment())
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, DriverDynamoDB, cfg.Driver)
		assert.Equal(t, "wallet-store", cfg.TableName)
		assert.Equal(t, "https://sqs.local/q", cfg.QueueURL)
		assert.Equal(t, 500*time.Millisecond, cfg.TransferDelay)
		assert.Equal(t, 750*time.Millisecond, cfg.PollInterval)
	})

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"Unknown Driver", map[string]string{"STORE_DRIVER": "redis"}, `unknown STORE_DRIVER "redis"`},
		{"File Without Path", map[string]string{"STORE_DRIVER": "file"}, "STORE_PATH must be set"},
		{"Badger Without Path", map[string]string{"STORE_DRIVER": "badger"}, "STORE_PATH must be set"},
		{"DynamoDB Without Table", map[string]string{"STORE_DRIVER": "dynamodb"}, "DYNAMODB_STORE_TABLE_NAME must be set"},
		{"SQS Without Queue", map[string]string{"TRANSFER_SCHEDULER": "sqs"}, "SQS_QUEUE_URL must be set"},
		{"SQS With Memory Store", map[string]string{"TRANSFER_SCHEDULER": "sqs", "SQS_QUEUE_URL": "https://sqs.local/q"}, "requires STORE_DRIVER=dynamodb, got memory"},
		{"SQS With SQLite Store", map[string]string{"TRANSFER_SCHEDULER": "sqs", "SQS_QUEUE_URL": "https://sqs.local/q", "STORE_DRIVER": "sqlite", "STORE_PATH": "w.db"}, "requires STORE_DRIVER=dynamodb, got sqlite"},
		{"Bad Poll Interval", map[string]string{"STORE_POLL_INTERVAL": "0s"}, "invalid STORE_POLL_INTERVAL"},
		{"Unknown Scheduler", map[string]string{"TRANSFER_SCHEDULER": "cron"}, "unknown TRANSFER_SCHEDULER"},
		{"Bad Delay", map[string]string{"TRANSFER_DELAY": "soon"}, "invalid TRANSFER_DELAY"},
		{"Negative Delay", map[string]string{"TRANSFER_DELAY": "-1s"}, "must not be negative"},
		{"Bad Log Level", map[string]string{"LOG_LEVEL": "loud"}, "invalid LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
