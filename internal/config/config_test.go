package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking_service/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("falls back to environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
		t.Setenv("POSTGRES_STATEMENT_TIMEOUT", "2s")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.HTTPPort)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
		assert.Equal(t, 2*time.Second, cfg.PostgresStatementTimeout)
		assert.Equal(t, "tracking-events", cfg.KafkaEventsTopic)
		assert.True(t, cfg.PostgresAutoMigrate)
	})

	t.Run("reads env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "HTTP_PORT=7070\nKAFKA_EVENTS_TOPIC=events\nPOSTGRES_AUTO_MIGRATE=false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.HTTPPort)
		assert.Equal(t, "events", cfg.KafkaEventsTopic)
		assert.False(t, cfg.PostgresAutoMigrate)
		assert.Equal(t, int32(5), cfg.PostgresMaxConn)
	})
}
