package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := FromEnv(env(nil))
		require.NoError(t, err)
		assert.Equal(t, LedgerMemory, cfg.LedgerBackend)
		assert.Equal(t, EventsNone, cfg.EventsBackend)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, "wallet", cfg.Fabric.WalletPath)
	})

	t.Run("DynamoDB Needs Table", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"LEDGER_BACKEND": "dynamodb"}))
		assert.ErrorContains(t, err, "DYNAMODB_LEDGER_TABLE_NAME")

		cfg, err := FromEnv(env(map[string]string{"LEDGER_BACKEND": "DynamoDB", "DYNAMODB_LEDGER_TABLE_NAME": "regnet"}))
		require.NoError(t, err)
		assert.Equal(t, "regnet", cfg.DynamoDBTable)
	})

	t.Run("SQS Needs Queue", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"EVENTS_BACKEND": "sqs"}))
		assert.ErrorContains(t, err, "SQS_QUEUE_URL")
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"LEDGER_BACKEND": "couchdb"}))
		assert.Error(t, err)
	})

	t.Run("Redis", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{"LEDGER_BACKEND": "redis", "REDIS_DB": "3", "LOG_LEVEL": "debug"}))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

		_, err = FromEnv(env(map[string]string{"REDIS_DB": "x"}))
		assert.Error(t, err)
	})

	t.Run("Fabric", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"LEDGER_BACKEND": "fabric"}))
		assert.Error(t, err)

		cfg, err := FromEnv(env(map[string]string{
			"LEDGER_BACKEND":            "fabric",
			"FABRIC_CONNECTION_PROFILE": "connection.yaml",
			"FABRIC_MSP_ID":             "UsersMSP",
		}))
		require.NoError(t, err)
		assert.Equal(t, "regnet", cfg.Fabric.Chaincode)
	})
}
