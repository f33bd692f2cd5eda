package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Pending.Store)
	assert.Equal(t, 5*time.Minute, cfg.Pending.TTL)
	assert.True(t, cfg.Wager.MinDeposit.Equal(decimal.RequireFromString("10000000000000000000000")))
	assert.Equal(t, uint64(5_000_000_000_000), cfg.Wager.CallbackGas)
	assert.Equal(t, "outlayer.near", cfg.Remote.ContractID)
	assert.Equal(t, "https://github.com/zavodil/random-ark", cfg.Remote.Repo)
	assert.Equal(t, "wasm32-wasip1", cfg.Remote.BuildTarget)
	assert.Equal(t, uint32(128), cfg.Remote.MaxMemoryMB)
	assert.Equal(t, uint64(60), cfg.Remote.MaxExecutionSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WAGER_MIN_DEPOSIT", "500")
	t.Setenv("PENDING_STORE", "redis")
	t.Setenv("REMOTE_MODE", "http")
	t.Setenv("REMOTE_URL", "http://executor:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Wager.MinDeposit.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "redis", cfg.Pending.Store)
	assert.Equal(t, "http://executor:9000", cfg.Remote.URL)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("fractional deposit", func(t *testing.T) {
		t.Setenv("WAGER_MIN_DEPOSIT", "0.5")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("PENDING_STORE", "etcd")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unknown remote mode", func(t *testing.T) {
		t.Setenv("REMOTE_MODE", "grpc")
		_, err := Load()
		assert.Error(t, err)
	})
}
