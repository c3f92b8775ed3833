package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 25, cfg.Rules.MinimumPurchaseAge)
	assert.Equal(t, 5, cfg.Backend.BreakerThreshold)
	assert.InDelta(t, 0.15, cfg.Rules.TaxRate, 1e-9)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, cfg.Registry.RetryDelays)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("GMARM_MIN_PURCHASE_AGE", "21")
	t.Setenv("GMARM_TAX_RATE", "0.12")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.Rules.MinimumPurchaseAge)
	assert.InDelta(t, 0.12, cfg.Rules.TaxRate, 1e-9)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Audit.KafkaBrokers)
}

func TestFromEnv_RejectsInvalidRules(t *testing.T) {
	t.Run("non-positive age", func(t *testing.T) {
		t.Setenv("GMARM_MIN_PURCHASE_AGE", "0")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		t.Setenv("GMARM_TAX_RATE", "1.5")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}
