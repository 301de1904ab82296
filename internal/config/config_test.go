package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "America/Caracas", cfg.Shop.Timezone)
	assert.Equal(t, "USD", cfg.Shop.BaseCurrency)
	assert.Equal(t, "VES", cfg.Shop.LocalCurrency)
	assert.Equal(t, 15*time.Second, cfg.Rate.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Rate.StaleAfter)
	assert.True(t, cfg.Rate.InsecureSkipVerify)
	assert.True(t, decimal.RequireFromString("0.5").Equal(cfg.CommissionRate()))
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SHOP_COMMISSION_PERCENT", "40")
	t.Setenv("RATE_TIMEOUT", "3s")
	t.Setenv("ARCHIVE_BUCKET", "closings")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, decimal.RequireFromString("0.4").Equal(cfg.CommissionRate()))
	assert.Equal(t, 3*time.Second, cfg.Rate.Timeout)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestLoad_RejectsCommissionOutOfRange(t *testing.T) {
	t.Setenv("SHOP_COMMISSION_PERCENT", "150")

	_, err := Load("testdata/does-not-exist.env")
	assert.Error(t, err)
}
