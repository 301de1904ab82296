package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ReportsErrors(t *testing.T) {
	cases := []struct {
		env   string
		value string
	}{
		{"SHOP_COMMISSION_PERCENT", "150"},
		{"RATE_TIMEOUT", "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv(tc.env, tc.value)

			var buf bytes.Buffer
			cfg, ok := loadConfig(&buf)

			assert.False(t, ok)
			assert.Nil(t, cfg)
			assert.Contains(t, buf.String(), "load config")
			assert.Contains(t, buf.String(), tc.env)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")

	var buf bytes.Buffer
	cfg, ok := loadConfig(&buf)

	require.True(t, ok)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, buf.String())
}
