package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pricer/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DISCOUNT_THRESHOLD": "",
		"DISCOUNT_RATE":      "",
		"TAX_RATE":           "",
		"LOG_FORMAT":         "",
		"LOG_LEVEL":          "",
	})
	require.NoError(t, err)
	require.Equal(t, 1500.0, cfg.DiscountThreshold)
	require.Equal(t, 0.1, cfg.DiscountRate)
	require.Equal(t, 0.1, cfg.TaxRate)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DISCOUNT_THRESHOLD": "2000",
		"DISCOUNT_RATE":      "0.25",
		"TAX_RATE":           "0.08",
		"LOG_LEVEL":          "debug",
	})
	require.NoError(t, err)
	require.Equal(t, 2000.0, cfg.DiscountThreshold)
	require.Equal(t, 0.25, cfg.DiscountRate)
	require.Equal(t, 0.08, cfg.TaxRate)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DISCOUNT_THRESHOLD": "plenty",
	})
	require.NoError(t, err)
	require.Equal(t, 1500.0, cfg.DiscountThreshold)
}
