package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "receipt-engine", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "QuayDome Sports Complex", cfg.Organization.Name)
	assert.Equal(t, "KES", cfg.Receipt.CurrencyCode)
	assert.Equal(t, "qr", cfg.Receipt.FooterCode)
	assert.NotEmpty(t, cfg.Receipt.LedgerPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RECEIPT_CURRENCY", "UGX")
	t.Setenv("APP_PORT", "9090")

	cfg := Load()

	assert.Equal(t, "UGX", cfg.Receipt.CurrencyCode)
	assert.Equal(t, "9090", cfg.App.Port)
}
