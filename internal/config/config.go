package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Organization OrganizationConfig
	Receipt      ReceiptConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type OrganizationConfig struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	TaxPIN   string
	LogoPath string
}

type ReceiptConfig struct {
	CurrencyCode string
	FooterCode   string
	LedgerPath   string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "receipt-engine")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("ORG_NAME", "QuayDome Sports Complex")
	viper.SetDefault("ORG_ADDRESS", "Mombasa Road, Nairobi")
	viper.SetDefault("ORG_PHONE", "+254 700 000 000")
	viper.SetDefault("ORG_EMAIL", "accounts@quaydome.co.ke")
	viper.SetDefault("ORG_TAX_PIN", "")
	viper.SetDefault("ORG_LOGO_PATH", "")
	viper.SetDefault("RECEIPT_CURRENCY", "KES")
	viper.SetDefault("RECEIPT_FOOTER_CODE", "qr")
	viper.SetDefault("RECEIPT_LEDGER_PATH", "./receipt-ledger.json")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Organization: OrganizationConfig{
			Name:     viper.GetString("ORG_NAME"),
			Address:  viper.GetString("ORG_ADDRESS"),
			Phone:    viper.GetString("ORG_PHONE"),
			Email:    viper.GetString("ORG_EMAIL"),
			TaxPIN:   viper.GetString("ORG_TAX_PIN"),
			LogoPath: viper.GetString("ORG_LOGO_PATH"),
		},
		Receipt: ReceiptConfig{
			CurrencyCode: viper.GetString("RECEIPT_CURRENCY"),
			FooterCode:   viper.GetString("RECEIPT_FOOTER_CODE"),
			LedgerPath:   viper.GetString("RECEIPT_LEDGER_PATH"),
		},
	}
}
