package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Catalog struct {
		DefaultPricePerKg float64 `mapstructure:"default_price_per_kg"`
		DefaultStockKg    float64 `mapstructure:"default_stock_kg"`
		Category          string  `mapstructure:"category"`
		LowStockKg        float64 `mapstructure:"low_stock_kg"`
	} `mapstructure:"catalog"`

	Settlement struct {
		DefaultExchangeRate float64 `mapstructure:"default_exchange_rate"`
	} `mapstructure:"settlement"`

	Gemini struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"gemini"`

	Monitoring struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"monitoring"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type", "Authorization"})
	v.SetDefault("catalog.default_price_per_kg", 5.5)
	v.SetDefault("catalog.default_stock_kg", 500)
	v.SetDefault("catalog.category", "Pescado Fresco")
	v.SetDefault("catalog.low_stock_kg", 50)
	v.SetDefault("settlement.default_exchange_rate", 350)
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("monitoring.port", 9090)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// The API key never lives in the config file
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}

	return &cfg
}
