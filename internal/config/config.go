package config

import "os"

type Config struct {
	Port           string
	JWTSecret      string
	DeliveryFee    string
	TaxRate        string
	AllowedOrigins string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		DeliveryFee:    getEnv("DELIVERY_FEE", "2.99"),
		TaxRate:        getEnv("TAX_RATE", "0.10"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
