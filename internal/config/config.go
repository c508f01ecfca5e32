package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Tenant   TenantConfig
	Shipping ShippingConfig
	Checkout CheckoutConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// TenantConfig identifies the store this instance serves. Requests must
// carry the matching tenant header.
type TenantConfig struct {
	ID string
}

// ShippingConfig holds the carrier table used to answer shipping quotes.
// When Enabled is false the quote endpoint responds with the
// misconfiguration sentinel instead of an option list.
type ShippingConfig struct {
	Enabled               bool
	PACPrice              float64
	PACDays               int
	SedexPrice            float64
	SedexDays             int
	FreeShippingThreshold float64 // 0 disables free shipping
}

// CheckoutConfig holds checkout pricing parameters.
type CheckoutConfig struct {
	PixDiscountPercent float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "ateliestore"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tenant: TenantConfig{
			ID: getEnv("TENANT_ID", ""),
		},
		Shipping: ShippingConfig{
			Enabled:               getEnvAsBool("SHIPPING_ENABLED", true),
			PACPrice:              getEnvAsFloat("SHIPPING_PAC_PRICE", 15.00),
			PACDays:               getEnvAsInt("SHIPPING_PAC_DAYS", 5),
			SedexPrice:            getEnvAsFloat("SHIPPING_SEDEX_PRICE", 30.00),
			SedexDays:             getEnvAsInt("SHIPPING_SEDEX_DAYS", 2),
			FreeShippingThreshold: getEnvAsFloat("SHIPPING_FREE_THRESHOLD", 0),
		},
		Checkout: CheckoutConfig{
			PixDiscountPercent: getEnvAsFloat("CHECKOUT_PIX_DISCOUNT_PERCENT", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Tenant.ID == "" {
		return fmt.Errorf("tenant ID is required")
	}

	if c.Shipping.Enabled {
		if c.Shipping.PACPrice < 0 || c.Shipping.SedexPrice < 0 {
			return fmt.Errorf("shipping prices cannot be negative")
		}
		if c.Shipping.PACDays < 1 || c.Shipping.SedexDays < 1 {
			return fmt.Errorf("shipping transit days must be at least 1")
		}
	}

	if c.Checkout.PixDiscountPercent < 0 || c.Checkout.PixDiscountPercent > 100 {
		return fmt.Errorf("invalid pix discount percent: %.2f", c.Checkout.PixDiscountPercent)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
