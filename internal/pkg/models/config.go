package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	AI         AIConfig
	Categories CategoryConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// AIConfig contains configuration for the external text-generation service
type AIConfig struct {
	APIKey string
	Model  string
}

// CategoryConfig is the injected transaction category set. It is loaded from
// configuration at startup so the set can change without redeploying the
// components that consume it.
type CategoryConfig struct {
	// Allowed is the full enumeration of valid categories.
	Allowed []string
	// Income is the sentinel category separating inflow from outflow.
	Income string
	// Default is the bucket assigned to extracted records with no category.
	Default string
}

// Contains reports whether category is a member of the allowed set.
func (c CategoryConfig) Contains(category string) bool {
	for _, allowed := range c.Allowed {
		if allowed == category {
			return true
		}
	}
	return false
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level       string
	Environment string
}
