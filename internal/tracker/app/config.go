package app

import (
	"os"
	"strconv"
	"time"

	"github.com/fernwick/stockfolio/pkg/jwtx"
)

type Config struct {
	Issuer         string        // Issuer claim for session tokens (default: stockfolio)
	SessionTTL     time.Duration // Session cookie and token lifetime (default: 7 days)
	SessionKeyFile string        // Path to the Ed25519 session signing key (default: ./session.key)
	DatabaseFile   string        // Path to SQLite database file (default: ./stockfolio.db)
	PepperFile     string        // Path to file containing pepper for password hashing (default: ./pepper)

	CORSOrigin string // Browser origin allowed to make credentialed requests (default: http://localhost:5173)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("STOCKFOLIO_ISSUER", "stockfolio"),
		SessionTTL:     getEnvDurationOrDefault("STOCKFOLIO_SESSION_TTL", jwtx.DefaultSessionTTL),
		SessionKeyFile: getEnvOrDefault("STOCKFOLIO_SESSION_KEY_FILE", "session.key"),
		DatabaseFile:   getEnvOrDefault("STOCKFOLIO_DATABASE_FILE", "stockfolio.db"),
		PepperFile:     getEnvOrDefault("STOCKFOLIO_PEPPER_FILE", "pepper"),

		CORSOrigin: getEnvOrDefault("STOCKFOLIO_CORS_ORIGIN", "http://localhost:5173"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// SecureCookies reports whether session cookies should carry the Secure flag.
// Only in prod, so dev and test setups work over plain http.
func (c Config) SecureCookies() bool {
	return c.Env == "prod"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
