package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort string
	AppEnv  string

	// DBDriver selects the storage engine: "sqlite" (default) or "postgres".
	DBDriver   string
	SQLitePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// AdminPassword is the shared admin secret. AdminPasswordHash, when set,
	// takes precedence and holds a bcrypt hash of the secret instead.
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	// Static asset roots for the SPA. Either may be empty to disable.
	DistDir   string
	PublicDir string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "5001"),
		AppEnv:  get("APP_ENV", "dev"),

		DBDriver:   get("DB_DRIVER", "sqlite"),
		SQLitePath: get("SQLITE_PATH", "registrations.db"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "registrations"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		AdminPassword:     get("ADMIN_PASSWORD", ""),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         get("JWT_SECRET", "dev-secret"),

		DistDir:   get("DIST_DIR", "dist"),
		PublicDir: get("PUBLIC_DIR", "public"),
	}
}

// PostgresDSN builds the DSN for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// SQLiteDSN builds the sqlite DSN. WAL plus a 5s busy timeout keep concurrent
// submissions from failing on write contention.
func (c *Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", c.SQLitePath)
}
