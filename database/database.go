package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pbk69220/tournoi-football-inscription2/config"
	"github.com/pbk69220/tournoi-football-inscription2/models"
)

// Connect opens the configured engine and ensures the registrations table
// exists. AutoMigrate is idempotent, so calling this on every start is safe.
// The returned handle is owned by the caller and closed at shutdown.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.PostgresDSN())
	case "sqlite", "":
		dial = sqlite.Open(cfg.SQLiteDSN())
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Registration{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
