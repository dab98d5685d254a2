package database

import (
	"database/sql/driver"
	"fmt"
	"log/slog"
	"strings"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	moderncsqlite "modernc.org/sqlite"
)

// SQLite's built-in LOWER only folds ASCII.
const sqliteLowerFunc = "unicode_lower"

func init() {
	moderncsqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *moderncsqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument %T", sqliteLowerFunc, v)
	}
}

// LowerFunc names the SQL function that lower-cases text across all of
// Unicode on db's dialect.
func LowerFunc(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return sqliteLowerFunc
	}
	return "LOWER"
}

// Connect opens the store selected by cfg.DBDriver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = OpenSQLite(cfg.DBPath)
	default:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	slog.Info("database connected", "driver", cfg.DBDriver)
	return db, nil
}

// OpenSQLite returns a dialector over the pure-Go modernc driver, which
// registers itself as "sqlite".
func OpenSQLite(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        path,
	})
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	slog.Info("database migrated")
	return nil
}
