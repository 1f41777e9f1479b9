// Package repo stores the catalog in SQLite through GORM, using the pure-Go
// glebarez driver so the binaries build without cgo.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/syntaxlabz/errors-playground/internal/domain"
)

// pragmas run on every new database handle.
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

// slowQuery is the threshold above which statements are logged at warn.
const slowQuery = 200 * time.Millisecond

// OpenSQLite opens or creates the database at path, which may also be a
// "file:" URI. The parent directory of a plain path must exist. Statements
// are traced with OpenTelemetry; failures and slow ones go to the zerolog
// logger.
func OpenSQLite(path string) (*gorm.DB, error) {
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, fmt.Errorf("open sqlite %s: %w", path, err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.New(gormLogWriter{}, logger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("sqlite tracing: %w", err)
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// The catalog is small and read-mostly.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ErrorRecord{}, &domain.ExampleRecord{})
}

// gormLogWriter forwards GORM's logger output to zerolog.
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...any) {
	log.Warn().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
