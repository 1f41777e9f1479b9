package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/syntaxlabz/errors-playground/internal/domain"
)

// Stats summarizes the stored catalog.
type Stats struct {
	Errors    int64
	Examples  int64
	UpdatedAt *time.Time // latest error write; nil when no errors are stored
}

// CatalogStats counts stored errors and examples and finds the latest error
// update. It fails when the tables have not been migrated.
func CatalogStats(ctx context.Context, db *gorm.DB) (Stats, error) {
	var s Stats
	db = db.WithContext(ctx)

	if err := db.Model(&domain.ErrorRecord{}).Count(&s.Errors).Error; err != nil {
		return Stats{}, fmt.Errorf("count errors: %w", err)
	}
	if err := db.Model(&domain.ExampleRecord{}).Count(&s.Examples).Error; err != nil {
		return Stats{}, fmt.Errorf("count examples: %w", err)
	}
	if s.Errors == 0 {
		return s, nil
	}

	// Ordering instead of MAX(): SQLite returns MAX over a datetime column as
	// TEXT, which does not scan into time.Time.
	var latest struct{ UpdatedAt time.Time }
	err := db.Model(&domain.ErrorRecord{}).
		Select("updated_at").
		Order("updated_at DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return Stats{}, fmt.Errorf("latest update: %w", err)
	}
	s.UpdatedAt = &latest.UpdatedAt
	return s, nil
}
