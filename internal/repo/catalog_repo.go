// Package repo implements the SQLite-backed catalog store, using GORM. This
// file converts between catalog documents and rows, and exposes the table
// contents as a catalog.Source.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/domain"
)

// ErrEmptyCatalog is returned when the catalog tables hold no errors.
var ErrEmptyCatalog = errors.New("catalog tables are empty")

// SaveCatalog replaces the stored catalog with doc in a single transaction.
// The document is validated first so that an invalid catalog never reaches
// the database.
func SaveCatalog(ctx context.Context, db *gorm.DB, doc catalog.Document) error {
	if _, err := catalog.New(doc); err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.ExampleRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.ErrorRecord{}).Error; err != nil {
			return err
		}
		errs := make([]domain.ErrorRecord, len(doc.Errors))
		for i := range doc.Errors {
			errs[i] = toErrorRecord(i, &doc.Errors[i])
		}
		if err := tx.Create(&errs).Error; err != nil {
			return err
		}
		if len(doc.Examples) == 0 {
			return nil
		}
		exs := make([]domain.ExampleRecord, len(doc.Examples))
		for i, ex := range doc.Examples {
			exs[i] = domain.ExampleRecord{
				Position:       i,
				Title:          ex.Title,
				Description:    ex.Description,
				Input:          ex.Input,
				ExpectedErrors: ex.ExpectedErrors,
			}
		}
		return tx.Create(&exs).Error
	})
}

// LoadCatalog reads the stored catalog in position order.
func LoadCatalog(ctx context.Context, db *gorm.DB) (catalog.Document, error) {
	var errs []domain.ErrorRecord
	if err := db.WithContext(ctx).Order("position ASC").Find(&errs).Error; err != nil {
		return catalog.Document{}, err
	}
	if len(errs) == 0 {
		return catalog.Document{}, ErrEmptyCatalog
	}
	var exs []domain.ExampleRecord
	if err := db.WithContext(ctx).Order("position ASC").Find(&exs).Error; err != nil {
		return catalog.Document{}, err
	}

	doc := catalog.Document{
		Errors:   make([]catalog.ErrorDefinition, len(errs)),
		Examples: make([]catalog.ExampleScenario, len(exs)),
	}
	for i := range errs {
		doc.Errors[i] = fromErrorRecord(&errs[i])
	}
	for i, ex := range exs {
		doc.Examples[i] = catalog.ExampleScenario{
			Title:          ex.Title,
			Description:    ex.Description,
			Input:          ex.Input,
			ExpectedErrors: ex.ExpectedErrors,
		}
	}
	return doc, nil
}

// SQLiteSource loads the catalog from the tables written by SaveCatalog.
type SQLiteSource struct {
	DB *gorm.DB
}

// Load implements catalog.Source.
func (s SQLiteSource) Load(ctx context.Context) (catalog.Document, error) {
	return LoadCatalog(ctx, s.DB)
}

func toErrorRecord(pos int, d *catalog.ErrorDefinition) domain.ErrorRecord {
	var fws map[string]string
	if len(d.Frameworks) > 0 {
		fws = make(map[string]string, len(d.Frameworks))
		for k, v := range d.Frameworks {
			fws[string(k)] = v
		}
	}
	return domain.ErrorRecord{
		Name:            d.Name,
		Position:        pos,
		Category:        string(d.Category),
		HTTPStatus:      d.HTTPStatus,
		Description:     d.Description,
		Usage:           d.Usage,
		Examples:        d.Examples,
		CodeSnippet:     d.CodeSnippet,
		JSONResponse:    d.JSONResponse,
		BestPractices:   d.BestPractices,
		CommonScenarios: d.CommonScenarios,
		Keywords:        d.Keywords,
		Frameworks:      fws,
	}
}

func fromErrorRecord(r *domain.ErrorRecord) catalog.ErrorDefinition {
	var fws map[catalog.Framework]string
	if len(r.Frameworks) > 0 {
		fws = make(map[catalog.Framework]string, len(r.Frameworks))
		for k, v := range r.Frameworks {
			fws[catalog.Framework(k)] = v
		}
	}
	return catalog.ErrorDefinition{
		Name:            r.Name,
		Category:        catalog.Category(r.Category),
		HTTPStatus:      r.HTTPStatus,
		Description:     r.Description,
		Usage:           r.Usage,
		Examples:        r.Examples,
		CodeSnippet:     r.CodeSnippet,
		JSONResponse:    r.JSONResponse,
		BestPractices:   r.BestPractices,
		CommonScenarios: r.CommonScenarios,
		Keywords:        r.Keywords,
		Frameworks:      fws,
	}
}
