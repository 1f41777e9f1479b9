// Package domain defines the persistence models for the error catalog when it
// is stored in SQLite. The rows mirror catalog.ErrorDefinition and
// catalog.ExampleScenario; list and map fields are stored as JSON columns.
package domain

import (
	"time"
)

// ErrorRecord is one catalog entry.
//
// Fields:
//   - Name: unique error name; primary key.
//   - Position: catalog order, which is also the ranking tie-break.
//   - Category / HTTPStatus: fixed classification of the error.
//   - Examples, BestPractices, CommonScenarios, Keywords: JSON arrays.
//   - JSONResponse: the illustrative payload (JSON object).
//   - Frameworks: framework id to snippet (JSON object).
type ErrorRecord struct {
	Name            string            `gorm:"type:varchar(64);primaryKey"`
	Position        int               `gorm:"not null;uniqueIndex:ux_error_position"`
	Category        string            `gorm:"type:varchar(32);not null;index;check:category IN ('validation','authentication','resource','server')"`
	HTTPStatus      int               `gorm:"not null;check:http_status BETWEEN 100 AND 599"`
	Description     string            `gorm:"type:text;not null"`
	Usage           string            `gorm:"type:text;not null"`
	Examples        []string          `gorm:"type:text;serializer:json"`
	CodeSnippet     string            `gorm:"type:text"`
	JSONResponse    map[string]any    `gorm:"type:text;serializer:json;not null"`
	BestPractices   []string          `gorm:"type:text;serializer:json"`
	CommonScenarios []string          `gorm:"type:text;serializer:json;not null"`
	Keywords        []string          `gorm:"type:text;serializer:json;not null"`
	Frameworks      map[string]string `gorm:"type:text;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the database table name for ErrorRecord.
func (ErrorRecord) TableName() string { return "catalog_errors" }

// ExampleRecord is one predefined recommendation scenario.
type ExampleRecord struct {
	ID             uint     `gorm:"primaryKey"`
	Position       int      `gorm:"not null;uniqueIndex:ux_example_position"`
	Title          string   `gorm:"type:varchar(255);not null"`
	Description    string   `gorm:"type:text"`
	Input          string   `gorm:"type:text;not null"`
	ExpectedErrors []string `gorm:"type:text;serializer:json"`
	CreatedAt      time.Time
}

// TableName returns the database table name for ExampleRecord.
func (ExampleRecord) TableName() string { return "catalog_examples" }
