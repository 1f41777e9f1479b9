package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation and lookup errors.
var (
	// ErrInvalidCatalog wraps every structural validation failure.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrDuplicateName is returned when two definitions share a name.
	ErrDuplicateName = errors.New("duplicate error name")

	// ErrUnknownExpectedError is returned when an example scenario lists an
	// error name that the catalog does not define.
	ErrUnknownExpectedError = errors.New("example references unknown error")
)

// Catalog is the validated, immutable error table. It is safe for concurrent
// use; no method mutates it.
type Catalog struct {
	defs     []ErrorDefinition
	byName   map[string]int
	examples []ExampleScenario
}

// Source yields a catalog Document. Implementations live next to their
// storage (embedded YAML and files here, SQLite in the repo package).
type Source interface {
	Load(ctx context.Context) (Document, error)
}

// Open loads a Document from src and validates it.
func Open(ctx context.Context, src Source) (*Catalog, error) {
	doc, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(doc)
}

// MustOpen is Open that panics on failure. A malformed catalog is a startup
// configuration error.
func MustOpen(ctx context.Context, src Source) *Catalog {
	c, err := Open(ctx, src)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates doc and builds a Catalog from it. The document's slices are
// copied so later changes by the caller do not leak into the catalog.
func New(doc Document) (*Catalog, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		defs:     append([]ErrorDefinition(nil), doc.Errors...),
		byName:   make(map[string]int, len(doc.Errors)),
		examples: append([]ExampleScenario(nil), doc.Examples...),
	}
	for i, d := range c.defs {
		c.byName[d.Name] = i
	}
	return c, nil
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

func validate(doc Document) error {
	if err := structValidator.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidCatalog, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]struct{}, len(doc.Errors))
	for _, d := range doc.Errors {
		if strings.TrimSpace(d.Name) != d.Name {
			return fmt.Errorf("%w: name %q has surrounding whitespace", ErrInvalidCatalog, d.Name)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = struct{}{}

		// The previewer rewrites "message" using the "error" code.
		if code, _ := d.JSONResponse["error"].(string); code == "" {
			return fmt.Errorf("%w: %s json_response has no error code", ErrInvalidCatalog, d.Name)
		}
	}
	for _, ex := range doc.Examples {
		for _, name := range ex.ExpectedErrors {
			if _, ok := seen[name]; !ok {
				return fmt.Errorf("%w: %q in %q", ErrUnknownExpectedError, name, ex.Title)
			}
		}
	}
	return nil
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// All returns the definitions in catalog order. The returned slice is a copy;
// the records' nested slices and maps are shared and read-only.
func (c *Catalog) All() []ErrorDefinition {
	return append([]ErrorDefinition(nil), c.defs...)
}

// At returns a pointer to the i-th definition in catalog order. Callers must
// not modify the record.
func (c *Catalog) At(i int) *ErrorDefinition { return &c.defs[i] }

// ByName looks up a definition by its exact name.
func (c *Catalog) ByName(name string) (*ErrorDefinition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.defs[i], true
}

// Index returns the catalog position of name, or -1.
func (c *Catalog) Index(name string) int {
	if i, ok := c.byName[name]; ok {
		return i
	}
	return -1
}

// Examples returns the predefined example scenarios.
func (c *Catalog) Examples() []ExampleScenario {
	return append([]ExampleScenario(nil), c.examples...)
}

// Document returns the catalog in its serialized shape, for export.
func (c *Catalog) Document() Document {
	return Document{Errors: c.All(), Examples: c.Examples()}
}
