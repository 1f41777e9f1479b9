// Package services – CatalogService
//
// CatalogService serves read-only views of the error catalog: the explorer
// list, quick search, per-category counts, single entries, customized JSON
// payload previews, framework snippets and the predefined example scenarios.
package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/preview"
)

// CatalogService exposes the catalog to transports.
type CatalogService struct {
	Catalog *catalog.Catalog

	// Intn picks a random index in [0,n); nil uses math/rand/v2.
	Intn func(n int) int
}

// Preview is a rendered payload with its download name.
type Preview struct {
	Error    *catalog.ErrorDefinition
	Payload  map[string]any
	Filename string
}

// List filters and sorts the catalog for the explorer view.
func (s *CatalogService) List(ctx context.Context, q catalog.Query) ([]catalog.ErrorDefinition, error) {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("category", string(q.Category)),
			attribute.String("sort", string(q.Sort)),
		),
	)
	defer span.End()

	return catalog.Filter(s.Catalog, q)
}

// Get returns the entry called name.
func (s *CatalogService) Get(ctx context.Context, name string) (*catalog.ErrorDefinition, error) {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("error.name", name)),
	)
	defer span.End()

	d, ok := s.Catalog.ByName(name)
	if !ok {
		return nil, ErrErrorNotFound
	}
	return d, nil
}

// Search runs the quick search (name, description, keywords).
func (s *CatalogService) Search(ctx context.Context, term string, limit int) []catalog.ErrorDefinition {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "Search",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	return catalog.QuickSearch(s.Catalog, term, limit)
}

// Categories returns per-category counts, "all" first.
func (s *CatalogService) Categories(ctx context.Context) []catalog.CategoryCount {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "Categories")
	defer span.End()

	return catalog.CategoryCounts(s.Catalog)
}

// Preview builds the customized JSON payload for name.
func (s *CatalogService) Preview(ctx context.Context, name string, opts preview.Options) (*Preview, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "Preview",
		trace.WithAttributes(attribute.String("error.name", name)),
	)
	defer span.End()

	d, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Preview{
		Error:    d,
		Payload:  preview.Build(d, opts),
		Filename: preview.Filename(d),
	}, nil
}

// QuickPreviews returns the canned customizations shown next to the
// previewer.
func (s *CatalogService) QuickPreviews(ctx context.Context) []preview.QuickExample {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "QuickPreviews")
	defer span.End()

	out := make([]preview.QuickExample, 0, len(preview.QuickExamples()))
	for _, q := range preview.QuickExamples() {
		if _, ok := s.Catalog.ByName(q.Error); ok {
			out = append(out, q)
		}
	}
	return out
}

// Snippet returns the framework snippet for name. Entries without a snippet
// for a supported framework fall back to their generic code snippet.
func (s *CatalogService) Snippet(ctx context.Context, name, framework string) (string, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "Snippet",
		trace.WithAttributes(
			attribute.String("error.name", name),
			attribute.String("framework", framework),
		),
	)
	defer span.End()

	fw, ok := catalog.ParseFramework(framework)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFramework, framework)
	}
	d, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if snip := d.Frameworks[fw]; snip != "" {
		return snip, nil
	}
	return d.CodeSnippet, nil
}

// Examples returns the predefined recommendation scenarios.
func (s *CatalogService) Examples(ctx context.Context) []catalog.ExampleScenario {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "Examples")
	defer span.End()

	return s.Catalog.Examples()
}

// RandomExample picks one predefined scenario.
func (s *CatalogService) RandomExample(ctx context.Context) (catalog.ExampleScenario, error) {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "RandomExample")
	defer span.End()

	exs := s.Catalog.Examples()
	if len(exs) == 0 {
		return catalog.ExampleScenario{}, ErrNoExamples
	}
	intn := s.Intn
	if intn == nil {
		intn = rand.Intn
	}
	return exs[intn(len(exs))], nil
}
