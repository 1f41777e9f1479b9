// Package handlers exposes the playground's REST endpoints:
//   - catalog explorer, quick search, previews and snippets (catalog_handler.go)
//   - scenario recommendations (recommend_handler.go)
//   - scenario code generation (codegen_handler.go)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/preview"
	"github.com/syntaxlabz/errors-playground/internal/recommend"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

//
// Service contracts (context-aware)
//

// CatalogService serves read-only catalog views.
//
// Implementations must be safe for concurrent use.
type CatalogService interface {
	List(ctx context.Context, q catalog.Query) ([]catalog.ErrorDefinition, error)
	Get(ctx context.Context, name string) (*catalog.ErrorDefinition, error)
	Search(ctx context.Context, term string, limit int) []catalog.ErrorDefinition
	Categories(ctx context.Context) []catalog.CategoryCount
	Preview(ctx context.Context, name string, opts preview.Options) (*services.Preview, error)
	QuickPreviews(ctx context.Context) []preview.QuickExample
	Snippet(ctx context.Context, name, framework string) (string, error)
	Examples(ctx context.Context) []catalog.ExampleScenario
	RandomExample(ctx context.Context) (catalog.ExampleScenario, error)
}

// RecommendService ranks catalog errors for a free-text scenario.
//
// Implementations must honor ctx for cancellation.
type RecommendService interface {
	Recommend(ctx context.Context, input string) ([]recommend.Recommendation, error)
}

// CodegenService lists and renders code generation scenarios.
type CodegenService interface {
	Scenarios(ctx context.Context, term string) []codegen.Scenario
	Generate(ctx context.Context, id, framework string, params codegen.Params) (*services.GeneratedFile, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for the catalog, recommendations and
// code generation.
type Handlers struct {
	catalogSvc   CatalogService
	recommendSvc RecommendService
	codegenSvc   CodegenService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(catalogSvc CatalogService, recommendSvc RecommendService, codegenSvc CodegenService) *Handlers {
	return &Handlers{catalogSvc: catalogSvc, recommendSvc: recommendSvc, codegenSvc: codegenSvc}
}
