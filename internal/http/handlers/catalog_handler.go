// Catalog HTTP handlers.
//
// This file exposes read-only endpoints over the error catalog:
//   - GET /errors                              (explorer list, ETag support)
//   - GET /errors/{name}                       (single entry)
//   - GET /errors/{name}/preview               (customized JSON payload)
//   - GET /errors/{name}/snippets/{framework}  (framework snippet, text)
//   - GET /categories                          (per-category counts)
//   - GET /search                              (quick search)
//   - GET /examples, /examples/random          (predefined scenarios)
//   - GET /previews/quick                      (canned preview customizations)
package handlers

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/preview"
	"github.com/syntaxlabz/errors-playground/internal/services"
	"github.com/syntaxlabz/errors-playground/internal/utils"
)

//
// DTOs
//

// ListErrorsResponse wraps the explorer result.
type ListErrorsResponse struct {
	Errors []catalog.ErrorDefinition `json:"errors"`
	Count  int                       `json:"count"`
}

// CategoriesResponse lists explorer categories with counts, "all" first.
type CategoriesResponse struct {
	Categories []catalog.CategoryCount `json:"categories"`
}

// SearchResponse wraps quick search hits.
type SearchResponse struct {
	Query   string                    `json:"query" example:"token"`
	Results []catalog.ErrorDefinition `json:"results"`
}

// ExamplesResponse lists the predefined recommendation scenarios.
type ExamplesResponse struct {
	Examples []catalog.ExampleScenario `json:"examples"`
}

// QuickPreviewsResponse lists canned preview customizations.
type QuickPreviewsResponse struct {
	Previews []preview.QuickExample `json:"previews"`
}

//
// Helpers
//

// listETag fingerprints an explorer result by the names it contains, in order.
// The catalog is immutable for the process lifetime, so names identify content.
func listETag(defs []catalog.ErrorDefinition) string {
	h := fnv.New64a()
	for _, d := range defs {
		_, _ = h.Write([]byte(d.Name))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf(`W/"errors:%d:%x"`, len(defs), h.Sum64())
}

// failCatalog maps catalog service errors to HTTP responses.
func failCatalog(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrErrorNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "error not found")
	case errors.Is(err, services.ErrUnknownFramework):
		fail(c, http.StatusBadRequest, ErrCodeUnknownFramework, err.Error())
	case errors.Is(err, catalog.ErrUnknownCategory):
		fail(c, http.StatusBadRequest, ErrCodeUnknownCategory, err.Error())
	case errors.Is(err, catalog.ErrUnknownSort):
		fail(c, http.StatusBadRequest, ErrCodeUnknownSort, err.Error())
	case errors.Is(err, services.ErrNoExamples):
		fail(c, http.StatusNotFound, ErrCodeNoExamples, "no example scenarios")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// ListErrors godoc
// @ID          listErrors
// @Summary     List catalog errors
// @Description Filters the catalog by category and search term and orders it by name or status.
// @Tags        Catalog
// @Produce     json
//
// @Param       category  query  string  false  "Category filter"  Enums(all, validation, authentication, resource, server)
// @Param       q         query  string  false  "Case-insensitive search over name, description and usage"
// @Param       sort      query  string  false  "Sort key"  Enums(name, status) default(name)
//
// @Success     200  {object} handlers.ListErrorsResponse
// @Success     304  "Not modified"
// @Failure     400  {object} handlers.ErrorResponse "Unknown category or sort key"
// @Router      /errors [get]
func (h *Handlers) ListErrors(c *gin.Context) {
	q := catalog.Query{
		Category: catalog.Category(strings.ToLower(strings.TrimSpace(c.Query("category")))),
		Search:   strings.TrimSpace(c.Query("q")),
		Sort:     catalog.SortKey(strings.ToLower(strings.TrimSpace(c.Query("sort")))),
	}

	defs, err := h.catalogSvc.List(c.Request.Context(), q)
	if err != nil {
		failCatalog(c, err)
		return
	}

	etag := listETag(defs)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}

	ok(c, http.StatusOK, ListErrorsResponse{Errors: defs, Count: len(defs)})
}

// GetError godoc
// @ID          getError
// @Summary     Get a catalog error
// @Tags        Catalog
// @Produce     json
// @Param       name  path  string  true  "Error name (case-sensitive)"  example(NotFound)
// @Success     200  {object} catalog.ErrorDefinition
// @Failure     404  {object} handlers.ErrorResponse "Error not found"
// @Router      /errors/{name} [get]
func (h *Handlers) GetError(c *gin.Context) {
	d, err := h.catalogSvc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// PreviewError godoc
// @ID          previewError
// @Summary     Preview a customized error payload
// @Description Returns the entry's JSON response with an optional custom message and field.
// @Description With download=true the body is served as an attachment named "<Name>-response.json".
// @Tags        Catalog
// @Produce     json
//
// @Param       name      path   string  true   "Error name"  example(InvalidParameter)
// @Param       message   query  string  false  "Custom message, prefixed with the error code"
// @Param       field     query  string  false  "Field name added to the payload"
// @Param       format    query  string  false  "Output layout"  Enums(pretty, compact) default(pretty)
// @Param       download  query  bool    false  "Serve as attachment"
//
// @Success     200  {object} map[string]any
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Error not found"
// @Router      /errors/{name}/preview [get]
func (h *Handlers) PreviewError(c *gin.Context) {
	pretty := true
	switch strings.ToLower(c.DefaultQuery("format", "pretty")) {
	case "pretty":
	case "compact":
		pretty = false
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "format must be pretty or compact")
		return
	}

	p, err := h.catalogSvc.Preview(c.Request.Context(), c.Param("name"), preview.Options{
		Message: c.Query("message"),
		Field:   c.Query("field"),
	})
	if err != nil {
		failCatalog(c, err)
		return
	}

	body, err := preview.Encode(p.Payload, pretty)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	serveFile(c, "application/json; charset=utf-8", p.Filename, body)
}

// GetSnippet godoc
// @ID          getSnippet
// @Summary     Get a framework snippet
// @Description Returns the Go snippet raising the error in the given framework.
// @Description Entries without a framework-specific snippet fall back to the generic one.
// @Tags        Catalog
// @Produce     plain
// @Param       name       path  string  true  "Error name"  example(Unauthorized)
// @Param       framework  path  string  true  "Framework"   Enums(vanilla, gin, echo, fiber)
// @Success     200  {string} string
// @Failure     400  {object} handlers.ErrorResponse "Unknown framework"
// @Failure     404  {object} handlers.ErrorResponse "Error not found"
// @Router      /errors/{name}/snippets/{framework} [get]
func (h *Handlers) GetSnippet(c *gin.Context) {
	snip, err := h.catalogSvc.Snippet(c.Request.Context(), c.Param("name"), strings.ToLower(c.Param("framework")))
	if err != nil {
		failCatalog(c, err)
		return
	}
	c.String(http.StatusOK, snip)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories with counts
// @Tags        Catalog
// @Produce     json
// @Success     200  {object} handlers.CategoriesResponse
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	ok(c, http.StatusOK, CategoriesResponse{Categories: h.catalogSvc.Categories(c.Request.Context())})
}

// SearchErrors godoc
// @ID          searchErrors
// @Summary     Quick search
// @Description Matches name, description and keywords. A blank query returns no results.
// @Tags        Catalog
// @Produce     json
// @Param       q      query  string  false  "Search term"
// @Param       limit  query  int     false  "Maximum results, clamped to 1..6"  minimum(1) maximum(6) default(6)
// @Success     200  {object} handlers.SearchResponse
// @Router      /search [get]
func (h *Handlers) SearchErrors(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	limit := utils.ClampInt(utils.AtoiDefault(c.Query("limit"), catalog.QuickSearchLimit), 1, catalog.QuickSearchLimit)

	results := h.catalogSvc.Search(c.Request.Context(), term, limit)
	if results == nil {
		results = []catalog.ErrorDefinition{}
	}
	ok(c, http.StatusOK, SearchResponse{Query: term, Results: results})
}

// ListExamples godoc
// @ID          listExamples
// @Summary     List predefined scenarios
// @Tags        Examples
// @Produce     json
// @Success     200  {object} handlers.ExamplesResponse
// @Router      /examples [get]
func (h *Handlers) ListExamples(c *gin.Context) {
	exs := h.catalogSvc.Examples(c.Request.Context())
	if exs == nil {
		exs = []catalog.ExampleScenario{}
	}
	ok(c, http.StatusOK, ExamplesResponse{Examples: exs})
}

// RandomExample godoc
// @ID          randomExample
// @Summary     Pick a random predefined scenario
// @Tags        Examples
// @Produce     json
// @Success     200  {object} catalog.ExampleScenario
// @Failure     404  {object} handlers.ErrorResponse "No example scenarios"
// @Router      /examples/random [get]
func (h *Handlers) RandomExample(c *gin.Context) {
	ex, err := h.catalogSvc.RandomExample(c.Request.Context())
	if err != nil {
		failCatalog(c, err)
		return
	}
	ok(c, http.StatusOK, ex)
}

// QuickPreviews godoc
// @ID          quickPreviews
// @Summary     List canned preview customizations
// @Tags        Catalog
// @Produce     json
// @Success     200  {object} handlers.QuickPreviewsResponse
// @Router      /previews/quick [get]
func (h *Handlers) QuickPreviews(c *gin.Context) {
	ok(c, http.StatusOK, QuickPreviewsResponse{Previews: h.catalogSvc.QuickPreviews(c.Request.Context())})
}
