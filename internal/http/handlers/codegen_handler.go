// Code generation HTTP handlers.
//
// This file exposes:
//   - GET /codegen/scenarios                       (list scenarios, optional filter)
//   - GET /codegen/scenarios/{id}/{framework}      (render Go source for a framework)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/services"
	"github.com/syntaxlabz/errors-playground/internal/utils"
)

//
// DTOs
//

// ScenariosResponse lists code generation scenarios.
type ScenariosResponse struct {
	Scenarios []codegen.Scenario `json:"scenarios"`
}

//
// Handlers
//

// ListScenarios godoc
// @ID          listScenarios
// @Summary     List code generation scenarios
// @Description Filters by title, description or referenced error name when q is set.
// @Tags        Codegen
// @Produce     json
// @Param       q  query  string  false  "Filter term"
// @Success     200  {object} handlers.ScenariosResponse
// @Router      /codegen/scenarios [get]
func (h *Handlers) ListScenarios(c *gin.Context) {
	ok(c, http.StatusOK, ScenariosResponse{
		Scenarios: h.codegenSvc.Scenarios(c.Request.Context(), strings.TrimSpace(c.Query("q"))),
	})
}

// GenerateCode godoc
// @ID          generateCode
// @Summary     Generate handler code
// @Description Renders gofmt'd Go source handling the scenario's errors in the chosen framework.
// @Tags        Codegen
// @Produce     plain
//
// @Param       id           path   string  true   "Scenario ID"  Enums(user-registration, authentication, resource-crud)
// @Param       framework    path   string  true   "Framework"    Enums(vanilla, gin, echo, fiber)
// @Param       package      query  string  false  "Go package name"  default(main)
// @Param       import_path  query  string  false  "Import path of the errors package"
// @Param       port         query  int     false  "Listen port in the generated main"  minimum(1) maximum(65535) default(8080)
// @Param       download     query  bool    false  "Serve as attachment"
//
// @Success     200  {string} string
// @Failure     400  {object} handlers.ErrorResponse "Unknown framework or invalid params"
// @Failure     404  {object} handlers.ErrorResponse "Unknown scenario"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /codegen/scenarios/{id}/{framework} [get]
func (h *Handlers) GenerateCode(c *gin.Context) {
	params := codegen.Params{
		Package:    c.Query("package"),
		ImportPath: c.Query("import_path"),
	}
	if raw := strings.TrimSpace(c.Query("port")); raw != "" {
		// unparsable ports fall through to the generator's range check
		params.Port = utils.AtoiDefault(raw, -1)
	}

	f, err := h.codegenSvc.Generate(c.Request.Context(), c.Param("id"), strings.ToLower(c.Param("framework")), params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownScenario):
			fail(c, http.StatusNotFound, ErrCodeUnknownScenario, err.Error())
		case errors.Is(err, services.ErrUnknownFramework):
			fail(c, http.StatusBadRequest, ErrCodeUnknownFramework, err.Error())
		case errors.Is(err, codegen.ErrInvalidParams):
			fail(c, http.StatusBadRequest, ErrCodeInvalidParams, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeGenerateFailed, err.Error())
		}
		return
	}

	serveFile(c, "text/x-go; charset=utf-8", f.Filename, f.Source)
}
