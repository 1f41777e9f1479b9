// Recommendation HTTP handlers.
//
// This file exposes:
//   - POST /recommendations   (rank catalog errors for a free-text scenario)
//
// The body's input is scored as sent; only the echoed preview is clipped.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/recommend"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

// inputPreviewRunes caps the echoed input in responses.
const inputPreviewRunes = 500

// statusClientClosedRequest is reported when the caller goes away mid-delay.
const statusClientClosedRequest = 499

//
// DTOs
//

// RecommendRequest is the JSON payload for a recommendation.
type RecommendRequest struct {
	// Input describes the API scenario in free text. Blank input yields no results.
	Input string `json:"input" example:"User is trying to register with an invalid email format"`
}

// RecommendationDTO is one ranked suggestion.
type RecommendationDTO struct {
	Name         string           `json:"name" example:"InvalidParameter"`
	Category     catalog.Category `json:"category" example:"validation"`
	HTTPStatus   int              `json:"http_status" example:"400"`
	Confidence   int              `json:"confidence" example:"95"`
	Reasoning    string           `json:"reasoning" example:"Matches keyword: \"invalid\", Input validation context"`
	Reasons      []string         `json:"reasons"`
	JSONResponse map[string]any   `json:"json_response"`
}

// RecommendResponse wraps up to three ranked recommendations.
type RecommendResponse struct {
	InputPreview    string              `json:"input_preview"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

//
// Helpers
//

func toRecommendationDTOs(recs []recommend.Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationDTO{
			Name:         r.Error.Name,
			Category:     r.Error.Category,
			HTTPStatus:   r.Error.HTTPStatus,
			Confidence:   r.Confidence,
			Reasoning:    r.Reasoning(),
			Reasons:      r.Reasons,
			JSONResponse: r.Error.JSONResponse,
		})
	}
	return out
}

// clipRunes returns at most n runes of s.
func clipRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

//
// Handlers
//

// Recommend godoc
// @ID          recommend
// @Summary     Recommend errors for a scenario
// @Description Ranks catalog errors by keyword, scenario and contextual matches and returns the top three.
// @Description The response is delayed by the configured analysis delay.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RecommendRequest  true  "Scenario text"
//
// @Success     200  {object} handlers.RecommendResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     413  {object} handlers.ErrorResponse "Input too long"
// @Failure     503  {object} handlers.ErrorResponse "Timed out"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recommendations [post]
func (h *Handlers) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodeInputTooLong, "request body too large")
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	recs, err := h.recommendSvc.Recommend(c.Request.Context(), req.Input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInputTooLong):
			fail(c, http.StatusRequestEntityTooLarge, ErrCodeInputTooLong, "input too long")
		case errors.Is(err, context.Canceled):
			fail(c, statusClientClosedRequest, ErrCodeCanceled, "request canceled")
		case errors.Is(err, context.DeadlineExceeded):
			fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "analysis timed out")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRecommendFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, RecommendResponse{
		InputPreview:    clipRunes(req.Input, inputPreviewRunes),
		Recommendations: toRecommendationDTOs(recs),
	})
}
