// Error codes carried in ErrorResponse.Code. Clients branch on these; the
// generic ones mirror HTTP semantics and the rest name catalog, recommender
// and generator failures.

package handlers

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"
	ErrCodeUnavailable = "unavailable"
	ErrCodeCanceled    = "canceled"

	// Domain-specific:
	ErrCodeInputTooLong     = "input_too_long"
	ErrCodeUnknownCategory  = "unknown_category"
	ErrCodeUnknownSort      = "unknown_sort"
	ErrCodeUnknownFramework = "unknown_framework"
	ErrCodeUnknownScenario  = "unknown_scenario"
	ErrCodeInvalidParams    = "invalid_params"
	ErrCodeNoExamples       = "no_examples"
	ErrCodeRecommendFailed  = "recommend_failed"
	ErrCodeGenerateFailed   = "generate_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
