// Package services defines the business logic for the errors playground:
// catalog browsing, recommendations and code generation. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"

	"github.com/syntaxlabz/errors-playground/internal/codegen"
)

var (
	// ErrErrorNotFound indicates that no catalog entry has the requested name.
	ErrErrorNotFound = errors.New("error not found")

	// ErrInputTooLong is returned when a scenario description exceeds the
	// configured rune limit.
	ErrInputTooLong = errors.New("input too long")

	// ErrUnknownFramework is returned for a framework outside the supported
	// set. It is the same value the code generator returns.
	ErrUnknownFramework = codegen.ErrUnknownFramework

	// ErrUnknownScenario is returned for an unknown code generation scenario.
	ErrUnknownScenario = codegen.ErrUnknownScenario

	// ErrNoExamples is returned when a random example is requested from a
	// catalog without examples.
	ErrNoExamples = errors.New("catalog has no examples")
)
