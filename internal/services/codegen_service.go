// Package services – CodegenService
//
// CodegenService lists code generation scenarios and renders them for a
// framework through the codegen.Generator.
package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/codegen"
)

// CodegenService renders handler code for common API scenarios.
type CodegenService struct {
	Generator *codegen.Generator
}

// GeneratedFile is rendered source with its download name.
type GeneratedFile struct {
	Scenario  codegen.Scenario
	Framework catalog.Framework
	Filename  string
	Source    []byte
}

// Scenarios lists scenarios matching term (all when term is blank).
func (s *CodegenService) Scenarios(ctx context.Context, term string) []codegen.Scenario {
	_, span := otel.Tracer("services/CodegenService").Start(ctx, "Scenarios")
	defer span.End()

	out := s.Generator.FilterScenarios(term)
	if out == nil {
		out = []codegen.Scenario{}
	}
	return out
}

// Generate renders scenario id for framework with params.
func (s *CodegenService) Generate(ctx context.Context, id, framework string, params codegen.Params) (*GeneratedFile, error) {
	_, span := otel.Tracer("services/CodegenService").Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("scenario", id),
			attribute.String("framework", framework),
		),
	)
	defer span.End()

	sc, ok := s.Generator.Scenario(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	fw, ok := catalog.ParseFramework(framework)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, framework)
	}
	src, err := s.Generator.Generate(id, fw, params)
	if err != nil {
		return nil, err
	}
	codegenRenders.WithLabelValues(id, string(fw)).Inc()
	return &GeneratedFile{
		Scenario:  sc,
		Framework: fw,
		Filename:  codegen.Filename(id, fw),
		Source:    src,
	}, nil
}
