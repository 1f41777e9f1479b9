// Package services – RecommendService
//
// RecommendService validates scenario text, applies the configured
// presentation delay and ranks the catalog with the recommend.Scorer.
// Scoring itself is pure; this layer owns input limits, pacing, tracing
// and metrics.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/recommend"
)

// RecommendService ranks catalog errors for free-text scenarios.
type RecommendService struct {
	Catalog *catalog.Catalog
	Scorer  *recommend.Scorer
	Delay   recommend.Delayer

	// Optional guard; 0 disables it.
	MaxInputRunes int
}

// Recommend returns up to three ranked recommendations for input.
//
// Blank input yields an empty result immediately. Input longer than
// MaxInputRunes yields ErrInputTooLong. Otherwise the service waits on Delay
// (returning ctx's error if it ends first) and then scores.
func (s *RecommendService) Recommend(ctx context.Context, input string) ([]recommend.Recommendation, error) {
	tr := otel.Tracer("services/RecommendService")
	ctx, span := tr.Start(ctx, "Recommend",
		trace.WithAttributes(attribute.Int("input.runes", utf8.RuneCountInString(input))),
	)
	defer span.End()

	if strings.TrimSpace(input) == "" {
		recRequests.WithLabelValues(outcomeEmpty).Inc()
		return []recommend.Recommendation{}, nil
	}
	if s.MaxInputRunes > 0 && utf8.RuneCountInString(input) > s.MaxInputRunes {
		recRequests.WithLabelValues(outcomeTooLong).Inc()
		return nil, ErrInputTooLong
	}

	if s.Delay != nil {
		if err := s.Delay.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				recRequests.WithLabelValues(outcomeCanceled).Inc()
			}
			return nil, err
		}
	}

	recs := s.scorer().Score(input, s.Catalog)
	span.SetAttributes(attribute.Int("results", len(recs)))
	if len(recs) == 0 {
		recRequests.WithLabelValues(outcomeNoMatch).Inc()
		return []recommend.Recommendation{}, nil
	}

	recRequests.WithLabelValues(outcomeOK).Inc()
	recTop.WithLabelValues(recs[0].Error.Name).Inc()
	recConfidence.Observe(float64(recs[0].Confidence))
	span.SetAttributes(
		attribute.String("top.error", recs[0].Error.Name),
		attribute.Int("top.confidence", recs[0].Confidence),
	)
	return recs, nil
}

func (s *RecommendService) scorer() *recommend.Scorer {
	if s.Scorer == nil {
		return recommend.NewScorer()
	}
	return s.Scorer
}
