// Package recommend ranks catalog errors against a free-text scenario
// description. It is deterministic, dependency-light and safe for
// concurrent use:
//
//   - No logging in the library (callers decide how/what to log)
//   - Functional options for limits, cap and rule set
//   - Read-only access to the shared catalog; nothing is cached between calls
//   - Stable ranking: equal confidence keeps catalog order
//
// Scoring is additive per catalog entry: keyword substring hits, common
// scenario phrases sharing at least two words with the input, and fixed
// contextual rules keyed on trigger phrases. The sum is capped and entries
// that score nothing are dropped.
package recommend

import (
	"sort"
	"strings"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

const (
	// DefaultLimit is how many recommendations Score returns.
	DefaultLimit = 3
	// DefaultConfidenceCap is the highest confidence ever reported.
	DefaultConfidenceCap = 95

	keywordWeight     = 30
	scenarioWeight    = 25
	scenarioMinShared = 2

	// ReasonSeparator joins reasons into Recommendation.Reasoning.
	ReasonSeparator = ", "
)

// Recommendation is one ranked suggestion. Error points into the shared
// catalog and must not be modified.
type Recommendation struct {
	Error      *catalog.ErrorDefinition
	Confidence int
	Reasons    []string
}

// Reasoning joins the reasons for display.
func (r Recommendation) Reasoning() string {
	return strings.Join(r.Reasons, ReasonSeparator)
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	limit int
	cap   int
	rules []Rule
}

func defaultConfig() config {
	return config{
		limit: DefaultLimit,
		cap:   DefaultConfidenceCap,
		rules: DefaultRules(),
	}
}

// WithLimit sets how many recommendations are returned. Non-positive values
// are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithConfidenceCap sets the clamp applied to every score. Non-positive
// values are ignored.
func WithConfidenceCap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cap = n
		}
	}
}

// WithRules replaces the contextual rule set. A nil slice disables
// contextual rules entirely.
func WithRules(rules []Rule) Option {
	return func(c *config) {
		c.rules = append([]Rule(nil), rules...)
	}
}

// ----------------------------------------------------------------------------
// Scorer

// Scorer is an immutable, reusable scoring configuration.
type Scorer struct {
	cfg config
}

// NewScorer builds a Scorer with the default rules, cap and limit, adjusted
// by opts.
func NewScorer(opts ...Option) *Scorer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Scorer{cfg: cfg}
}

// Limit reports how many recommendations Score returns at most.
func (s *Scorer) Limit() int { return s.cfg.limit }

// Score ranks the catalog against input and returns at most Limit()
// recommendations by descending confidence. Blank input returns nil without
// scoring.
func (s *Scorer) Score(input string, cat *catalog.Catalog) []Recommendation {
	if strings.TrimSpace(input) == "" || cat == nil {
		return nil
	}
	lower := strings.ToLower(input)

	type scored struct {
		rec   Recommendation
		order int
	}
	buf := make([]scored, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		def := cat.At(i)
		conf, reasons := s.scoreEntry(lower, def)
		if conf <= 0 {
			continue
		}
		if conf > s.cfg.cap {
			conf = s.cfg.cap
		}
		buf = append(buf, scored{
			rec:   Recommendation{Error: def, Confidence: conf, Reasons: reasons},
			order: i,
		})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].rec.Confidence != buf[b].rec.Confidence {
			return buf[a].rec.Confidence > buf[b].rec.Confidence
		}
		return buf[a].order < buf[b].order
	})

	k := s.cfg.limit
	if k > len(buf) {
		k = len(buf)
	}
	out := make([]Recommendation, k)
	for i := 0; i < k; i++ {
		out[i] = buf[i].rec
	}
	return out
}

// scoreEntry returns the uncapped confidence and the reasons for one entry.
// input must already be lowercased.
func (s *Scorer) scoreEntry(input string, def *catalog.ErrorDefinition) (int, []string) {
	conf := 0
	var reasons []string

	for _, kw := range def.Keywords {
		if strings.Contains(input, kw) {
			conf += keywordWeight
			reasons = append(reasons, `Matches keyword: "`+kw+`"`)
		}
	}

	for _, phrase := range def.CommonScenarios {
		if sharedWords(input, phrase) >= scenarioMinShared {
			conf += scenarioWeight
			reasons = append(reasons, "Matches scenario pattern")
		}
	}

	for _, r := range s.cfg.rules {
		if r.Applies(input, def) {
			conf += r.Bonus
			reasons = append(reasons, r.Reason)
		}
	}
	return conf, reasons
}

// sharedWords counts the words of phrase (lowercased, split on whitespace)
// that occur as substrings of input. Repeated words count each time.
func sharedWords(input, phrase string) int {
	n := 0
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if strings.Contains(input, w) {
			n++
		}
	}
	return n
}
