package recommend

import (
	"strings"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

// Rule adds a fixed bonus to one catalog entry (by Name) or to every entry of
// a category (by Category) when the input contains any of its triggers.
//
// Rules are evaluated independently. Triggers may overlap across rules, so a
// single word such as "missing" can reward several entries.
type Rule struct {
	Triggers []string
	Name     string           // exact entry name; empty when Category is used
	Category catalog.Category // entry category; empty when Name is used
	Bonus    int
	Reason   string
}

// Applies reports whether r rewards def for the lowercased input.
func (r Rule) Applies(input string, def *catalog.ErrorDefinition) bool {
	switch {
	case r.Name != "":
		if def.Name != r.Name {
			return false
		}
	case r.Category != "":
		if def.Category != r.Category {
			return false
		}
	default:
		return false
	}
	for _, t := range r.Triggers {
		if strings.Contains(input, t) {
			return true
		}
	}
	return false
}

// DefaultRules returns a fresh copy of the built-in contextual rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Triggers: []string{"missing", "required", "empty"},
			Name:     "MissingParameter",
			Bonus:    40,
			Reason:   "Indicates missing required field",
		},
		{
			Triggers: []string{"invalid", "format", "wrong"},
			Name:     "InvalidParameter",
			Bonus:    40,
			Reason:   "Indicates validation error",
		},
		{
			Triggers: []string{"token", "auth", "login"},
			Category: catalog.CategoryAuthentication,
			Bonus:    35,
			Reason:   "Authentication-related context",
		},
		{
			Triggers: []string{"permission", "access", "admin"},
			Name:     "Forbidden",
			Bonus:    40,
			Reason:   "Permission/access control context",
		},
		{
			Triggers: []string{"not found", "doesn't exist", "missing"},
			Name:     "NotFound",
			Bonus:    40,
			Reason:   "Resource not found context",
		},
		{
			Triggers: []string{"already exists", "duplicate", "taken"},
			Name:     "Conflict",
			Bonus:    40,
			Reason:   "Duplicate resource context",
		},
		{
			Triggers: []string{"rate", "limit", "too many"},
			Name:     "RateLimited",
			Bonus:    40,
			Reason:   "Rate limiting context",
		},
		{
			Triggers: []string{"server", "database", "connection"},
			Category: catalog.CategoryServer,
			Bonus:    35,
			Reason:   "Server/infrastructure context",
		},
	}
}
