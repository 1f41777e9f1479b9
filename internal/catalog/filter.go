package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Explorer query errors.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownSort     = errors.New("unknown sort key")
)

// SortKey orders explorer results.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByStatus SortKey = "status"
)

// QuickSearchLimit caps QuickSearch results.
const QuickSearchLimit = 6

// Query selects and orders catalog entries for the explorer view.
type Query struct {
	Category Category // "" or CategoryAll disables the category filter
	Search   string   // case-insensitive substring; "" matches everything
	Sort     SortKey  // "" means SortByName
}

// Filter returns the entries matching q, ordered by q.Sort. Name ordering uses
// English collation; status ordering is ascending and keeps catalog order for
// equal statuses.
func Filter(c *Catalog, q Query) ([]ErrorDefinition, error) {
	if q.Category != "" && q.Category != CategoryAll && !q.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = SortByName
	}
	if sortKey != SortByName && sortKey != SortByStatus {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, q.Sort)
	}

	term := strings.ToLower(q.Search)
	out := make([]ErrorDefinition, 0, c.Len())
	for _, d := range c.defs {
		if q.Category != "" && q.Category != CategoryAll && d.Category != q.Category {
			continue
		}
		if term != "" && !matchesExplorer(&d, term) {
			continue
		}
		out = append(out, d)
	}

	switch sortKey {
	case SortByName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].HTTPStatus < out[j].HTTPStatus
		})
	}
	return out, nil
}

func matchesExplorer(d *ErrorDefinition, term string) bool {
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Description), term) ||
		strings.Contains(strings.ToLower(d.Usage), term) ||
		anyContains(d.Keywords, term)
}

// QuickSearch matches term against name, description and keywords and returns
// at most limit entries in catalog order. limit outside (0, QuickSearchLimit]
// is clamped to QuickSearchLimit. An empty term yields no results.
func QuickSearch(c *Catalog, term string, limit int) []ErrorDefinition {
	term = strings.ToLower(term)
	if term == "" {
		return nil
	}
	if limit <= 0 || limit > QuickSearchLimit {
		limit = QuickSearchLimit
	}
	var out []ErrorDefinition
	for _, d := range c.defs {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Description), term) ||
			anyContains(d.Keywords, term) {
			out = append(out, d)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func anyContains(words []string, term string) bool {
	for _, w := range words {
		if strings.Contains(strings.ToLower(w), term) {
			return true
		}
	}
	return false
}

// CategoryCount is one explorer tab: a category, its label and how many
// entries it holds.
type CategoryCount struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

// CategoryCounts returns the "all" tab followed by one tab per category.
func CategoryCounts(c *Catalog) []CategoryCount {
	title := cases.Title(language.English)
	counts := make(map[Category]int, len(Categories))
	for _, d := range c.defs {
		counts[d.Category]++
	}
	out := make([]CategoryCount, 0, len(Categories)+1)
	out = append(out, CategoryCount{ID: CategoryAll, Label: "All Errors", Count: c.Len()})
	for _, cat := range Categories {
		out = append(out, CategoryCount{ID: cat, Label: title.String(string(cat)), Count: counts[cat]})
	}
	return out
}
