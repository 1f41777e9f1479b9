// Package catalog holds the read-only table of error definitions served by
// the playground: the error records themselves, the predefined example
// scenarios, and the pure lookup/filter operations over them.
//
// A Catalog is built once at startup from a Source, validated, and then
// shared by every consumer without locking. Nothing in this package logs;
// callers decide how to report load failures.
package catalog

// Category groups error definitions in the explorer view.
type Category string

const (
	CategoryValidation     Category = "validation"
	CategoryAuthentication Category = "authentication"
	CategoryResource       Category = "resource"
	CategoryServer         Category = "server"

	// CategoryAll is the explorer's "no category filter" value. It is never
	// stored on a definition.
	CategoryAll Category = "all"
)

// Categories lists the storable categories in display order.
var Categories = []Category{
	CategoryValidation,
	CategoryAuthentication,
	CategoryResource,
	CategoryServer,
}

// Valid reports whether c is one of the four storable categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryValidation, CategoryAuthentication, CategoryResource, CategoryServer:
		return true
	}
	return false
}

// Framework names a web framework for which snippets and templates exist.
type Framework string

const (
	FrameworkVanilla Framework = "vanilla"
	FrameworkGin     Framework = "gin"
	FrameworkEcho    Framework = "echo"
	FrameworkFiber   Framework = "fiber"
)

// Frameworks lists supported frameworks in display order.
var Frameworks = []Framework{FrameworkVanilla, FrameworkGin, FrameworkEcho, FrameworkFiber}

// ParseFramework returns the Framework named by s, or false when unknown.
func ParseFramework(s string) (Framework, bool) {
	for _, f := range Frameworks {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ErrorDefinition is one immutable catalog record.
//
// Slices and maps are shared with every reader of the catalog and must be
// treated as read-only.
type ErrorDefinition struct {
	Name        string   `json:"name"        yaml:"name"        validate:"required"`
	Category    Category `json:"category"    yaml:"category"    validate:"required,oneof=validation authentication resource server"`
	HTTPStatus  int      `json:"http_status" yaml:"http_status" validate:"min=100,max=599"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	Usage       string   `json:"usage"       yaml:"usage"       validate:"required"`

	Examples     []string       `json:"examples,omitempty" yaml:"examples"`
	CodeSnippet  string         `json:"code_snippet"       yaml:"code_snippet"`
	JSONResponse map[string]any `json:"json_response"      yaml:"json_response" validate:"required"`

	BestPractices   []string `json:"best_practices,omitempty" yaml:"best_practices"`
	CommonScenarios []string `json:"common_scenarios"         yaml:"common_scenarios" validate:"min=1,dive,required"`
	Keywords        []string `json:"keywords"                 yaml:"keywords"         validate:"min=1,dive,required,lowercase"`

	Frameworks map[Framework]string `json:"frameworks,omitempty" yaml:"frameworks" validate:"dive,keys,oneof=vanilla gin echo fiber,endkeys,required"`
}

// ExampleScenario is a canned free-text scenario used by the recommender UI.
type ExampleScenario struct {
	Title          string   `json:"title"           yaml:"title"           validate:"required"`
	Description    string   `json:"description"     yaml:"description"`
	Input          string   `json:"input"           yaml:"input"           validate:"required"`
	ExpectedErrors []string `json:"expected_errors" yaml:"expected_errors" validate:"min=1,dive,required"`
}

// Document is the serialized shape of a catalog, as read from YAML, JSON or
// the SQLite source.
type Document struct {
	Errors   []ErrorDefinition `json:"errors"   yaml:"errors"   validate:"min=1,dive"`
	Examples []ExampleScenario `json:"examples" yaml:"examples" validate:"dive"`
}
