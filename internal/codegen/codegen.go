// Package codegen renders ready-to-adapt Go handlers that return catalog
// errors for a few common API scenarios, in several web frameworks.
//
// Templates are embedded and parsed once by NewGenerator; a Generator is
// immutable and safe for concurrent use.
package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

//go:embed templates/*/*.tmpl
var templateFS embed.FS

const (
	DefaultImportPath = "github.com/syntaxlabz/errors"
	DefaultPackage    = "main"
	DefaultPort       = 8080
)

var (
	ErrUnknownScenario  = errors.New("unknown scenario")
	ErrUnknownFramework = errors.New("unknown framework")
	ErrInvalidParams    = errors.New("invalid generator params")
)

// Scenario is one generated use case and the catalog errors it returns.
type Scenario struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Errors      []string `json:"errors"`
}

var builtinScenarios = []Scenario{
	{
		ID:          "user-registration",
		Title:       "User Registration",
		Description: "Handle user registration with validation",
		Errors:      []string{"MissingParameter", "InvalidParameter", "Conflict"},
	},
	{
		ID:          "authentication",
		Title:       "User Authentication",
		Description: "Handle user login with authentication errors",
		Errors:      []string{"MissingParameter", "Unauthorized", "RateLimited"},
	},
	{
		ID:          "resource-crud",
		Title:       "Resource CRUD Operations",
		Description: "Handle resource operations with proper error handling",
		Errors:      []string{"NotFound", "Forbidden", "Conflict"},
	},
}

// Params customize the generated file. Zero values take the defaults.
type Params struct {
	ImportPath string `json:"import_path,omitempty"`
	Package    string `json:"package,omitempty"`
	Port       int    `json:"port,omitempty"`
}

func (p Params) withDefaults() Params {
	if strings.TrimSpace(p.ImportPath) == "" {
		p.ImportPath = DefaultImportPath
	}
	if strings.TrimSpace(p.Package) == "" {
		p.Package = DefaultPackage
	}
	if p.Port == 0 {
		p.Port = DefaultPort
	}
	p.ImportPath = strings.TrimSpace(p.ImportPath)
	p.Package = strings.TrimSpace(p.Package)
	return p
}

func (p Params) validate() error {
	if !token.IsIdentifier(p.Package) {
		return fmt.Errorf("%w: package %q is not a Go identifier", ErrInvalidParams, p.Package)
	}
	if strings.ContainsAny(p.ImportPath, " \t\"`\\") {
		return fmt.Errorf("%w: import path %q", ErrInvalidParams, p.ImportPath)
	}
	if p.Port < 1 || p.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidParams, p.Port)
	}
	return nil
}

type templateData struct {
	Params
	Scenario  Scenario
	Framework catalog.Framework
}

// Generator renders scenario templates.
type Generator struct {
	scenarios []Scenario
	byID      map[string]int
	templates map[string]*template.Template // key: "<id>/<framework>"
}

// NewGenerator parses the embedded templates and checks that every error a
// scenario references exists in cat.
func NewGenerator(cat *catalog.Catalog) (*Generator, error) {
	g := &Generator{
		scenarios: builtinScenarios,
		byID:      make(map[string]int, len(builtinScenarios)),
		templates: make(map[string]*template.Template, len(builtinScenarios)*len(catalog.Frameworks)),
	}
	for i, s := range builtinScenarios {
		g.byID[s.ID] = i
		if cat != nil {
			for _, name := range s.Errors {
				if _, ok := cat.ByName(name); !ok {
					return nil, fmt.Errorf("scenario %s references unknown error %q", s.ID, name)
				}
			}
		}
		for _, fw := range catalog.Frameworks {
			key := templateKey(s.ID, fw)
			src, err := templateFS.ReadFile("templates/" + key + ".tmpl")
			if err != nil {
				return nil, fmt.Errorf("read template %s: %w", key, err)
			}
			t, err := template.New(key).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(string(src))
			if err != nil {
				return nil, fmt.Errorf("parse template %s: %w", key, err)
			}
			g.templates[key] = t
		}
	}
	return g, nil
}

// MustNewGenerator is like NewGenerator but panics on error.
func MustNewGenerator(cat *catalog.Catalog) *Generator {
	g, err := NewGenerator(cat)
	if err != nil {
		panic(err)
	}
	return g
}

func templateKey(id string, fw catalog.Framework) string {
	return id + "/" + string(fw)
}

// Scenarios returns all scenarios in display order.
func (g *Generator) Scenarios() []Scenario {
	return cloneScenarios(g.scenarios)
}

// Scenario looks up one scenario by id.
func (g *Generator) Scenario(id string) (Scenario, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Scenario{}, false
	}
	return cloneScenarios(g.scenarios[i : i+1])[0], true
}

// FilterScenarios keeps scenarios whose title, description or any referenced
// error name contains term (case-insensitive). An empty term keeps all.
func (g *Generator) FilterScenarios(term string) []Scenario {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return g.Scenarios()
	}
	var out []Scenario
	for _, s := range g.scenarios {
		if matchScenario(s, term) {
			out = append(out, s)
		}
	}
	return cloneScenarios(out)
}

func matchScenario(s Scenario, term string) bool {
	if strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Description), term) {
		return true
	}
	for _, e := range s.Errors {
		if strings.Contains(strings.ToLower(e), term) {
			return true
		}
	}
	return false
}

// Generate renders the scenario for framework and returns gofmt'd source.
func (g *Generator) Generate(id string, fw catalog.Framework, p Params) ([]byte, error) {
	i, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	t, ok := g.templates[templateKey(id, fw)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, fw)
	}
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := templateData{Params: p, Scenario: g.scenarios[i], Framework: fw}
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", t.Name(), err)
	}
	return src, nil
}

// Filename is the download name for generated code.
func Filename(id string, fw catalog.Framework) string {
	return id + "-" + string(fw) + ".go"
}

func cloneScenarios(in []Scenario) []Scenario {
	if in == nil {
		return nil
	}
	out := make([]Scenario, len(in))
	for i, s := range in {
		s.Errors = append([]string(nil), s.Errors...)
		out[i] = s
	}
	return out
}
