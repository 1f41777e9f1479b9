// Package config reads the server settings from the environment. Every
// variable has a default; malformed and out-of-range values are reported
// together so an operator can fix a deployment in one pass.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources accepted by CATALOG_SOURCE.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogSQLite   = "sqlite"
)

// CORSConfig lists the origins allowed to call the API. Empty allows any.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig controls HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig configures trace export.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT, host:port
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG, 0..1
}

// Config is the full server configuration.
type Config struct {
	// Server
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test

	// Logging and docs
	LogLevel       string
	LogPretty      bool
	LogRedact      bool // scrub PII from access logs
	SwaggerEnabled bool
	APIBasePath    string

	// Catalog
	CatalogSource string // embedded|file|sqlite
	CatalogPath   string // YAML or JSON document for the file source
	DBPath        string // database for the sqlite source

	// Recommender
	AnalyzeDelay  time.Duration // pause before results are returned; 0 disables
	MaxInputRunes int           // longest accepted scenario text; 0 disables

	// Rate limiting
	RateRPS   float64
	RateBurst int

	CORS     CORSConfig
	Security SecurityConfig
	OTEL     OTELConfig
}

// Lookup reads one variable. os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Load reads the process environment.
func Load() (Config, error) { return LoadFrom(os.LookupEnv) }

// LoadFrom builds a Config from lookup, normalizes it and validates it. The
// returned Config is usable for diagnostics even when err is non-nil.
func LoadFrom(lookup Lookup) (Config, error) {
	e := &env{lookup: lookup}
	cfg := Config{
		Port:              e.str("PORT", "8080"),
		ReadTimeout:       e.dur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: e.dur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      e.dur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       e.dur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    e.num("MAX_HEADER_BYTES", 1<<20),
		GinMode:           e.str("GIN_MODE", "release"),

		LogLevel:       e.str("LOG_LEVEL", "info"),
		LogPretty:      e.flag("LOG_PRETTY", false),
		LogRedact:      e.flag("LOG_REDACT", true),
		SwaggerEnabled: e.flag("SWAGGER_ENABLED", false),
		APIBasePath:    e.str("API_BASE_PATH", "/api/v1"),

		CatalogSource: e.str("CATALOG_SOURCE", CatalogEmbedded),
		CatalogPath:   e.str("CATALOG_PATH", ""),
		DBPath:        e.str("DB_PATH", "catalog.db"),

		AnalyzeDelay:  e.dur("ANALYZE_DELAY", 1500*time.Millisecond),
		MaxInputRunes: e.num("MAX_INPUT_RUNES", 2000),

		RateRPS:   e.float("RATE_RPS", 5),
		RateBurst: e.num("RATE_BURST", 10),

		CORS: CORSConfig{AllowedOrigins: e.list("CORS_ALLOWED_ORIGINS")},
		Security: SecurityConfig{
			EnableHSTS: e.flag("ENABLE_HSTS", false),
			HSTSMaxAge: e.dur("HSTS_MAX_AGE", 180*24*time.Hour),
		},
		OTEL: OTELConfig{
			Enabled:     e.flag("OTEL_ENABLED", false),
			Endpoint:    e.str("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    e.flag("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: e.str("OTEL_SERVICE_NAME", "errors-playground"),
			SampleRatio: e.float("OTEL_TRACES_SAMPLER_ARG", 1),
		},
	}
	cfg.normalize()
	return cfg, errors.Join(append(e.errs, cfg.Validate())...)
}

func (c *Config) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	c.GinMode = strings.ToLower(c.GinMode)
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.APIBasePath = normalizeBasePath(c.APIBasePath)
	c.CatalogSource = strings.ToLower(strings.TrimSpace(c.CatalogSource))
	c.CatalogPath = strings.TrimSpace(c.CatalogPath)
	c.DBPath = strings.TrimSpace(c.DBPath)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true}

// Validate reports every invalid setting of a normalized Config.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	if !logLevels[c.LogLevel] {
		bad("LOG_LEVEL must be one of debug, info, warn, error, fatal, panic; got %q", c.LogLevel)
	}
	if c.Port == "" {
		bad("PORT must not be empty")
	}
	if c.ReadTimeout <= 0 || c.ReadHeaderTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		bad("timeouts must be positive durations")
	}
	// The recommender pause must fit in the write deadline.
	if c.WriteTimeout > 0 && c.AnalyzeDelay >= c.WriteTimeout {
		bad("ANALYZE_DELAY (%s) must be shorter than WRITE_TIMEOUT (%s)", c.AnalyzeDelay, c.WriteTimeout)
	}
	if c.MaxHeaderBytes <= 0 {
		bad("MAX_HEADER_BYTES must be > 0")
	}
	switch c.CatalogSource {
	case CatalogEmbedded:
	case CatalogFile:
		if c.CatalogPath == "" {
			bad("CATALOG_PATH must be set when CATALOG_SOURCE=file")
		}
	case CatalogSQLite:
		if c.DBPath == "" {
			bad("DB_PATH must not be empty when CATALOG_SOURCE=sqlite")
		}
	default:
		bad("CATALOG_SOURCE must be one of embedded, file, sqlite; got %q", c.CatalogSource)
	}
	if c.AnalyzeDelay < 0 {
		bad("ANALYZE_DELAY must be >= 0")
	}
	if c.MaxInputRunes < 0 {
		bad("MAX_INPUT_RUNES must be >= 0")
	}
	if c.RateRPS < 0 {
		bad("RATE_RPS must be >= 0")
	}
	if c.RateBurst < 1 {
		bad("RATE_BURST must be >= 1")
	}
	if c.Security.HSTSMaxAge < 0 {
		bad("HSTS_MAX_AGE must be >= 0")
	}
	if c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1 {
		bad("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	return errors.Join(errs...)
}

// env reads typed variables, remembering malformed ones. Unset and empty
// variables take the default.
type env struct {
	lookup Lookup
	errs   []error
}

func (e *env) raw(k string) (string, bool) {
	v, ok := e.lookup(k)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e *env) invalid(k, kind, v string) {
	e.errs = append(e.errs, fmt.Errorf("%s: invalid %s %q", k, kind, v))
}

func (e *env) str(k, def string) string {
	if v, ok := e.raw(k); ok {
		return v
	}
	return def
}

func (e *env) num(k string, def int) int {
	v, ok := e.raw(k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		e.invalid(k, "integer", v)
		return def
	}
	return n
}

func (e *env) float(k string, def float64) float64 {
	v, ok := e.raw(k)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		e.invalid(k, "number", v)
		return def
	}
	return f
}

func (e *env) flag(k string, def bool) bool {
	v, ok := e.raw(k)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	e.invalid(k, "boolean", v)
	return def
}

func (e *env) dur(k string, def time.Duration) time.Duration {
	v, ok := e.raw(k)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		e.invalid(k, "duration", v)
		return def
	}
	return d
}

// list splits a comma-separated variable, dropping blanks.
func (e *env) list(k string) []string {
	v, ok := e.raw(k)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeBasePath forces a leading slash and drops trailing ones; blank
// means root.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
