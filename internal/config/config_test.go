package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// mapEnv is a Lookup over a fixed map.
func mapEnv(m map[string]string) Lookup {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(mapEnv(nil))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	want := Config{
		Port:              "8080",
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
		GinMode:           "release",
		LogLevel:          "info",
		LogRedact:         true,
		APIBasePath:       "/api/v1",
		CatalogSource:     CatalogEmbedded,
		DBPath:            "catalog.db",
		AnalyzeDelay:      1500 * time.Millisecond,
		MaxInputRunes:     2000,
		RateRPS:           5,
		RateBurst:         10,
		Security:          SecurityConfig{HSTSMaxAge: 180 * 24 * time.Hour},
		OTEL: OTELConfig{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "errors-playground",
			SampleRatio: 1,
		},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("defaults:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadFrom_OverridesAndNormalization(t *testing.T) {
	cfg, err := LoadFrom(mapEnv(map[string]string{
		"PORT":                        " 8088 ",
		"READ_TIMEOUT":                "2s",
		"WRITE_TIMEOUT":               "3s",
		"MAX_HEADER_BYTES":            "8192",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "WARNING",
		"LOG_PRETTY":                  "yes",
		"LOG_REDACT":                  "off",
		"SWAGGER_ENABLED":             "On",
		"API_BASE_PATH":               "api/v2/",
		"CATALOG_SOURCE":              "SQLite",
		"DB_PATH":                     "db.sqlite",
		"ANALYZE_DELAY":               "0s",
		"MAX_INPUT_RUNES":             "500",
		"RATE_RPS":                    "2.5",
		"CORS_ALLOWED_ORIGINS":        " https://a.com , , http://b ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_INSECURE": "0",
		"OTEL_SERVICE_NAME":           "svc",
		"OTEL_TRACES_SAMPLER_ARG":     "0.75",
		"IDLE_TIMEOUT":                "",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.WriteTimeout != 3*time.Second ||
		cfg.IdleTimeout != 60*time.Second || cfg.MaxHeaderBytes != 8192 || cfg.GinMode != "release" {
		t.Fatalf("server fields: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || cfg.LogRedact || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api/v2" {
		t.Fatalf("logging fields: %+v", cfg)
	}
	if cfg.CatalogSource != CatalogSQLite || cfg.DBPath != "db.sqlite" || cfg.AnalyzeDelay != 0 || cfg.MaxInputRunes != 500 {
		t.Fatalf("catalog fields: %+v", cfg)
	}
	if cfg.RateRPS != 2.5 || cfg.RateBurst != 10 {
		t.Fatalf("rate fields: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("origins: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security: %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel: %+v", cfg.OTEL)
	}
}

func TestLoadFrom_MalformedValues(t *testing.T) {
	cfg, err := LoadFrom(mapEnv(map[string]string{
		"RATE_RPS":      "x",
		"RATE_BURST":    "ten",
		"LOG_PRETTY":    "sometimes",
		"ANALYZE_DELAY": "1.5",
	}))
	if err == nil {
		t.Fatalf("expected errors for malformed values")
	}
	for _, want := range []string{
		`RATE_RPS: invalid number "x"`,
		`RATE_BURST: invalid integer "ten"`,
		`LOG_PRETTY: invalid boolean "sometimes"`,
		`ANALYZE_DELAY: invalid duration "1.5"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q lacks %q", err, want)
		}
	}
	// Malformed values fall back to their defaults.
	if cfg.RateRPS != 5 || cfg.RateBurst != 10 || cfg.LogPretty || cfg.AnalyzeDelay != 1500*time.Millisecond {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL must be one of"},
		{"blank port", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"zero timeout", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"delay beyond write timeout", map[string]string{"ANALYZE_DELAY": "30s"}, "must be shorter than WRITE_TIMEOUT"},
		{"header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"unknown source", map[string]string{"CATALOG_SOURCE": "redis"}, `got "redis"`},
		{"file without path", map[string]string{"CATALOG_SOURCE": "file", "CATALOG_PATH": " "}, "CATALOG_PATH must be set"},
		{"sqlite without path", map[string]string{"CATALOG_SOURCE": "sqlite", "DB_PATH": " "}, "DB_PATH must not be empty"},
		{"negative delay", map[string]string{"ANALYZE_DELAY": "-1s"}, "ANALYZE_DELAY must be >= 0"},
		{"negative runes", map[string]string{"MAX_INPUT_RUNES": "-5"}, "MAX_INPUT_RUNES"},
		{"negative rps", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"zero burst", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"negative hsts", map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{"sample ratio", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(mapEnv(tt.env))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v; want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadFrom_ReportsEveryProblem(t *testing.T) {
	_, err := LoadFrom(mapEnv(map[string]string{
		"RATE_BURST":     "0",
		"CATALOG_SOURCE": "redis",
		"PORT":           " ",
	}))
	if err == nil {
		t.Fatal("expected an error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("expected a joined error, got %T", err)
	}
	if n := strings.Count(err.Error(), "\n") + 1; n != 3 {
		t.Fatalf("got %d problems; want 3:\n%v", n, err)
	}
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("CATALOG_SOURCE", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" || cfg.CatalogSource != CatalogEmbedded {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	for in, want := range map[string]string{
		"":         "/",
		" / ":      "/",
		"v1":       "/v1",
		"/v1/":     "/v1",
		"//api//":  "/api",
		"/api/v1":  "/api/v1",
		"api/v1//": "/api/v1",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}
