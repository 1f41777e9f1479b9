package httpapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		APIBasePath:  "/api/v1",
		RateRPS:      1000,
		RateBurst:    1000,
		LogRedact:    true,
		CORS:         config.CORSConfig{AllowedOrigins: nil}, // triggers AllowAllOrigins branch
		Security:     config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:         config.OTELConfig{ServiceName: "test-svc"},
		AnalyzeDelay: 0,
	}
}

func newTestEngine(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cat := catalog.Default()
	RegisterRoutes(r, cat, codegen.MustNewGenerator(cat), cfg)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r := newTestEngine(t, testConfig())

	// /health works
	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"errors":8`) {
		t.Fatalf("health should report catalog size: %s", w.Body.String())
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404
	w = serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}

	// NoMethod → 405 (POST /health)
	w = serve(r, httptest.NewRequest(http.MethodPost, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}

	// Swagger is off by default
	w = serve(r, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be disabled, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig()
	cfg.APIBasePath = "/api/v2"
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	r := newTestEngine(t, cfg)

	// Any request runs through CORS middleware; header should reflect origin.
	req := httptest.NewRequest(http.MethodGet, "/api/v2/categories", nil)
	req.Header.Set("Origin", "http://example.com")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v2/categories = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_APIRoundTrip(t *testing.T) {
	r := newTestEngine(t, testConfig())

	// recommend through the full stack (delay disabled)
	body := bytes.NewBufferString(`{"input":"User is trying to register with an invalid email format"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", body)
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /recommendations = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Recommendations []struct {
			Name       string `json:"name"`
			Confidence int    `json:"confidence"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Recommendations) != 3 || resp.Recommendations[0].Name != "InvalidParameter" || resp.Recommendations[0].Confidence != 95 {
		t.Fatalf("unexpected recommendations: %+v", resp.Recommendations)
	}

	// every mounted GET route answers
	for _, path := range []string{
		"/api/v1/errors",
		"/api/v1/errors/NotFound",
		"/api/v1/errors/NotFound/preview",
		"/api/v1/errors/NotFound/snippets/echo",
		"/api/v1/categories",
		"/api/v1/search?q=not",
		"/api/v1/previews/quick",
		"/api/v1/examples",
		"/api/v1/examples/random",
		"/api/v1/codegen/scenarios",
		"/api/v1/codegen/scenarios/resource-crud/vanilla",
	} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d body=%s", path, w.Code, w.Body.String())
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("GET %s: missing X-Request-ID", path)
		}
	}
}

func TestRegisterRoutes_Gzip(t *testing.T) {
	r := newTestEngine(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/errors", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, headers=%v", w.Header())
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"count":8`)) {
		t.Fatalf("unexpected body: %s", raw)
	}

	// without Accept-Encoding the body is plain
	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/errors", nil))
	if w.Header().Get("Content-Encoding") != "" {
		t.Fatalf("unexpected encoding %q", w.Header().Get("Content-Encoding"))
	}
}

func TestRegisterRoutes_RateLimitExemptsHealth(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS = 0.001
	cfg.RateBurst = 1
	r := newTestEngine(t, cfg)

	for i := 0; i < 3; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil)); w.Code != http.StatusOK {
			t.Fatalf("health #%d = %d", i, w.Code)
		}
	}
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)); w.Code != http.StatusOK {
		t.Fatalf("first API call = %d", w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second API call expected 429, got %d", w.Code)
	}
}

func TestRegisterRoutes_SwaggerAndPlainLogger(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	cfg.LogRedact = false
	r := newTestEngine(t, cfg)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /swagger/doc.json = %d", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("swagger doc is not JSON: %v", err)
	}
	if doc["basePath"] != "/api/v1" {
		t.Fatalf("basePath=%v", doc["basePath"])
	}
	paths, _ := doc["paths"].(map[string]any)
	if _, ok := paths["/recommendations"]; !ok {
		t.Fatalf("recommendations path missing from docs")
	}
}

func TestRecommend_OversizedBody(t *testing.T) {
	r := newTestEngine(t, testConfig())

	body := `{"input":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for a body over the cap, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":"input_too_long"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func Test_limitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	for body, want := range map[string]int{"0123456789": http.StatusOK, "0123456789AB": http.StatusRequestEntityTooLarge} {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
		if w.Code != want {
			t.Fatalf("%d-byte body: got %d; want %d", len(body), w.Code, want)
		}
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

func TestPipeline_SecurityHeaders(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour}
	r := newTestEngine(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/errors/NotFound", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET error = %d", w.Code)
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=3600; includeSubDomains; preload" {
		t.Fatalf("HSTS = %q", got)
	}
	if w.Header().Get("Content-Security-Policy") == "" || w.Header().Get("Permissions-Policy") == "" {
		t.Fatalf("API responses need CSP and Permissions-Policy: %v", w.Header())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET swagger = %d", w.Code)
	}
	if csp := w.Header().Get("Content-Security-Policy"); csp != "" {
		t.Fatalf("swagger UI must not get the API CSP, got %q", csp)
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("plain http must not get HSTS")
	}
}
