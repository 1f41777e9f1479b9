// Package httpapi builds the Gin engine of the playground: the middleware
// pipeline, health, metrics and docs endpoints, and the versioned API routes.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/syntaxlabz/errors-playground/docs"
	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/config"
	"github.com/syntaxlabz/errors-playground/internal/http/handlers"
	"github.com/syntaxlabz/errors-playground/internal/http/middleware"
	"github.com/syntaxlabz/errors-playground/internal/recommend"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

// apiMethods are the only verbs the public API serves.
var apiMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

const maxBodyBytes = 1 << 20

// RegisterRoutes installs the middleware pipeline and every endpoint on r.
// The order is tracing, request ID, access log, recovery, body cap, metrics,
// rate limit, gzip, CORS and security headers, so that panics, rejections
// and errors all carry the correlation ID and are counted.
func RegisterRoutes(r *gin.Engine, cat *catalog.Catalog, gen *codegen.Generator, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	if cfg.LogRedact {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{
			MaskHeaders:   []string{"X-API-Key"},
			MaskQueryKeys: []string{"message"}, // free text typed into the previewer
		}))
	} else {
		r.Use(middleware.Logger())
	}
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP()).
		Exempt("/health", "/metrics")
	r.Use(rl.Handler())

	// promhttp negotiates its own encoding.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(corsMiddleware(cfg.CORS)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
		DocsPrefix:   "/swagger",
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "errors": cat.Len()})
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalogSvc := &services.CatalogService{Catalog: cat}
	recommendSvc := &services.RecommendService{
		Catalog:       cat,
		Scorer:        recommend.NewScorer(),
		Delay:         recommend.DelayFor(cfg.AnalyzeDelay),
		MaxInputRunes: cfg.MaxInputRunes,
	}
	codegenSvc := &services.CodegenService{Generator: gen}
	h := handlers.New(catalogSvc, recommendSvc, codegenSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("/errors", h.ListErrors)
		api.GET("/errors/:name", h.GetError)
		api.GET("/errors/:name/preview", h.PreviewError)
		api.GET("/errors/:name/snippets/:framework", h.GetSnippet)
		api.GET("/categories", h.ListCategories)
		api.GET("/search", h.SearchErrors)
		api.GET("/previews/quick", h.QuickPreviews)

		api.GET("/examples", h.ListExamples)
		api.GET("/examples/random", h.RandomExample)

		api.POST("/recommendations", h.Recommend)

		api.GET("/codegen/scenarios", h.ListScenarios)
		api.GET("/codegen/scenarios/:id/:framework", h.GenerateCode)
	}
}

// corsMiddleware allows any origin when none are configured, without
// credentials. Otherwise only the listed origins are echoed back.
func corsMiddleware(c config.CORSConfig) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:  apiMethods,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "If-None-Match"},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Length", "Content-Disposition", "ETag"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 {
		base.AllowAllOrigins = true
		// cors skips requests without Origin; set the header for those too.
		star := func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		}
		return []gin.HandlerFunc{star, cors.New(base)}
	}

	base.AllowOrigins = c.AllowedOrigins
	allowed := make(map[string]bool, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		allowed[o] = true
	}
	echo := func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}
		c.Next()
	}
	return []gin.HandlerFunc{echo, cors.New(base)}
}

// limitBody caps request bodies; reads past maxBytes fail, which the
// recommendations handler reports as 413.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
