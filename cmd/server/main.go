// Command server runs the errors playground HTTP API.
//
//	@title			Errors Playground API
//	@version		1.0
//	@description	Explore the HTTP error catalog, get error recommendations for API scenarios, preview payloads and generate handler code.
//	@BasePath		/api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/syntaxlabz/errors-playground/internal/app"
	"github.com/syntaxlabz/errors-playground/internal/config"
	"github.com/syntaxlabz/errors-playground/internal/observability"
	"github.com/syntaxlabz/errors-playground/internal/sysutil"
)

var version = "dev"

func main() {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version,
		attribute.String("catalog.source", cfg.CatalogSource))
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	srv, err := app.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Str("api", cfg.APIBasePath).
			Bool("swagger", cfg.SwaggerEnabled).
			Msg("errors playground listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	// Drain in-flight requests (the recommender delay included).
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
}
