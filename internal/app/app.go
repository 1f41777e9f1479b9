// Package app wires configuration, the catalog source, the code generator
// and the HTTP router into a ready-to-run server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/config"
	httpapi "github.com/syntaxlabz/errors-playground/internal/http"
	"github.com/syntaxlabz/errors-playground/internal/repo"
)

// OpenCatalog loads and validates the catalog from the source selected by
// cfg.CatalogSource. Only CatalogSource, CatalogPath and DBPath are read.
func OpenCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogEmbedded, "":
		return catalog.Open(ctx, catalog.EmbeddedSource{})

	case config.CatalogFile:
		cat, err := catalog.Open(ctx, catalog.FileSource{Path: cfg.CatalogPath})
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", cfg.CatalogPath, err)
		}
		return cat, nil

	case config.CatalogSQLite:
		db, err := repo.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := repo.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		cat, err := catalog.Open(ctx, repo.SQLiteSource{DB: db})
		if errors.Is(err, repo.ErrEmptyCatalog) {
			return nil, fmt.Errorf("%w: run `errorsctl seed --db %s` first", err, cfg.DBPath)
		}
		return cat, err

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// NewServer opens the catalog, builds the router and returns an
// *http.Server configured with the timeouts from cfg. The server is not
// started.
func NewServer(ctx context.Context, cfg config.Config) (*http.Server, error) {
	cat, err := OpenCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	gen, err := codegen.NewGenerator(cat)
	if err != nil {
		return nil, fmt.Errorf("code templates: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, cat, gen, cfg)

	log.Info().
		Str("source", cfg.CatalogSource).
		Int("errors", cat.Len()).
		Int("examples", len(cat.Examples())).
		Msg("catalog loaded")

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}, nil
}
