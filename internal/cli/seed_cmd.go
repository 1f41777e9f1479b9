package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/config"
	"github.com/syntaxlabz/errors-playground/internal/repo"
)

// seedResult is the JSON shape printed by `seed -o json`.
type seedResult struct {
	DB        string     `json:"db"`
	Source    string     `json:"source"`
	Errors    int64      `json:"errors"`
	Examples  int64      `json:"examples"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func newSeedCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the catalog into a SQLite database",
		Long: "Replaces the catalog stored in --db with the embedded catalog, or with the document at " +
			"--catalog-path when given. The server reads it back with CATALOG_SOURCE=sqlite.",
		Example: "  errorsctl seed --db ./catalog.db",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			src := o.seedSource()
			cat, err := catalog.Open(ctx, src)
			if err != nil {
				return validationErr(err)
			}

			st, err := seed(ctx, o.dbPath, cat)
			if err != nil {
				return internalErr(err)
			}
			res := seedResult{
				DB:        o.dbPath,
				Source:    o.seedSourceName(),
				Errors:    st.Errors,
				Examples:  st.Examples,
				UpdatedAt: st.UpdatedAt,
			}

			w := cmd.OutOrStdout()
			if o.json() {
				return writeJSON(w, res)
			}
			_, err = fmt.Fprintf(w, "seeded %d errors and %d examples from %s into %s\n",
				res.Errors, res.Examples, res.Source, res.DB)
			return err
		},
	}
}

// seedSource is the file at --catalog-path when set, else the embedded catalog.
// The sqlite source is never read back into itself.
func (o *options) seedSource() catalog.Source {
	if o.catalogPath != "" {
		return catalog.FileSource{Path: o.catalogPath}
	}
	return catalog.EmbeddedSource{}
}

func (o *options) seedSourceName() string {
	if o.catalogPath != "" {
		return o.catalogPath
	}
	return config.CatalogEmbedded
}

func seed(ctx context.Context, path string, cat *catalog.Catalog) (repo.Stats, error) {
	db, err := repo.OpenSQLite(path)
	if err != nil {
		return repo.Stats{}, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repo.AutoMigrate(db); err != nil {
		return repo.Stats{}, fmt.Errorf("migrate: %w", err)
	}
	log.Debug().Str("db", path).Int("errors", cat.Len()).Msg("seeding catalog")
	if err := repo.SaveCatalog(ctx, db, cat.Document()); err != nil {
		return repo.Stats{}, fmt.Errorf("save catalog: %w", err)
	}
	return repo.CatalogStats(ctx, db)
}
