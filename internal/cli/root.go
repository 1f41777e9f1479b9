// Package cli implements errorsctl, a command line client over the error
// catalog, the recommender, the payload previewer and the code generator.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/syntaxlabz/errors-playground/internal/app"
	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/config"
	"github.com/syntaxlabz/errors-playground/internal/sysutil"
)

const (
	outputFormatJSON  = "json"
	outputFormatTable = "table"

	// Table cells longer than this are clipped with an ellipsis.
	maxCellRunes = 60
)

// Version is reported by `errorsctl version`.
var Version = "dev"

// options holds the persistent flags shared by every command.
type options struct {
	catalogSource string
	catalogPath   string
	dbPath        string
	output        string
}

// resolve fills unset flags from the environment (the same keys the server
// reads) and validates them.
func (o *options) resolve() error {
	o.catalogSource = strings.ToLower(sysutil.FirstNonEmpty(o.catalogSource, os.Getenv("CATALOG_SOURCE"), config.CatalogEmbedded))
	o.catalogPath = sysutil.FirstNonEmpty(o.catalogPath, os.Getenv("CATALOG_PATH"))
	o.dbPath = sysutil.FirstNonEmpty(o.dbPath, os.Getenv("DB_PATH"), "catalog.db")

	switch o.catalogSource {
	case config.CatalogEmbedded, config.CatalogSQLite:
	case config.CatalogFile:
		if strings.TrimSpace(o.catalogPath) == "" {
			return fmt.Errorf("--catalog-path is required with --catalog-source=file")
		}
	default:
		return fmt.Errorf("catalog source must be embedded, file or sqlite")
	}
	if o.output != outputFormatTable && o.output != outputFormatJSON {
		return fmt.Errorf("output must be table or json")
	}
	return nil
}

func (o *options) config() config.Config {
	return config.Config{
		CatalogSource: o.catalogSource,
		CatalogPath:   o.catalogPath,
		DBPath:        o.dbPath,
	}
}

func (o *options) openCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := app.OpenCatalog(ctx, o.config())
	if err != nil {
		return nil, internalErr(err)
	}
	log.Debug().Str("source", o.catalogSource).Int("errors", cat.Len()).Msg("catalog loaded")
	return cat, nil
}

func (o *options) json() bool { return o.output == outputFormatJSON }

// NewRootCmd builds the errorsctl command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "errorsctl",
		Short:         "Explore HTTP API errors from the terminal",
		Long:          "Browse the error catalog, get recommendations for API scenarios, preview payloads and generate handler code.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl := "warn"
			if sysutil.IsTruthy(os.Getenv("ERRORSCTL_DEBUG")) {
				lvl = "debug"
			}
			sysutil.SetupLogger(cmd.ErrOrStderr(), lvl, true)
			if err := o.resolve(); err != nil {
				return usageErr(err)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	pf := root.PersistentFlags()
	pf.StringVar(&o.catalogSource, "catalog-source", "", "catalog source: embedded | file | sqlite (env CATALOG_SOURCE)")
	pf.StringVar(&o.catalogPath, "catalog-path", "", "YAML or JSON catalog for the file source (env CATALOG_PATH)")
	pf.StringVar(&o.dbPath, "db", "", "SQLite database for the sqlite source and seed (env DB_PATH, default catalog.db)")
	pf.StringVarP(&o.output, "output", "o", outputFormatTable, "output format: table | json")

	root.AddCommand(
		newRecommendCmd(o),
		newListCmd(o),
		newSearchCmd(o),
		newShowCmd(o),
		newPreviewCmd(o),
		newExamplesCmd(o),
		newScenariosCmd(o),
		newGenerateCmd(o),
		newSeedCmd(o),
		newVersionCmd(),
	)
	return root
}

// Execute runs errorsctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCmd(out, errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, "errorsctl:", err)
		return CodeOf(err)
	}
	return CodeSuccess
}

// usageArgs turns positional argument errors into usage exits.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageErr(err)
		}
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "errorsctl", Version)
			return err
		},
	}
}

//
// Output helpers
//

// writeJSON encodes v indented, without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeTable renders rows under headers with a rounded border.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// clip shortens s to maxCellRunes runes.
func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxCellRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxCellRunes-1]) + "…"
}
