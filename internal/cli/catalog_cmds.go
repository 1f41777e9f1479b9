package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/preview"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

func newListCmd(o *options) *cobra.Command {
	var category, search, sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog errors",
		Long:  "List catalog errors, optionally filtered by category and search term and sorted by name or status.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := &services.CatalogService{Catalog: cat}
			defs, err := svc.List(cmd.Context(), catalog.Query{
				Category: catalog.Category(strings.ToLower(strings.TrimSpace(category))),
				Search:   strings.TrimSpace(search),
				Sort:     catalog.SortKey(strings.ToLower(strings.TrimSpace(sort))),
			})
			if err != nil {
				return usageErr(err)
			}
			return printDefinitions(cmd.OutOrStdout(), o, defs, "No errors match.")
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category: all | validation | authentication | resource | server")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive term matched against name, description and usage")
	cmd.Flags().StringVar(&sort, "sort", "", "sort key: name | status")
	return cmd
}

func newSearchCmd(o *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Quick search by name, description and keywords",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			term := strings.Join(args, " ")
			svc := &services.CatalogService{Catalog: cat}
			hits := svc.Search(cmd.Context(), term, limit)
			return printDefinitions(cmd.OutOrStdout(), o, hits, fmt.Sprintf("No results for %q.", term))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", catalog.QuickSearchLimit, "maximum number of results")
	return cmd
}

func printDefinitions(w io.Writer, o *options, defs []catalog.ErrorDefinition, empty string) error {
	if o.json() {
		if defs == nil {
			defs = []catalog.ErrorDefinition{}
		}
		return writeJSON(w, defs)
	}
	if len(defs) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{d.Name, string(d.Category), strconv.Itoa(d.HTTPStatus), clip(d.Description)})
	}
	return writeTable(w, []string{"NAME", "CATEGORY", "STATUS", "DESCRIPTION"}, rows)
}

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one catalog error",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := &services.CatalogService{Catalog: cat}
			d, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return notFoundErr(fmt.Errorf("%w: %s", err, args[0]))
			}
			if o.json() {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			return printDefinition(cmd.OutOrStdout(), d)
		},
	}
}

func printDefinition(w io.Writer, d *catalog.ErrorDefinition) error {
	body, err := preview.Encode(d.JSONResponse, true)
	if err != nil {
		return internalErr(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d, %s)\n\n", d.Name, d.HTTPStatus, d.Category)
	fmt.Fprintf(&b, "%s\n\nUse when: %s\n", d.Description, d.Usage)
	writeList(&b, "Common scenarios", d.CommonScenarios)
	writeList(&b, "Examples", d.Examples)
	writeList(&b, "Best practices", d.BestPractices)
	fmt.Fprintf(&b, "\nKeywords: %s\n", strings.Join(d.Keywords, ", "))
	fmt.Fprintf(&b, "\nResponse:\n%s\n", body)

	_, err = io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
}

func newPreviewCmd(o *options) *cobra.Command {
	var message, field string
	var compact bool

	cmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Print the JSON payload of an error, optionally customized",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := &services.CatalogService{Catalog: cat}
			p, err := svc.Preview(cmd.Context(), args[0], preview.Options{Message: message, Field: field})
			if err != nil {
				return notFoundErr(fmt.Errorf("%w: %s", err, args[0]))
			}
			body, err := preview.Encode(p.Payload, !compact)
			if err != nil {
				return internalErr(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "custom message, prefixed with the error code")
	cmd.Flags().StringVar(&field, "field", "", "field name added to the payload")
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")
	return cmd
}

func newExamplesCmd(o *options) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the predefined recommendation scenarios",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := &services.CatalogService{Catalog: cat}
			exs := svc.Examples(cmd.Context())
			if random {
				ex, err := svc.RandomExample(cmd.Context())
				if errors.Is(err, services.ErrNoExamples) {
					return notFoundErr(err)
				}
				if err != nil {
					return internalErr(err)
				}
				exs = []catalog.ExampleScenario{ex}
			}

			w := cmd.OutOrStdout()
			if o.json() {
				if exs == nil {
					exs = []catalog.ExampleScenario{}
				}
				return writeJSON(w, exs)
			}
			if len(exs) == 0 {
				_, err := fmt.Fprintln(w, "No examples.")
				return err
			}
			rows := make([][]string, 0, len(exs))
			for _, ex := range exs {
				rows = append(rows, []string{ex.Title, strings.Join(ex.ExpectedErrors, ", "), clip(ex.Input)})
			}
			return writeTable(w, []string{"TITLE", "EXPECTED", "INPUT"}, rows)
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "print one randomly chosen example")
	return cmd
}
