package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/syntaxlabz/errors-playground/internal/codegen"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

func newScenariosCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [term]",
		Short: "List code generation scenarios",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.codegenService(cmd)
			if err != nil {
				return err
			}
			var term string
			if len(args) == 1 {
				term = args[0]
			}
			scs := svc.Scenarios(cmd.Context(), term)

			w := cmd.OutOrStdout()
			if o.json() {
				return writeJSON(w, scs)
			}
			if len(scs) == 0 {
				_, err := fmt.Fprintf(w, "No scenarios match %q.\n", term)
				return err
			}
			rows := make([][]string, 0, len(scs))
			for _, s := range scs {
				rows = append(rows, []string{s.ID, s.Title, strings.Join(s.Errors, ", ")})
			}
			return writeTable(w, []string{"ID", "TITLE", "ERRORS"}, rows)
		},
	}
}

func newGenerateCmd(o *options) *cobra.Command {
	var out string
	var params codegen.Params

	cmd := &cobra.Command{
		Use:   "generate <scenario> <framework>",
		Short: "Generate Go handler code for a scenario",
		Long: "Renders a gofmt'ed Go file implementing the scenario with the errors it returns. " +
			"Frameworks: vanilla, gin, echo, fiber.",
		Example: "  errorsctl generate user-registration gin --out ./handlers",
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.codegenService(cmd)
			if err != nil {
				return err
			}
			file, err := svc.Generate(cmd.Context(), args[0], strings.ToLower(args[1]), params)
			switch {
			case errors.Is(err, services.ErrUnknownScenario):
				return notFoundErr(err)
			case errors.Is(err, services.ErrUnknownFramework), errors.Is(err, codegen.ErrInvalidParams):
				return validationErr(err)
			case err != nil:
				return internalErr(err)
			}

			w := cmd.OutOrStdout()
			if out == "" || out == "-" {
				if o.json() {
					return writeJSON(w, map[string]string{
						"scenario":  file.Scenario.ID,
						"framework": string(file.Framework),
						"filename":  file.Filename,
						"source":    string(file.Source),
					})
				}
				_, err := w.Write(file.Source)
				return err
			}

			path := out
			if fi, err := os.Stat(out); err == nil && fi.IsDir() {
				path = filepath.Join(out, file.Filename)
			}
			if err := os.WriteFile(path, file.Source, 0o644); err != nil {
				return internalErr(err)
			}
			log.Debug().Str("path", path).Int("bytes", len(file.Source)).Msg("generated")
			_, err = fmt.Fprintf(w, "wrote %s\n", path)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to this file or directory instead of stdout")
	cmd.Flags().StringVar(&params.Package, "package", "", "package name (default "+codegen.DefaultPackage+")")
	cmd.Flags().StringVar(&params.ImportPath, "import-path", "", "import path of the errors package (default "+codegen.DefaultImportPath+")")
	cmd.Flags().IntVar(&params.Port, "port", 0, fmt.Sprintf("listen port in generated main (default %d)", codegen.DefaultPort))
	return cmd
}

func (o *options) codegenService(cmd *cobra.Command) (*services.CodegenService, error) {
	cat, err := o.openCatalog(cmd.Context())
	if err != nil {
		return nil, err
	}
	gen, err := codegen.NewGenerator(cat)
	if err != nil {
		return nil, internalErr(err)
	}
	return &services.CodegenService{Generator: gen}, nil
}
