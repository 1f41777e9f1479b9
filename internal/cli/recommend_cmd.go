package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
	"github.com/syntaxlabz/errors-playground/internal/recommend"
	"github.com/syntaxlabz/errors-playground/internal/services"
)

// recommendation is the JSON shape printed by `recommend -o json`.
type recommendation struct {
	Rank         int              `json:"rank"`
	Name         string           `json:"name"`
	Category     catalog.Category `json:"category"`
	HTTPStatus   int              `json:"http_status"`
	Confidence   int              `json:"confidence"`
	Reasoning    string           `json:"reasoning"`
	JSONResponse map[string]any   `json:"json_response"`
}

func newRecommendCmd(o *options) *cobra.Command {
	var delay time.Duration
	var maxRunes int

	cmd := &cobra.Command{
		Use:   "recommend <scenario text...>",
		Short: "Recommend catalog errors for an API scenario",
		Long: "Scores every catalog error against a free-text scenario and prints the best matches " +
			"with a confidence between 0 and 95 and the reasons behind it.",
		Example: `  errorsctl recommend "User is trying to register with an invalid email format"`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			svc := &services.RecommendService{
				Catalog:       cat,
				Scorer:        recommend.NewScorer(),
				Delay:         recommend.DelayFor(delay),
				MaxInputRunes: maxRunes,
			}
			recs, err := svc.Recommend(cmd.Context(), strings.Join(args, " "))
			switch {
			case errors.Is(err, services.ErrInputTooLong):
				return validationErr(fmt.Errorf("%w (max %d characters)", err, maxRunes))
			case err != nil:
				return internalErr(err)
			}

			out := make([]recommendation, 0, len(recs))
			for i, r := range recs {
				out = append(out, recommendation{
					Rank:         i + 1,
					Name:         r.Error.Name,
					Category:     r.Error.Category,
					HTTPStatus:   r.Error.HTTPStatus,
					Confidence:   r.Confidence,
					Reasoning:    r.Reasoning(),
					JSONResponse: r.Error.JSONResponse,
				})
			}

			w := cmd.OutOrStdout()
			if o.json() {
				return writeJSON(w, out)
			}
			if len(out) == 0 {
				_, err := fmt.Fprintln(w, "No matching errors. Try describing the failure in more detail.")
				return err
			}
			rows := make([][]string, 0, len(out))
			for _, r := range out {
				rows = append(rows, []string{
					strconv.Itoa(r.Rank),
					r.Name,
					strconv.Itoa(r.HTTPStatus),
					strconv.Itoa(r.Confidence) + "%",
					clip(r.Reasoning),
				})
			}
			return writeTable(w, []string{"#", "ERROR", "STATUS", "CONFIDENCE", "REASONING"}, rows)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause before scoring, as the web UI does (e.g. 1.5s)")
	cmd.Flags().IntVar(&maxRunes, "max-runes", 2000, "longest accepted scenario text; 0 disables the limit")
	return cmd
}
