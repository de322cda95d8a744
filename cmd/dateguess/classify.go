package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/dateguess/datefmt"
	"github.com/az-ai-labs/dateguess/internal/config"
)

func newClassifyCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <input>...",
		Short: "Print the candidate templates for each input",
		Example: `  dateguess classify "03/10/1990"
  dateguess classify --locale en-GB --json "10/03/1990 14:30"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]datefmt.Result, 0, len(args))
			for _, input := range args {
				res, err := datefmt.ClassifyLocale(input, a.cfg.Locale)
				if err != nil {
					return errors.Wrapf(err, "failed to classify %q", input)
				}
				a.logger.Debug("classified", "input", input, "interpretations", len(res.Interpretations))
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(results), "failed to encode results")
			}
			renderResults(out, results, newStyles())
			return nil
		},
	}

	cmd.Flags().String(config.KeyLocale, "", "locale tag used to rank month/day ambiguity, e.g. en-GB")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	a.bindFlags(cmd, false, config.KeyLocale)
	return cmd
}
