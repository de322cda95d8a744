package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/dateguess/locale"
)

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locale field-order table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := newStyles()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%-8s %-4s %s", "TAG", "SEP", "ORDER")))
			for _, row := range locale.Rows() {
				fmt.Fprintf(out, "%-8s %-4s %s\n", row.Tag, row.Separator, row.Order)
			}
			return nil
		},
	}
}
