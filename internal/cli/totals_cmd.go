package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
)

func newTotalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show the upfront and monthly totals of the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			totals := app.Quote.Totals()
			fmt.Printf("%s  (%d item(s))\n", formatter.TotalsSummary(totals), app.Quote.Len())
			return nil
		},
	}
}
