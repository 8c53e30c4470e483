package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently submitted quote requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := app.Requests.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading request history: %w", err)
			}
			if len(requests) == 0 {
				fmt.Println("No quote requests yet.")
				return nil
			}

			headers := []string{"WHEN", "ID", "NAME", "ITEMS", "UPFRONT", "MONTHLY"}
			rows := make([][]string, 0, len(requests))
			for _, r := range requests {
				rows = append(rows, []string{
					formatter.Dim(r.CreatedAt.Local().Format("2006-01-02 15:04")),
					formatter.Dim(shortID(r.ID)),
					r.Contact.Name,
					fmt.Sprintf("%d", len(r.Items)),
					formatter.Ringgit(r.Totals.Upfront),
					formatter.Ringgit(r.Totals.Monthly),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of requests to show")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
