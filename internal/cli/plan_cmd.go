package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the quote plan",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanAddCmd(app),
		newPlanRemoveCmd(app),
		newPlanNoteCmd(app),
		newPlanClearCmd(app),
	)

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected offerings and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Quote.Items()
			if len(items) == 0 {
				fmt.Println("Your plan is empty. Add offerings with: jxing plan add CATEGORY OFFERING")
				return nil
			}

			headers := []string{"ID", "OFFERING", "PRICE", "NOTES"}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					formatter.Dim(item.ID),
					item.Title,
					formatter.PriceTag(item.Price, item.PriceType),
					formatter.Dim(item.Notes),
				})
			}

			content := formatter.RenderTable(headers, rows) + "\n" +
				formatter.TotalsSummary(app.Quote.Totals())
			fmt.Print(formatter.RenderBox("Your Plan", content))
			return nil
		},
	}
}

func newPlanAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add CATEGORY OFFERING",
		Short: "Toggle an offering in the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, sub, err := app.FindOffering(args[0], args[1])
			if err != nil {
				return err
			}
			added, err := app.Quote.Toggle(context.Background(), category, sub)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("Added %s (RM %s / %s)\n", sub.Title, sub.Price, sub.PriceType)
			} else {
				fmt.Printf("Removed %s\n", sub.Title)
			}
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CATEGORY OFFERING",
		Short: "Remove an offering from the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.LineItemID(args[0], args[1])
			if !app.Quote.Has(id) {
				fmt.Printf("%s is not in the plan.\n", id)
				return nil
			}
			if err := app.Quote.Remove(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", id)
			return nil
		},
	}
}

func newPlanNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note CATEGORY OFFERING TEXT",
		Short: "Attach a note to a selected offering",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.LineItemID(args[0], args[1])
			if !app.Quote.Has(id) {
				return fmt.Errorf("%s is not in the plan", id)
			}
			if err := app.Quote.SetNote(context.Background(), id, args[2]); err != nil {
				return err
			}
			fmt.Printf("Noted on %s\n", id)
			return nil
		},
	}
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every offering from the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := app.Quote.Len()
			if err := app.Quote.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Cleared %d item(s).\n", n)
			return nil
		},
	}
}
