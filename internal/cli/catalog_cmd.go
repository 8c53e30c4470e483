package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List service categories and offerings",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := range app.Catalog {
				cat := &app.Catalog[i]
				if categoryID != "" && cat.ID != categoryID {
					continue
				}

				headers := []string{"ID", "OFFERING", "PRICE"}
				rows := make([][]string, 0, len(cat.SubServices))
				for _, sub := range cat.SubServices {
					mark := " "
					if app.Quote.Has(domain.LineItemID(cat.ID, sub.ID)) {
						mark = formatter.StyleRobin.Render("✔")
					}
					rows = append(rows, []string{
						formatter.Dim(sub.ID),
						mark + " " + sub.Title,
						formatter.PriceTag(sub.Price, sub.PriceType),
					})
				}
				fmt.Print(formatter.RenderBox(cat.Title, formatter.RenderTable(headers, rows)))
				fmt.Println()
			}
			if categoryID != "" {
				if _, ok := findCategoryByID(app, categoryID); !ok {
					return fmt.Errorf("unknown category %q", categoryID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Show a single category")

	return cmd
}

func findCategoryByID(app *App, id string) (int, bool) {
	for i := range app.Catalog {
		if app.Catalog[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
