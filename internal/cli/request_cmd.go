package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/quote"
)

func newRequestCmd(app *App) *cobra.Command {
	var contact domain.ContactDetails

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Submit the current plan as a quote request",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Quote.Items()
			if len(items) == 0 {
				return fmt.Errorf("the plan is empty; add offerings before requesting a quote")
			}

			flow := quote.NewRequestFlow(items, nil)
			if _, err := flow.Submit(contact); err != nil {
				return err
			}

			ctx := cmd.Context()
			payload := flow.Payload()
			if err := app.Submitter.Submit(ctx, payload); err != nil {
				return fmt.Errorf("delivering quote request: %w", err)
			}
			if err := app.Requests.Create(ctx, payload); err != nil {
				return fmt.Errorf("recording quote request: %w", err)
			}
			flow.MarkDelivered()
			flow.Finalize()

			fmt.Printf("Quote request %s sent.\n", formatter.Bold(payload.ID))
			fmt.Printf("%s\n", formatter.TotalsSummary(payload.Totals))
			fmt.Printf("Book your free consultation: %s\n", formatter.StyleAzure.Render(app.Config.BookingURL))
			return nil
		},
	}

	cmd.Flags().StringVar(&contact.Name, "name", "", "Contact name (required)")
	cmd.Flags().StringVar(&contact.Phone, "phone", "", "Contact phone (required)")
	cmd.Flags().StringVar(&contact.Email, "email", "", "Contact email (required)")
	cmd.Flags().StringVar(&contact.Message, "message", "", "Optional message")

	return cmd
}
