package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/quote"
	"github.com/jxt-gindran/jxingwebsite/internal/repository"
	"github.com/jxt-gindran/jxingwebsite/internal/submit"
)

// App holds everything the CLI commands and the TUI need.
type App struct {
	Catalog   []domain.ServiceCategory
	Quote     *quote.Store
	Requests  repository.QuoteRequestRepo
	Submitter submit.Submitter
	Config    submit.Config

	// IsInteractive reports whether stdin is a terminal; the bare
	// command opens the TUI only when it is.
	IsInteractive func() bool
}

// FindOffering resolves a category and sub-service pair from the catalog.
func (a *App) FindOffering(categoryID, subID string) (*domain.ServiceCategory, domain.SubService, error) {
	for i := range a.Catalog {
		if a.Catalog[i].ID != categoryID {
			continue
		}
		sub, ok := a.Catalog[i].FindSubService(subID)
		if !ok {
			return nil, domain.SubService{}, fmt.Errorf("category %q has no offering %q", categoryID, subID)
		}
		return &a.Catalog[i], sub, nil
	}
	return nil, domain.SubService{}, fmt.Errorf("unknown category %q", categoryID)
}

// NewRootCmd creates the top-level "jxing" command and registers all
// subcommands against the provided App. The bare command opens the
// interactive quote builder when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jxing",
		Short: "Browse the JXING service catalog and build a quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			program := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := program.Run()
			return err
		},
	}

	root.AddCommand(
		newCatalogCmd(app),
		newPlanCmd(app),
		newTotalsCmd(app),
		newRequestCmd(app),
		newHistoryCmd(app),
	)

	return root
}
