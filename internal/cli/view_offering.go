package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// offeringView shows one offering in full: tagline, description, price,
// benefits, deliverables and terms.
type offeringView struct {
	state    *SharedState
	category *domain.ServiceCategory
	sub      domain.SubService
}

func newOfferingView(state *SharedState, category *domain.ServiceCategory, sub domain.SubService) *offeringView {
	return &offeringView{
		state:    state,
		category: category,
		sub:      sub,
	}
}

func (v *offeringView) ID() ViewID    { return ViewOffering }
func (v *offeringView) Title() string { return v.sub.Title }

func (v *offeringView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "plan")),
	}
}

func (v *offeringView) Init() tea.Cmd {
	return nil
}

func (v *offeringView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			app := v.state.App
			category, sub := v.category, v.sub
			return v, func() tea.Msg {
				_, _ = app.Quote.Toggle(context.Background(), category, sub)
				return refreshViewMsg{}
			}
		case "v":
			return v, pushView(newPlanView(v.state))
		}
	}
	return v, nil
}

func (v *offeringView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	selected := ""
	if v.state.App.Quote.Has(domain.LineItemID(v.category.ID, v.sub.ID)) {
		selected = "  " + formatter.StyleRobin.Render("✔ in plan")
	}

	b.WriteString("  " + formatter.StyleHeader.Render(v.sub.Title) + selected + "\n")
	if v.sub.Tagline != "" {
		b.WriteString("  " + formatter.StyleMarian.Render(v.sub.Tagline) + "\n")
	}
	b.WriteString("  " + formatter.PriceTag(v.sub.Price, v.sub.PriceType) + "\n\n")

	if v.sub.Description != "" {
		b.WriteString("  " + formatter.StyleFg.Render(v.sub.Description) + "\n\n")
	}

	writeList := func(title string, entries []string) {
		if len(entries) == 0 {
			return
		}
		b.WriteString("  " + formatter.StyleBold.Render(title) + "\n")
		for _, e := range entries {
			b.WriteString("    " + formatter.StyleRobin.Render("•") + " " + e + "\n")
		}
		b.WriteString("\n")
	}

	writeList("What you get", v.sub.Benefits)
	writeList("Deliverables", v.sub.Deliverables)

	if v.sub.Terms != "" {
		b.WriteString("  " + formatter.Dim(v.sub.Terms) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
