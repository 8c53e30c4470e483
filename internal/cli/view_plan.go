package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// planView lists the selected offerings with their notes and totals.
type planView struct {
	state  *SharedState
	items  []domain.QuoteLineItem
	cursor int
}

func newPlanView(state *SharedState) *planView {
	v := &planView{state: state}
	v.reload()
	return v
}

func (v *planView) reload() {
	v.items = v.state.App.Quote.Items()
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *planView) ID() ViewID    { return ViewPlan }
func (v *planView) Title() string { return "Plan" }

func (v *planView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "request")),
	}
}

func (v *planView) Init() tea.Cmd {
	return nil
}

func (v *planView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *planView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}

	case "n":
		if v.cursor < len(v.items) {
			return v, v.editNote(v.items[v.cursor])
		}

	case "d":
		if v.cursor < len(v.items) {
			app := v.state.App
			id := v.items[v.cursor].ID
			return v, func() tea.Msg {
				_ = app.Quote.Remove(context.Background(), id)
				return refreshViewMsg{}
			}
		}

	case "c":
		if len(v.items) > 0 {
			return v, v.confirmClear()
		}

	case "r":
		return v, pushView(newRequestView(v.state))
	}
	return v, nil
}

func (v *planView) editNote(item domain.QuoteLineItem) tea.Cmd {
	note := item.Notes
	form := wizardInputText("Note for "+item.Title, "Anything specific to this offering", false, &note)
	app := v.state.App
	return startWizardCmd(v.state, "Note", form, func() tea.Cmd {
		return func() tea.Msg {
			_ = app.Quote.SetNote(context.Background(), item.ID, note)
			return refreshViewMsg{}
		}
	})
}

func (v *planView) confirmClear() tea.Cmd {
	confirmed := false
	form := wizardConfirm(fmt.Sprintf("Remove all %d item(s) from the plan?", len(v.items)), &confirmed)
	app := v.state.App
	return startWizardCmd(v.state, "Clear", form, func() tea.Cmd {
		return func() tea.Msg {
			if confirmed {
				_ = app.Quote.Clear(context.Background())
			}
			return refreshViewMsg{}
		}
	})
}

func (v *planView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if len(v.items) == 0 {
		b.WriteString("  " + formatter.Dim("Your plan is empty. Pick offerings from the catalog.") + "\n")
		return strings.TrimRight(b.String(), "\n")
	}

	for i, item := range v.items {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleRobin.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			titleStyle.Render(formatter.PadRight(item.Title, 34)),
			formatter.PriceTag(item.Price, item.PriceType),
		))
		if item.Notes != "" {
			b.WriteString("      " + formatter.Dim("↳ "+item.Notes) + "\n")
		}
	}

	b.WriteString("\n  " + formatter.TotalsSummary(v.state.App.Quote.Totals()) + "\n")

	return strings.TrimRight(b.String(), "\n")
}
