package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/quote"
)

// requestPhase is the visual stage of the request view. The underlying
// lifecycle lives in quote.RequestFlow; phases only shape rendering.
type requestPhase int

const (
	phaseForm requestPhase = iota
	phaseSubmitting
	phaseSuccess
	phaseBooking
	phaseError
)

// deliveredMsg reports the outcome of sending the quote request.
type deliveredMsg struct {
	err error
}

// successElapsedMsg fires when the success screen has been shown long
// enough to hand off to booking.
type successElapsedMsg struct{}

// requestView walks the user from contact entry through delivery to the
// consultation booking hand-off. The selection stays in the plan after a
// successful request so it can be referenced during the consultation.
type requestView struct {
	state   *SharedState
	flow    *quote.RequestFlow
	contact domain.ContactDetails
	form    *huh.Form
	phase   requestPhase
	spin    spinner.Model
	err     error
}

func newRequestView(state *SharedState) *requestView {
	v := &requestView{
		state: state,
		flow:  quote.NewRequestFlow(state.App.Quote.Items(), nil),
	}
	v.form = wizardContactForm(&v.contact)
	v.spin = spinner.New()
	v.spin.Spinner = spinner.Dot
	v.spin.Style = lipgloss.NewStyle().Foreground(formatter.ColorAzure)
	return v
}

func (v *requestView) ID() ViewID    { return ViewRequest }
func (v *requestView) Title() string { return "Request Quote" }

func (v *requestView) ShortHelp() []key.Binding {
	switch v.phase {
	case phaseForm:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	case phaseBooking, phaseError:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "close")),
		}
	}
	return nil
}

func (v *requestView) Init() tea.Cmd {
	if len(v.flow.Items()) == 0 {
		return popView()
	}
	return v.form.Init()
}

func (v *requestView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			v.flow.Dismiss()
			return v, popView()
		}
		switch v.phase {
		case phaseBooking, phaseError:
			if msg.Type == tea.KeyEnter {
				return v, popView()
			}
			return v, nil
		case phaseSubmitting, phaseSuccess:
			// Delivery in progress; only esc is honored.
			return v, nil
		}
		return v.updateForm(msg)

	case spinner.TickMsg:
		if v.phase == phaseSubmitting {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case deliveredMsg:
		if v.phase != phaseSubmitting {
			return v, nil
		}
		if msg.err != nil {
			v.err = msg.err
			v.phase = phaseError
			return v, nil
		}
		v.flow.MarkDelivered()
		v.phase = phaseSuccess
		hold := v.state.App.Config.SuccessHold()
		return v, tea.Tick(hold, func(time.Time) tea.Msg {
			return successElapsedMsg{}
		})

	case successElapsedMsg:
		if v.flow.Finalize() {
			v.phase = phaseBooking
		}
		return v, nil
	}

	if v.phase == phaseForm {
		return v.updateForm(msg)
	}
	return v, nil
}

func (v *requestView) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.startSubmit())
	}

	return v, cmd
}

// startSubmit moves the flow to submitting and kicks off delivery.
func (v *requestView) startSubmit() tea.Cmd {
	started, err := v.flow.Submit(v.contact)
	if err != nil {
		v.err = err
		v.phase = phaseError
		return nil
	}
	if !started {
		return nil
	}
	v.phase = phaseSubmitting
	return tea.Batch(v.spin.Tick, v.deliver())
}

// deliver sends the request and records it locally. The submitter owns
// the pacing: the simulated one holds for the configured delay, the
// webhook one takes as long as the network does.
func (v *requestView) deliver() tea.Cmd {
	app := v.state.App
	payload := v.flow.Payload()
	return func() tea.Msg {
		ctx := context.Background()
		if err := app.Submitter.Submit(ctx, payload); err != nil {
			return deliveredMsg{err: err}
		}
		if err := app.Requests.Create(ctx, payload); err != nil {
			return deliveredMsg{err: err}
		}
		return deliveredMsg{}
	}
}

func (v *requestView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch v.phase {
	case phaseForm:
		b.WriteString("  " + formatter.Dim(v.summaryLine()) + "\n\n")
		b.WriteString(v.form.View())

	case phaseSubmitting:
		b.WriteString("  " + v.spin.View() + " Sending your quote request...\n")

	case phaseSuccess:
		b.WriteString("  " + formatter.StyleRobin.Render("✔ Request sent!") + "\n\n")
		b.WriteString("  " + formatter.Dim("We'll be in touch shortly.") + "\n")

	case phaseBooking:
		b.WriteString("  " + formatter.StyleRobin.Render("✔ Request sent!") + "\n\n")
		b.WriteString("  " + formatter.StyleFg.Render("Lock in a free consultation to walk through your quote:") + "\n")
		b.WriteString("  " + formatter.StyleAzure.Render(v.state.App.Config.BookingURL) + "\n\n")
		b.WriteString("  " + formatter.Dim("Your plan is kept for reference during the consultation.") + "\n")

	case phaseError:
		b.WriteString("  " + formatter.StyleRed.Render("Could not send the request: "+v.err.Error()) + "\n\n")
		b.WriteString("  " + formatter.Dim("Press enter to close and try again.") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *requestView) summaryLine() string {
	items := v.flow.Items()
	totals := quote.ComputeTotals(items)
	plural := "s"
	if len(items) == 1 {
		plural = ""
	}
	return strings.Join([]string{
		formatter.Bold(strconv.Itoa(len(items))) + " offering" + plural,
		formatter.Ringgit(totals.Upfront) + " upfront",
		formatter.Ringgit(totals.Monthly) + " /month",
	}, "  ·  ")
}
