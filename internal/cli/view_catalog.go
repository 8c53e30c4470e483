package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jxt-gindran/jxingwebsite/internal/cli/formatter"
	"github.com/jxt-gindran/jxingwebsite/internal/domain"
	"github.com/jxt-gindran/jxingwebsite/internal/quote"
)

// catalogRow is one rendered line of the catalog list. Category headers
// and spacers are not selectable; the cursor only rests on offerings.
type catalogRow struct {
	spacer   bool
	header   bool
	category *domain.ServiceCategory
	sub      domain.SubService
}

// catalogView is the home view: every category and offering in one
// scrollable list, with the active category tracked from the scroll
// position the way the pricing page highlights its section nav.
type catalogView struct {
	state  *SharedState
	rows   []catalogRow
	nav    *quote.Navigator
	cursor int // index into rows, always an offering row
	top    int // first visible row
}

func newCatalogView(state *SharedState) *catalogView {
	v := &catalogView{state: state}
	v.buildRows()
	v.cursor = v.nextOffering(-1)
	return v
}

func (v *catalogView) buildRows() {
	var rows []catalogRow
	var sections []quote.Section

	for i := range v.state.App.Catalog {
		cat := &v.state.App.Catalog[i]
		if len(rows) > 0 {
			rows = append(rows, catalogRow{spacer: true})
		}
		sections = append(sections, quote.Section{ID: cat.ID, Offset: len(rows)})
		rows = append(rows, catalogRow{header: true, category: cat})
		for _, sub := range cat.SubServices {
			rows = append(rows, catalogRow{category: cat, sub: sub})
		}
	}

	v.rows = rows
	// Row-granularity offsets need a tight lookahead and no margin; the
	// page-sized defaults are tuned for pixel offsets.
	v.nav = quote.NewNavigator(sections, 1, 1)
}

func (v *catalogView) ID() ViewID    { return ViewCatalog }
func (v *catalogView) Title() string { return "Catalog" }

func (v *catalogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[ ]", "category")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "plan")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "request")),
	}
}

func (v *catalogView) Init() tea.Cmd {
	return nil
}

func (v *catalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *catalogView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if prev := v.prevOffering(v.cursor); prev >= 0 {
			v.cursor = prev
			v.scrollToCursor()
		}

	case "down", "j":
		if next := v.nextOffering(v.cursor); next >= 0 {
			v.cursor = next
			v.scrollToCursor()
		}

	case "[":
		v.jumpCategory(-1)

	case "]":
		v.jumpCategory(+1)

	case " ":
		if row := v.currentRow(); row != nil {
			return v, v.toggle(row)
		}

	case "enter":
		if row := v.currentRow(); row != nil {
			return v, pushView(newOfferingView(v.state, row.category, row.sub))
		}

	case "v":
		return v, pushView(newPlanView(v.state))

	case "r":
		return v, pushView(newRequestView(v.state))
	}
	return v, nil
}

func (v *catalogView) toggle(row *catalogRow) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		_, _ = app.Quote.Toggle(context.Background(), row.category, row.sub)
		return refreshViewMsg{}
	}
}

// jumpCategory moves the active section by delta and scrolls to it.
func (v *catalogView) jumpCategory(delta int) {
	cats := v.state.App.Catalog
	idx := -1
	for i := range cats {
		if cats[i].ID == v.nav.Active() {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(cats) {
		return
	}
	// Select wins over the spy until the next scroll movement.
	if target, ok := v.nav.Select(cats[idx].ID); ok {
		v.top = v.clampTop(target)
		// Land the cursor on the first offering of the section.
		for i, row := range v.rows {
			if !row.spacer && !row.header && row.category.ID == cats[idx].ID {
				v.cursor = i
				break
			}
		}
	}
}

func (v *catalogView) currentRow() *catalogRow {
	if v.cursor >= 0 && v.cursor < len(v.rows) {
		row := &v.rows[v.cursor]
		if !row.spacer && !row.header {
			return row
		}
	}
	return nil
}

func (v *catalogView) nextOffering(from int) int {
	for i := from + 1; i < len(v.rows); i++ {
		if !v.rows[i].spacer && !v.rows[i].header {
			return i
		}
	}
	return -1
}

func (v *catalogView) prevOffering(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !v.rows[i].spacer && !v.rows[i].header {
			return i
		}
	}
	return -1
}

func (v *catalogView) clampTop(top int) int {
	maxTop := len(v.rows) - v.state.ContentHeight()
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}

// scrollToCursor keeps the cursor row visible. When the view actually
// scrolls, the active category is re-derived from the new position.
func (v *catalogView) scrollToCursor() {
	before := v.top
	h := v.state.ContentHeight()
	if v.cursor < v.top {
		v.top = v.cursor
		// Pull the category header into view when sitting on its first offering.
		if v.top > 0 && v.rows[v.top-1].header {
			v.top--
		}
	}
	if v.cursor >= v.top+h {
		v.top = v.cursor - h + 1
	}
	v.top = v.clampTop(v.top)
	if v.top != before {
		v.nav.Spy(v.top)
	}
}

func (v *catalogView) View() string {
	var b strings.Builder

	h := v.state.ContentHeight()
	end := v.top + h
	if end > len(v.rows) {
		end = len(v.rows)
	}

	for i := v.top; i < end; i++ {
		row := v.rows[i]
		switch {
		case row.spacer:
			b.WriteString("\n")

		case row.header:
			marker := "  "
			style := formatter.StyleDim
			if row.category.ID == v.nav.Active() {
				marker = formatter.StyleAzure.Render("▍ ")
				style = formatter.StyleHeader
			}
			b.WriteString(marker + style.Render(strings.ToUpper(row.category.Title)) + "\n")

		default:
			cursor := "  "
			titleStyle := formatter.StyleFg
			if i == v.cursor {
				cursor = formatter.StyleRobin.Render("▸ ")
				titleStyle = formatter.StyleBold
			}

			mark := formatter.Dim("·")
			if v.state.App.Quote.Has(domain.LineItemID(row.category.ID, row.sub.ID)) {
				mark = formatter.StyleRobin.Render("✔")
			}

			b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
				cursor,
				mark,
				titleStyle.Render(formatter.PadRight(row.sub.Title, 34)),
				formatter.PriceTag(row.sub.Price, row.sub.PriceType),
			))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
