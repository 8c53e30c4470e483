package quote

// Navigation defaults, expressed in rendered document lines. The
// lookahead activates a section slightly before its heading reaches the
// top of the view; the margin keeps the heading clear of any fixed
// header when jumping directly.
const (
	DefaultLookahead    = 300
	DefaultHeaderMargin = 180
)

// Section is one category heading inside the rendered catalog document.
type Section struct {
	ID     string
	Offset int
}

// Navigator tracks which category is active while the catalog scrolls,
// and resolves direct jumps. An explicit Select wins immediately; Spy
// reconciles on subsequent scroll movement.
type Navigator struct {
	sections  []Section
	lookahead int
	margin    int
	active    string
}

// NewNavigator builds a navigator over the ordered sections. Non-positive
// lookahead or margin fall back to the defaults. The first section starts
// active.
func NewNavigator(sections []Section, lookahead, margin int) *Navigator {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if margin <= 0 {
		margin = DefaultHeaderMargin
	}
	n := &Navigator{
		sections:  sections,
		lookahead: lookahead,
		margin:    margin,
	}
	if len(sections) > 0 {
		n.active = sections[0].ID
	}
	return n
}

// Active returns the id of the currently active section.
func (n *Navigator) Active() string {
	return n.active
}

// Select activates the section immediately and returns the scroll target
// for the jump: the section offset minus the header margin, clamped at
// the top of the document. Unknown ids leave the navigator untouched.
func (n *Navigator) Select(id string) (int, bool) {
	for _, s := range n.sections {
		if s.ID == id {
			n.active = id
			target := s.Offset - n.margin
			if target < 0 {
				target = 0
			}
			return target, true
		}
	}
	return 0, false
}

// Spy reconciles the active section with the scroll position: scanning
// bottom-up, the last section whose offset is at or above the view wins.
// Reports whether the active section changed.
func (n *Navigator) Spy(scrollPos int) bool {
	for i := len(n.sections) - 1; i >= 0; i-- {
		s := n.sections[i]
		if s.Offset <= scrollPos+n.lookahead {
			changed := n.active != s.ID
			n.active = s.ID
			return changed
		}
	}
	return false
}

// SetOffsets replaces the section offsets after a relayout, keeping the
// active selection when its section still exists.
func (n *Navigator) SetOffsets(sections []Section) {
	n.sections = sections
	for _, s := range sections {
		if s.ID == n.active {
			return
		}
	}
	if len(sections) > 0 {
		n.active = sections[0].ID
	} else {
		n.active = ""
	}
}
