package cli

import (
	"testing"

	"github.com/jxt-gindran/jxingwebsite/internal/teatest"
)

// TestDriver wraps teatest.Driver with app-specific inspection methods.
// It exposes appModel internals (view stack, shared state) that the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 32))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// newSizedDriver builds a drained driver with a specific terminal size,
// for tests that depend on scrolling behavior.
func newSizedDriver(t *testing.T, m appModel, w, h int) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, m, teatest.WithSize(w, h))
	d.DrainInit()
	return d
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app has signaled a quit, either via the
// model's own flag or a tea.QuitMsg caught by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// activeCatalog returns the catalog view when it is on top of the stack.
func (d *TestDriver) activeCatalog(t *testing.T) *catalogView {
	t.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*catalogView)
	if !ok {
		t.Fatalf("active view is %T, want *catalogView", m.activeView())
	}
	return v
}

// activeRequest returns the request view when it is on top of the stack.
func (d *TestDriver) activeRequest(t *testing.T) *requestView {
	t.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*requestView)
	if !ok {
		t.Fatalf("active view is %T, want *requestView", m.activeView())
	}
	return v
}
