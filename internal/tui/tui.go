// Package tui is the interactive weekly view: a bubbletea program painting
// the calendar grid from the core components and issuing commands back to
// the store. All scheduling logic stays out of this package.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/hebdo/internal/background"
	"github.com/Makepad-fr/hebdo/internal/layout"
	"github.com/Makepad-fr/hebdo/internal/store"
	"github.com/Makepad-fr/hebdo/internal/week"
)

// Options carries the wired core components into the program.
type Options struct {
	Store      *store.Store
	Weeks      *week.Navigator
	Layout     layout.Config
	Viewport   layout.Viewport
	Background *background.Catalog

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

type mode int

const (
	modeGrid mode = iota
	modeDetail
	modeForm
	modeConfirmDelete
	modeBackground
)

type modelTUI struct {
	store *store.Store
	weeks *week.Navigator
	lay   layout.Config
	view  layout.Viewport
	bgs   *background.Catalog
	now   func() time.Time

	mode mode

	// Grid cursor: day column and activity within that day.
	dayIdx int
	actIdx int

	// Detail / delete target.
	selectedID string

	form   form
	bgList list.Model

	status        string
	width, height int
}

// Run starts the interactive weekly view and blocks until the user quits.
func Run(opt Options) error {
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	m := modelTUI{
		store: opt.Store,
		weeks: opt.Weeks,
		lay:   opt.Layout,
		view:  opt.Viewport,
		bgs:   opt.Background,
		now:   now,
	}
	m.dayIdx = int(now().Weekday())
	m.bgList = newBackgroundList(opt.Background)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.bgList.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeBackground:
		return m.updateBackground(msg)
	case modeDetail:
		return m.updateDetail(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateGrid(msg)
}

func (m modelTUI) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeBackground:
		return m.viewBackground()
	case modeDetail:
		return m.viewDetail()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}
	return m.viewGrid()
}

// ---------------------------------------------------
// Grid mode
// ---------------------------------------------------

func (m modelTUI) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.dayIdx > 0 {
			m.dayIdx--
			m.actIdx = 0
		}
	case "right", "l":
		if m.dayIdx < 6 {
			m.dayIdx++
			m.actIdx = 0
		}
	case "up", "k":
		if m.actIdx > 0 {
			m.actIdx--
		}
	case "down", "j":
		if m.actIdx < len(m.selectedDayActivities())-1 {
			m.actIdx++
		}

	case "p", "shift+left":
		m.weeks.Prev()
		m.actIdx = 0
	case "n", "shift+right":
		m.weeks.Next()
		m.actIdx = 0
	case "t":
		m.weeks.Reset()
		m.dayIdx = int(m.now().Weekday())
		m.actIdx = 0

	case "a":
		m.form = newCreateForm(m.weeks.Labels()[m.dayIdx].Key)
		m.mode = modeForm

	case "enter":
		if id, ok := m.selectedActivityID(); ok {
			m.selectedID = id
			m.mode = modeDetail
		}

	case " ":
		if id, ok := m.selectedActivityID(); ok {
			m.store.ToggleCompleted(id)
		}

	case "d":
		if id, ok := m.selectedActivityID(); ok {
			m.selectedID = id
			m.mode = modeConfirmDelete
		}

	case "b":
		m.bgList = newBackgroundList(m.bgs)
		if m.width > 0 {
			m.bgList.SetSize(m.width-4, m.height-6)
		}
		m.mode = modeBackground
	}
	return m, nil
}

func (m modelTUI) selectedDayActivities() []bandRef {
	return dayBands(m.store, m.lay, m.view, m.weeks.Labels()[m.dayIdx].Key)
}

func (m modelTUI) selectedActivityID() (string, bool) {
	bands := m.selectedDayActivities()
	if m.actIdx < 0 || m.actIdx >= len(bands) {
		return "", false
	}
	return bands[m.actIdx].band.Activity.ID, true
}

// ---------------------------------------------------
// Delete confirmation
// ---------------------------------------------------

func (m modelTUI) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "enter":
		m.store.Delete(m.selectedID)
		m.status = "activity deleted"
		m.actIdx = 0
		m.mode = modeGrid
	case "n", "esc", "q":
		m.mode = modeGrid
	}
	return m, nil
}

func (m modelTUI) viewConfirmDelete() string {
	a, ok := m.store.Get(m.selectedID)
	if !ok {
		return m.viewGrid()
	}
	body := titleStyle.Render("Delete Activity") + "\n\n" +
		"Are you sure you want to delete \"" + a.Title + "\"?\n" +
		errorStyle.Render("This cannot be undone.") + "\n\n" +
		helpStyle.Render("y delete · n cancel")
	return panelStyle().Render(body)
}
