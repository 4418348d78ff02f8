package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/hebdo/internal/background"
	"github.com/Makepad-fr/hebdo/internal/model"
)

// bgItem adapts a BackgroundOption to bubbles/list.Item.
type bgItem struct {
	opt      model.BackgroundOption
	selected bool
}

func (i bgItem) Title() string {
	if i.selected {
		return "✔ " + i.opt.Name
	}
	return i.opt.Name
}

func (i bgItem) Description() string {
	if i.opt.Type == model.TypeCustom {
		return "custom · " + i.opt.URL
	}
	return i.opt.URL
}

func (i bgItem) FilterValue() string { return i.opt.Name }

func newBackgroundList(bgs *background.Catalog) list.Model {
	opts := bgs.Options()
	items := make([]list.Item, 0, len(opts))
	for _, opt := range opts {
		items = append(items, bgItem{opt: opt, selected: opt.ID == bgs.Selected().ID})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Backgrounds"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("background", "backgrounds")
	return l
}

// ---------------------------------------------------
// Background picker mode
// ---------------------------------------------------

func (m modelTUI) updateBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.mode = modeGrid
			return m, nil

		case "enter":
			if item, ok := m.bgList.SelectedItem().(bgItem); ok {
				m.bgs.Select(item.opt.ID)
				m.status = "background set to " + item.opt.Name
				m.mode = modeGrid
			}
			return m, nil

		case "x":
			if item, ok := m.bgList.SelectedItem().(bgItem); ok && item.opt.Type == model.TypeCustom {
				m.bgs.DeleteCustom(item.opt.ID)
				m.bgList = newBackgroundList(m.bgs)
				if m.width > 0 {
					m.bgList.SetSize(m.width-4, m.height-6)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.bgList, cmd = m.bgList.Update(msg)
	return m, cmd
}

func (m modelTUI) viewBackground() string {
	return m.bgList.View() + "\n" + helpStyle.Render("enter select · x delete custom · esc back")
}
