package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// ---------------------------------------------------
// Activity detail mode
// ---------------------------------------------------

func (m modelTUI) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "q", "enter":
		m.mode = modeGrid

	case " ":
		m.store.ToggleCompleted(m.selectedID)

	case "e":
		if a, ok := m.store.Get(m.selectedID); ok {
			m.form = newEditForm(a)
			m.mode = modeForm
		}

	case "d":
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m modelTUI) viewDetail() string {
	a, ok := m.store.Get(m.selectedID)
	if !ok {
		return m.viewGrid()
	}

	title := a.Title
	if a.Completed {
		title = doneStyle.Render(title)
	}

	var lines []string
	lines = append(lines, bandStyle(a.Color, false, false).Render(" ")+" "+titleStyle.Render(title)+" "+starStyle.Render(strings.Repeat("★", a.Importance)))
	if day, err := timeutil.ParseDateKey(a.Date); err == nil {
		lines = append(lines, day.Format("Monday, January 2, 2006"))
	}

	start, _ := timeutil.TimeToMinutes(a.StartTime)
	end, _ := timeutil.TimeToMinutes(a.EndTime)
	lines = append(lines, timeutil.Clock12(a.StartTime)+" - "+timeutil.Clock12(a.EndTime)+
		" ("+timeutil.MinutesToDuration(end-start)+")")

	lines = append(lines, "")
	if a.Description != "" {
		lines = append(lines, a.Description)
	} else {
		lines = append(lines, mutedStyle.Render("No description provided"))
	}

	lines = append(lines, "")
	if a.Completed {
		lines = append(lines, successStyle.Render("✓ Completed"))
	} else {
		lines = append(lines, mutedStyle.Render("Not completed"))
	}

	lines = append(lines, "", helpStyle.Render("e edit · space toggle done · d delete · esc back"))
	return panelStyle().Render(strings.Join(lines, "\n"))
}
