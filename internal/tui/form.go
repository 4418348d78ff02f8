package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/hebdo/internal/model"
)

// form is the shared create/edit surface. Creation exposes every field;
// editing only title, description, color and importance, matching the
// detail panel of the original planner (date and times are immutable after
// creation).
type form struct {
	editing   bool
	editBase  model.Activity // record being edited, for the immutable fields
	labels    []string
	inputs    []textinput.Model
	colorIdx  int
	starIdx   int // 0-based importance
	focus     int // 0..len(inputs)+1; inputs first, then color row, stars row
	errMsg    string
}

func newCreateForm(dateKey string) form {
	f := form{
		labels: []string{"Title", "Description", "Date", "Start", "End"},
	}
	defaults := []string{"", "", dateKey, "09:00", "10:00"}
	placeholders := []string{"Enter activity title...", "Add activity description...", "YYYY-MM-DD", "HH:mm", "HH:mm"}
	for i := range f.labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 200
		ti.Placeholder = placeholders[i]
		ti.SetValue(defaults[i])
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].Focus()
	return f
}

func newEditForm(a model.Activity) form {
	f := form{
		editing:  true,
		editBase: a,
		labels:   []string{"Title", "Description"},
	}
	for _, v := range []string{a.Title, a.Description} {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 200
		ti.SetValue(v)
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].CursorEnd()
	f.inputs[0].Focus()
	for i, c := range model.Colors {
		if c == a.Color {
			f.colorIdx = i
		}
	}
	if a.Importance >= 1 && a.Importance <= 3 {
		f.starIdx = a.Importance - 1
	}
	return f
}

func (f *form) maxFocus() int { return len(f.inputs) + 1 }

func (f *form) setFocus(i int) {
	if i < 0 {
		i = f.maxFocus()
	}
	if i > f.maxFocus() {
		i = 0
	}
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (m modelTUI) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "esc":
			m.mode = modeGrid
			return m, nil

		case "tab", "down":
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.form.setFocus(m.form.focus - 1)
			return m, nil

		case "left", "right":
			delta := 1
			if key.String() == "left" {
				delta = -1
			}
			switch m.form.focus {
			case len(m.form.inputs): // color row
				m.form.colorIdx = (m.form.colorIdx + delta + len(model.Colors)) % len(model.Colors)
				return m, nil
			case len(m.form.inputs) + 1: // stars row
				m.form.starIdx = (m.form.starIdx + delta + 3) % 3
				return m, nil
			}

		case "enter":
			if m.form.focus < m.form.maxFocus() {
				m.form.setFocus(m.form.focus + 1)
				return m, nil
			}
			return m.submitForm()
		}
	}

	if m.form.focus < len(m.form.inputs) {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m modelTUI) submitForm() (tea.Model, tea.Cmd) {
	f := &m.form

	if f.editing {
		updated := f.editBase
		updated.Title = strings.TrimSpace(f.inputs[0].Value())
		updated.Description = strings.TrimSpace(f.inputs[1].Value())
		updated.Color = model.Colors[f.colorIdx]
		updated.Importance = f.starIdx + 1
		if updated.Title == "" {
			f.errMsg = "title: must not be empty"
			return m, nil
		}
		m.store.Update(updated)
		m.status = "activity updated"
		m.mode = modeGrid
		return m, nil
	}

	draft := model.Draft{
		Title:       f.inputs[0].Value(),
		Description: f.inputs[1].Value(),
		Date:        strings.TrimSpace(f.inputs[2].Value()),
		StartTime:   strings.TrimSpace(f.inputs[3].Value()),
		EndTime:     strings.TrimSpace(f.inputs[4].Value()),
		Color:       model.Colors[f.colorIdx],
		Importance:  f.starIdx + 1,
	}
	if _, err := m.store.Create(draft); err != nil {
		f.errMsg = err.Error()
		return m, nil
	}
	m.status = "activity created"
	m.mode = modeGrid
	return m, nil
}

func (m modelTUI) viewForm() string {
	f := m.form

	heading := "Create New Activity"
	if f.editing {
		heading = "Edit Activity"
	}

	var lines []string
	lines = append(lines, titleStyle.Render(heading))
	if f.errMsg != "" {
		lines = append(lines, errorStyle.Render(f.errMsg))
	}
	lines = append(lines, "")

	for i, label := range f.labels {
		marker := "  "
		if f.focus == i {
			marker = selectedStyle.Render("» ")
		}
		lines = append(lines, marker+label)
		lines = append(lines, "  "+f.inputs[i].View())
	}

	// Color row.
	marker := "  "
	if f.focus == len(f.inputs) {
		marker = selectedStyle.Render("» ")
	}
	var swatches []string
	for i, c := range model.Colors {
		s := bandStyle(c, false, false).Render("  ")
		if i == f.colorIdx {
			s = bandStyle(c, false, true).Render("··")
		}
		swatches = append(swatches, s)
	}
	lines = append(lines, marker+"Color", "  "+strings.Join(swatches, " "))

	// Importance row.
	marker = "  "
	if f.focus == len(f.inputs)+1 {
		marker = selectedStyle.Render("» ")
	}
	lines = append(lines, marker+"Importance", "  "+starStyle.Render(strings.Repeat("★", f.starIdx+1))+mutedStyle.Render(strings.Repeat("☆", 2-f.starIdx)))

	lines = append(lines, "", helpStyle.Render("tab next field · ←→ pick color/stars · enter save · esc cancel"))
	return panelStyle().Render(strings.Join(lines, "\n"))
}
