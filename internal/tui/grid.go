package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/hebdo/internal/layout"
	"github.com/Makepad-fr/hebdo/internal/store"
	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// bandRef is a layout band translated from pixel space to grid rows.
type bandRef struct {
	band layout.Band
	row  int
	span int
}

// dayBands computes the day's bands and maps them onto hour rows. One grid
// row per labeled hour; the engine stays pixel-native.
func dayBands(st *store.Store, lay layout.Config, view layout.Viewport, dateKey string) []bandRef {
	bands := lay.Compute(st.ByDate(dateKey), view)
	hourHeight := view.HourHeight()
	nRows := len(lay.Hours())

	refs := make([]bandRef, 0, len(bands))
	for _, b := range bands {
		row := int(b.Top/hourHeight + 0.5)
		span := int(b.Height/hourHeight + 0.5)
		if span < 1 {
			span = 1
		}
		if row < 0 {
			row = 0
		}
		if row > nRows-1 {
			row = nRows - 1
		}
		if row+span > nRows {
			span = nRows - row
		}
		refs = append(refs, bandRef{band: b, row: row, span: span})
	}
	return refs
}

const gutterWidth = 6

func (m modelTUI) viewGrid() string {
	labels := m.weeks.Labels()
	hours := m.lay.Hours()
	nRows := len(hours)

	width := m.width
	if width <= 0 {
		width = 100
	}
	colWidth := (width - gutterWidth - 8) / 7
	if colWidth < 9 {
		colWidth = 9
	}

	// Header: week range and the active background.
	header := titleStyle.Render("Weekly Planner") + "  " + m.weeks.Range() +
		"  " + mutedStyle.Render("bg: "+m.bgs.Selected().Name)

	// Day columns, pre-rendered row by row.
	cols := make([][]string, 7)
	for d := range cols {
		cols[d] = make([]string, nRows)
	}
	currentHour := timeutil.CurrentHourKey(m.now())

	for d, label := range labels {
		refs := dayBands(m.store, m.lay, m.view, label.Key)
		for i, ref := range refs {
			selected := d == m.dayIdx && i == m.actIdx
			style := bandStyle(ref.band.Activity.Color, ref.band.Activity.Completed, selected)
			for r := ref.row; r < ref.row+ref.span && r < nRows; r++ {
				text := ""
				switch {
				case r == ref.row:
					text = ref.band.Activity.Title + " " + strings.Repeat("★", ref.band.Activity.Importance)
					if ref.band.Activity.Completed {
						text = "✓ " + text
					}
				case r == ref.row+1 && ref.band.ShowTimeRange:
					text = ref.band.Activity.StartTime + " - " + ref.band.Activity.EndTime
				}
				cols[d][r] = style.Render(clip(text, colWidth))
			}
		}
		// Empty cells, with the live-clock highlight on today's column.
		for r := 0; r < nRows; r++ {
			if cols[d][r] != "" {
				continue
			}
			if label.Today && hours[r] == currentHour {
				cols[d][r] = nowStyle.Render(clip(strings.Repeat("·", colWidth), colWidth))
			} else {
				cols[d][r] = clip("", colWidth)
			}
		}
	}

	// Day header line.
	headCells := make([]string, 0, 8)
	headCells = append(headCells, clip("", gutterWidth))
	for d, label := range labels {
		text := fmt.Sprintf("%s %d", label.Short, label.Day)
		cell := clip(text, colWidth)
		switch {
		case d == m.dayIdx:
			cell = selectedStyle.Render(cell)
		case label.Today:
			cell = todayStyle.Render(cell)
		}
		headCells = append(headCells, cell)
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(strings.Join(headCells, " ") + "\n")
	for r := 0; r < nRows; r++ {
		cells := make([]string, 0, 8)
		cells = append(cells, mutedStyle.Render(clip(hours[r], gutterWidth)))
		for d := 0; d < 7; d++ {
			cells = append(cells, cols[d][r])
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	if m.status != "" {
		b.WriteString(successStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("←→ day · ↑↓ activity · p/n week · t today · a add · enter details · space done · d delete · b background · q quit"))
	return b.String()
}

// clip pads or truncates s to exactly w cells, marking truncation.
func clip(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		if w <= 1 {
			return string(r[:w])
		}
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}
