// Package layout maps a day's activities into vertical pixel bands for a
// fixed visible-hour window. It is pure geometry: the presentation layer
// decides how pixels become screen cells.
package layout

import (
	"fmt"

	"github.com/Makepad-fr/hebdo/internal/model"
	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// Viewport is the coarse display-size class deciding the pixel-per-hour
// scale.
type Viewport int

const (
	Full    Viewport = iota // wide displays
	Compact                 // narrow displays
)

// HourHeight returns the pixel height of one hour row for the viewport.
func (v Viewport) HourHeight() float64 {
	if v == Compact {
		return 48
	}
	return 64
}

// ViewportFromString maps a config value to a viewport class, defaulting to
// Full on anything unrecognized.
func ViewportFromString(s string) Viewport {
	if s == "compact" {
		return Compact
	}
	return Full
}

// Config fixes the visible-hour window and the legibility floors.
type Config struct {
	StartHour int // first labeled hour, inclusive
	EndHour   int // last labeled hour, inclusive

	// MinBandHeight keeps a very short activity clickable/readable.
	MinBandHeight float64
	// DetailThreshold is the density policy: at or below this height the
	// secondary time-range line is suppressed and only the title shows.
	DetailThreshold float64
}

// Default is the planner's reference window: 06:00 through 23:00, a 20px
// band floor and a 30px detail threshold.
func Default() Config {
	return Config{StartHour: 6, EndHour: 23, MinBandHeight: 20, DetailThreshold: 30}
}

// Normalize clamps a config built from user input back to sane values.
func (c *Config) Normalize() {
	if c.StartHour < 0 || c.StartHour > 23 {
		c.StartHour = 6
	}
	if c.EndHour < 0 || c.EndHour > 23 {
		c.EndHour = 23
	}
	if c.EndHour <= c.StartHour {
		c.StartHour, c.EndHour = 6, 23
	}
	if c.MinBandHeight <= 0 {
		c.MinBandHeight = 20
	}
	if c.DetailThreshold <= 0 {
		c.DetailThreshold = 30
	}
}

// Band is the vertical pixel rectangle an activity occupies in its day
// column: offset from the top of the hour grid and height.
type Band struct {
	Activity      model.Activity
	Top           float64
	Height        float64
	ShowTimeRange bool
}

// Hours lists the labeled hour keys ("06:00" ... "23:00") for painting the
// grid rows.
func (c Config) Hours() []string {
	out := make([]string, 0, c.EndHour-c.StartHour+1)
	for h := c.StartHour; h <= c.EndHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
	}
	return out
}

// GridHeight is the total pixel height of the hour grid.
func (c Config) GridHeight(v Viewport) float64 {
	return float64(len(c.Hours())) * v.HourHeight()
}

// Compute maps each activity to its band, in input order. Activities with
// intersecting time ranges are positioned independently and may collide
// visually; overlap resolution is an accepted limitation of this engine.
// Activities with malformed clock strings are skipped.
func (c Config) Compute(activities []model.Activity, v Viewport) []Band {
	bands := make([]Band, 0, len(activities))
	windowStart := c.StartHour * 60
	hourHeight := v.HourHeight()
	for _, a := range activities {
		start, err := timeutil.TimeToMinutes(a.StartTime)
		if err != nil {
			continue
		}
		end, err := timeutil.TimeToMinutes(a.EndTime)
		if err != nil {
			continue
		}
		top := float64(start-windowStart) / 60 * hourHeight
		height := float64(end-start) / 60 * hourHeight
		if height < c.MinBandHeight {
			height = c.MinBandHeight
		}
		bands = append(bands, Band{
			Activity:      a,
			Top:           top,
			Height:        height,
			ShowTimeRange: height > c.DetailThreshold,
		})
	}
	return bands
}
