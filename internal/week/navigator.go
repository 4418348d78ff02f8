// Package week computes the 7-day window the planner displays: a single
// anchor Sunday with previous/next paging and reset-to-today.
package week

import (
	"fmt"
	"time"

	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// Navigator holds the one piece of week state, the anchor. The anchor is
// always a Sunday at local midnight. now is injectable so Reset and the
// today flag are testable.
type Navigator struct {
	anchor time.Time
	now    func() time.Time
}

// New returns a navigator anchored to the week containing now().
// A nil now means time.Now.
func New(now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{anchor: timeutil.WeekAnchor(now()), now: now}
}

// Anchor returns the current anchor Sunday.
func (n *Navigator) Anchor() time.Time { return n.anchor }

// Days returns the 7 contiguous dates starting at the anchor.
func (n *Navigator) Days() [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = timeutil.AddDays(n.anchor, i)
	}
	return days
}

// Prev pages the window one week back and returns the new anchor.
func (n *Navigator) Prev() time.Time {
	n.anchor = timeutil.AddDays(n.anchor, -7)
	return n.anchor
}

// Next pages the window one week forward and returns the new anchor.
func (n *Navigator) Next() time.Time {
	n.anchor = timeutil.AddDays(n.anchor, 7)
	return n.anchor
}

// Reset recomputes the anchor from the current date.
func (n *Navigator) Reset() time.Time {
	n.anchor = timeutil.WeekAnchor(n.now())
	return n.anchor
}

// Range formats the displayed window for the header, collapsing the month
// when both boundary dates share it: "Jun 8 - 14, 2025" versus
// "Jun 29 - Jul 5, 2025".
func (n *Navigator) Range() string {
	start := n.anchor
	end := timeutil.AddDays(start, 6)
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d - %d, %d", start.Format("Jan"), start.Day(), end.Day(), start.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), start.Year())
}

// DayLabel is what the presentation layer needs to paint one day header.
type DayLabel struct {
	Date  time.Time
	Key   string // "YYYY-MM-DD"
	Short string // "Sun"
	Full  string // "Sunday"
	Day   int
	Today bool
}

// Labels derives the 7 day headers, marking today against now().
func (n *Navigator) Labels() [7]DayLabel {
	today := timeutil.KeyOf(n.now())
	var out [7]DayLabel
	for i, d := range n.Days() {
		key := timeutil.KeyOf(d)
		out[i] = DayLabel{
			Date:  d,
			Key:   key,
			Short: d.Format("Mon"),
			Full:  d.Format("Monday"),
			Day:   d.Day(),
			Today: key == today,
		}
	}
	return out
}
