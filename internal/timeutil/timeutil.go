// Package timeutil holds the pure calendar/clock conversions the planner is
// built on: "HH:mm" clock strings, "YYYY-MM-DD" date keys and the Sunday
// week-anchor rule. No state, no timezone logic beyond the local clock.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converts an "HH:mm" clock string (24-hour, minute
// granularity) to minutes since midnight. Hours must be 0-23 and minutes
// 0-59; anything else is a caller contract violation and is reported as an
// error rather than guessed at.
func TimeToMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q: %w", clock, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return h*60 + m, nil
}

// MinutesToClock is the inverse of TimeToMinutes, zero-padded.
func MinutesToClock(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// MinutesToDuration renders a duration in minutes as a short human string:
// zero hours shows only minutes ("45m"), zero minutes only hours ("2h"),
// otherwise both ("1h 30m").
func MinutesToDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Clock12 renders an "HH:mm" clock string in 12-hour form, e.g. "3:05 PM".
// Malformed input is returned unchanged.
func Clock12(clock string) string {
	total, err := TimeToMinutes(clock)
	if err != nil {
		return clock
	}
	h, m := total/60, total%60
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, ampm)
}

// DateKey builds a "YYYY-MM-DD" key from parts. month0 is zero-based on
// input (January = 0) and emitted one-based, matching the calendar keys the
// planner persists.
func DateKey(year, month0, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// KeyOf returns the "YYYY-MM-DD" key for a concrete date.
func KeyOf(t time.Time) string {
	return DateKey(t.Year(), int(t.Month())-1, t.Day())
}

// ParseDateKey parses a "YYYY-MM-DD" key into a local-midnight date.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", key, err)
	}
	return t, nil
}

// WeekAnchor returns the Sunday on or before ref, truncated to midnight in
// ref's location. This is the canonical start-of-week rule everywhere a week
// must be identified.
func WeekAnchor(ref time.Time) time.Time {
	d := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// AddDays shifts a date by n calendar days with standard month/year rollover.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// CurrentHourKey returns the "HH:00" slot containing now, used for the
// live-clock highlight. Pure read-time computation, never a timer.
func CurrentHourKey(now time.Time) string {
	return fmt.Sprintf("%02d:00", now.Hour())
}
