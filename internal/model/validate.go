package model

import (
	"strings"

	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// Draft is an activity payload before the store assigns an id.
type Draft struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Color       string
	Importance  int
	Completed   bool
}

// ValidationError names the first field that failed a creation-time rule.
// It is a signal back to the caller, never a crash; state is left untouched
// by whoever receives it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate applies the creation-time rules: non-empty title, a well-formed
// date, well-formed clock times with end strictly after start, and
// importance within 1..3. Pure; how the failure is surfaced is the
// presentation layer's business.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if d.Date == "" {
		return &ValidationError{Field: "date", Reason: "must be selected"}
	}
	if _, err := timeutil.ParseDateKey(d.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	start, err := timeutil.TimeToMinutes(d.StartTime)
	if err != nil {
		return &ValidationError{Field: "startTime", Reason: "must be HH:mm"}
	}
	end, err := timeutil.TimeToMinutes(d.EndTime)
	if err != nil {
		return &ValidationError{Field: "endTime", Reason: "must be HH:mm"}
	}
	if end <= start {
		return &ValidationError{Field: "endTime", Reason: "must be after start time"}
	}
	if d.Importance < 1 || d.Importance > 3 {
		return &ValidationError{Field: "importance", Reason: "must be 1, 2 or 3"}
	}
	return nil
}

// Activity materializes the draft as a stored record with the given id.
// Title and description are trimmed the way they are displayed.
func (d Draft) Activity(id string) Activity {
	return Activity{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Color:       d.Color,
		Importance:  d.Importance,
		Completed:   d.Completed,
	}
}
