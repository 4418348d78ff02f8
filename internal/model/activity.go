// Package model defines the planner's domain entities and the creation-time
// validation rules that guard them.
package model

// Activity is the sole scheduling entity: a titled, colored, time-boxed,
// completable calendar entry for one day. The json tags are the persisted
// serialization contract; round-tripping must reproduce an equal record.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`      // "YYYY-MM-DD", immutable after creation
	StartTime   string `json:"startTime"` // "HH:mm", 24-hour
	EndTime     string `json:"endTime"`   // strictly after StartTime, same day
	Color       string `json:"color"`
	Importance  int    `json:"importance"` // 1..3, 3 = most important
	Completed   bool   `json:"completed"`
}

// Colors is the fixed palette activities draw from. Visual identity only.
var Colors = []string{
	"#3B82F6", // blue
	"#EF4444", // red
	"#10B981", // green
	"#F59E0B", // yellow
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
	"#6366F1", // indigo
}
