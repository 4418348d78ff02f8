package model

// Background origin tags.
const (
	TypePreset = "preset"
	TypeCustom = "custom"
)

// BackgroundOption is a selectable background image: a fixed preset or a
// user-added custom entry. Unrelated to Activity.
type BackgroundOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"` // TypePreset or TypeCustom
}
