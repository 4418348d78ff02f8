// Package background manages the selectable background images: a fixed
// preset catalog plus user-added custom entries, with the current choice
// mirrored to the key-value store.
package background

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Makepad-fr/hebdo/internal/model"
	"github.com/Makepad-fr/hebdo/internal/store"
)

// Persistence keys.
const (
	SelectedKey = "weekly-planner-background"
	CustomKey   = "weekly-planner-custom-backgrounds"
)

// Presets is the fixed read-only catalog.
var Presets = []model.BackgroundOption{
	{ID: "mountain1", Name: "Mountain Peak", URL: "https://upload.wikimedia.org/wikipedia/commons/6/60/Matterhorn_from_Domh%C3%BCtte_-_2.jpg", Type: model.TypePreset},
	{ID: "beach1", Name: "Tropical Beach", URL: "https://muralsyourway.vtexassets.com/arquivos/ids/236286/Tropical-Beach-At-Sunset-Mural-Wallpaper.jpg?v=638164405127130000", Type: model.TypePreset},
	{ID: "forest1", Name: "Misty Forest", URL: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRHckoDKARmfMFPL85870M3IPfkqdDulUscwg&s", Type: model.TypePreset},
	{ID: "lake1", Name: "Mountain Lake", URL: "https://www.rockymountaineer.com/sites/default/files/bp_summary_image/Emerald%20Lake%20-%20Credit%20Suran%20Gaw%2C%20Adobe%20Stock_1_0.jpeg", Type: model.TypePreset},
	{ID: "sunset1", Name: "Desert Sunset", URL: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQbtKs_MrPl3TyM16oBfevVcLKwG4gE32aE5Q&s", Type: model.TypePreset},
	{ID: "field1", Name: "Lavender Field", URL: "https://media.istockphoto.com/id/480975194/photo/sunrise-and-dramatic-clouds-over-lavender-field.jpg?s=612x612&w=0&k=20&c=9oOUcyMJrutCRxdOp0HYUz0avbuT4akmwKvL-aa_QkI=", Type: model.TypePreset},
	{ID: "ocean1", Name: "Ocean Cliffs", URL: "https://images.stockcake.com/public/4/a/0/4a0df6dc-9bc1-4045-b38a-21714cb3b965_large/cliffside-ocean-waves-stockcake.jpg", Type: model.TypePreset},
	{ID: "aurora1", Name: "Northern Lights", URL: "https://res.cloudinary.com/icelandtours/g_auto,f_auto,c_auto,w_3840,q_auto:good/northern_lights_above_glacier_lagoon_v2osk_unsplash_7d39ca647f.jpg", Type: model.TypePreset},
	{ID: "valley1", Name: "Green Valley", URL: "https://static.vecteezy.com/system/resources/thumbnails/053/729/892/small_2x/serene-green-valley-river-landscape-sunrise-nature-scene-photo.jpeg", Type: model.TypePreset},
	{ID: "waterfall1", Name: "Waterfall", URL: "https://media.cntraveler.com/photos/571945e380cf3e034f974b7d/4:3/w_2048,h_1536,c_limit/waterfalls-Seljalandsfoss-GettyImages-457381095.jpg", Type: model.TypePreset},
}

// Catalog tracks the selected background and the custom entries. Mirroring
// is best-effort; a failed save never disturbs the in-memory choice.
type Catalog struct {
	kv       store.KV
	selected model.BackgroundOption
	customs  []model.BackgroundOption
}

// New loads the persisted selection and custom list from kv, degrading to
// the first preset and an empty custom list on any load failure.
func New(kv store.KV) *Catalog {
	c := &Catalog{kv: kv, selected: Presets[0]}
	if kv == nil {
		return c
	}
	if blob, found, err := kv.Load(SelectedKey); err == nil && found {
		var sel model.BackgroundOption
		if err := json.Unmarshal(blob, &sel); err == nil && sel.ID != "" {
			c.selected = sel
		}
	}
	if blob, found, err := kv.Load(CustomKey); err == nil && found {
		var customs []model.BackgroundOption
		if err := json.Unmarshal(blob, &customs); err == nil {
			c.customs = customs
		}
	}
	return c
}

// Selected returns the current background.
func (c *Catalog) Selected() model.BackgroundOption { return c.selected }

// Options lists every selectable background, presets first then customs.
func (c *Catalog) Options() []model.BackgroundOption {
	out := make([]model.BackgroundOption, 0, len(Presets)+len(c.customs))
	out = append(out, Presets...)
	out = append(out, c.customs...)
	return out
}

// Select makes the option with the given id current. Unknown ids are
// ignored and reported false.
func (c *Catalog) Select(id string) bool {
	for _, opt := range c.Options() {
		if opt.ID == id {
			c.selected = opt
			c.mirrorSelected()
			return true
		}
	}
	return false
}

// AddCustom appends a user-provided background and returns it.
func (c *Catalog) AddCustom(name, url string) model.BackgroundOption {
	opt := model.BackgroundOption{
		ID:   uuid.NewString(),
		Name: name,
		URL:  url,
		Type: model.TypeCustom,
	}
	c.customs = append(c.customs, opt)
	c.mirrorCustoms()
	return opt
}

// DeleteCustom removes a custom entry. Presets are not deletable. Deleting
// the currently selected custom falls the selection back to the first
// preset.
func (c *Catalog) DeleteCustom(id string) bool {
	for i, opt := range c.customs {
		if opt.ID == id {
			c.customs = append(c.customs[:i], c.customs[i+1:]...)
			c.mirrorCustoms()
			if c.selected.ID == id {
				c.selected = Presets[0]
				c.mirrorSelected()
			}
			return true
		}
	}
	return false
}

func (c *Catalog) mirrorSelected() {
	if c.kv == nil {
		return
	}
	if blob, err := json.Marshal(c.selected); err == nil {
		_ = c.kv.Save(SelectedKey, blob) // best effort
	}
}

func (c *Catalog) mirrorCustoms() {
	if c.kv == nil {
		return
	}
	if blob, err := json.Marshal(c.customs); err == nil {
		_ = c.kv.Save(CustomKey, blob) // best effort
	}
}
