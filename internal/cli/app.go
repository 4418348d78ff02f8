package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/hebdo/internal/background"
	"github.com/Makepad-fr/hebdo/internal/config"
	"github.com/Makepad-fr/hebdo/internal/layout"
	"github.com/Makepad-fr/hebdo/internal/store"
	"github.com/Makepad-fr/hebdo/internal/store/jsonstore"
	"github.com/Makepad-fr/hebdo/internal/week"
)

// app wires the core components together: config, persistence, store,
// navigator, layout engine and background catalog. The CLI and TUI issue
// commands against it; nothing here renders.
type app struct {
	cfg   *config.Config
	store *store.Store
	weeks *week.Navigator
	lay   layout.Config
	view  layout.Viewport
	bgs   *background.Catalog
}

func newApp(opt Options) (*app, error) {
	path := opt.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opt.Compact {
		cfg.Viewport = "compact"
	}

	kv, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}

	lay := layout.Default()
	lay.StartHour = cfg.DayStartHour
	lay.EndHour = cfg.DayEndHour
	lay.Normalize()

	st := store.New(kv)
	st.OnSaveError(func(err error) {
		// Mirroring is best-effort; warn without disturbing the session.
		fail("save: " + err.Error())
	})

	return &app{
		cfg:   cfg,
		store: st,
		weeks: week.New(nil),
		lay:   lay,
		view:  layout.ViewportFromString(cfg.Viewport),
		bgs:   background.New(kv),
	}, nil
}

// resolveID expands a unique activity id prefix to the full id.
func (a *app) resolveID(prefix string) (string, error) {
	var match string
	for _, act := range a.store.All() {
		if strings.HasPrefix(act.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id prefix %q", prefix)
			}
			match = act.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no activity matches %q", prefix)
	}
	return match, nil
}
