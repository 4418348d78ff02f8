// Package jsonstore persists planner state as JSON files under a single
// directory, one file per key. Human-readable, portable.
// No locking; fine for a local single-user planner.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is a file-per-key blob store rooted at one directory. It implements
// the store.KV adapter.
type Dir struct {
	path string
}

// New ensures the directory exists and returns a store rooted there.
func New(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New("jsonstore: empty directory")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(key string) string {
	return filepath.Join(d.path, key+".json")
}

// Load reads the blob stored under key. A missing key is (nil, false, nil).
func (d *Dir) Load(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(d.file(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

// Save writes the blob under key, re-indenting valid JSON so the files stay
// readable and diffable.
func (d *Dir) Save(key string, blob []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, blob, "", "  "); err == nil {
		blob = buf.Bytes()
	}
	if err := os.WriteFile(d.file(key), blob, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
