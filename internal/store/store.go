// Package store owns the activity collection. All mutation passes through
// Store; after each mutation the collection is mirrored to a key-value
// adapter best-effort, with memory as the source of truth for the session.
package store

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Makepad-fr/hebdo/internal/model"
)

// ActivitiesKey is the persistence key for the serialized collection.
const ActivitiesKey = "weekly-planner-activities"

// KV is the persistence adapter: a flat key-value blob store.
// Load reports a missing key as (nil, false, nil), not an error.
type KV interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

// Store is the sole owner of the activity collection. It keeps insertion
// order, never holds two records with the same id, and performs no sorting
// or garbage collection beyond explicit Delete. Single mutating actor by
// design; no locking.
type Store struct {
	kv          KV
	activities  []model.Activity
	subscribers []func()
	onSaveErr   func(error)
}

// New builds a store backed by kv, loading any previously persisted
// collection. Missing or malformed data degrades to an empty collection so
// the initial state is always well-defined. A nil kv gives a purely
// in-memory store.
func New(kv KV) *Store {
	s := &Store{kv: kv}
	if kv == nil {
		return s
	}
	blob, found, err := kv.Load(ActivitiesKey)
	if err != nil || !found {
		return s
	}
	var items []model.Activity
	if err := json.Unmarshal(blob, &items); err != nil {
		return s
	}
	s.activities = items
	return s
}

// Subscribe registers fn to run after every successful mutation. The store
// stays render-framework-agnostic; this is all the change signal there is.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// OnSaveError registers a hook for best-effort mirror failures. A failed
// save never rolls back or blocks the in-memory state.
func (s *Store) OnSaveError(fn func(error)) {
	s.onSaveErr = fn
}

// Create validates the draft, assigns a fresh id and appends the record.
// The end-after-start and non-empty title/date rules are enforced here as a
// hard invariant rather than trusting every caller's workflow check.
func (s *Store) Create(d model.Draft) (model.Activity, error) {
	if err := d.Validate(); err != nil {
		return model.Activity{}, err
	}
	a := d.Activity(uuid.NewString())
	s.activities = append(s.activities, a)
	s.mutated()
	return a, nil
}

// Update replaces the stored record with a matching id, full-replacement
// semantics. An unknown id is a silent no-op; Update never creates.
func (s *Store) Update(a model.Activity) {
	for i := range s.activities {
		if s.activities[i].ID == a.ID {
			s.activities[i] = a
			s.mutated()
			return
		}
	}
}

// Delete removes the record if present. Idempotent; deleting an absent id
// is a no-op so a stale reference can race a delete harmlessly.
func (s *Store) Delete(id string) {
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			s.mutated()
			return
		}
	}
}

// ToggleCompleted flips the completed flag of the record with the given id.
// Completion is independent of time; no-op on an unknown id.
func (s *Store) ToggleCompleted(id string) {
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].Completed = !s.activities[i].Completed
			s.mutated()
			return
		}
	}
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Activity, bool) {
	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return model.Activity{}, false
}

// ByDate returns the activities whose date equals the given key, in
// insertion order. Presentation may re-sort for display.
func (s *Store) ByDate(date string) []model.Activity {
	var out []model.Activity
	for _, a := range s.activities {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// All returns a copy of the whole collection in insertion order.
func (s *Store) All() []model.Activity {
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Len reports the collection size.
func (s *Store) Len() int { return len(s.activities) }

func (s *Store) mutated() {
	s.mirror()
	for _, fn := range s.subscribers {
		fn()
	}
}

func (s *Store) mirror() {
	if s.kv == nil {
		return
	}
	blob, err := json.Marshal(s.activities)
	if err == nil {
		err = s.kv.Save(ActivitiesKey, blob)
	}
	if err != nil && s.onSaveErr != nil {
		s.onSaveErr(err)
	}
}
