package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/hebdo/internal/model"
)

type memKV struct {
	data    map[string][]byte
	saveErr error
	saves   int
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (k *memKV) Load(key string) ([]byte, bool, error) {
	b, ok := k.data[key]
	return b, ok, nil
}

func (k *memKV) Save(key string, blob []byte) error {
	k.saves++
	if k.saveErr != nil {
		return k.saveErr
	}
	k.data[key] = blob
	return nil
}

func draft(date string) model.Draft {
	return model.Draft{
		Title:      "Team sync",
		Date:       date,
		StartTime:  "09:00",
		EndTime:    "10:00",
		Color:      model.Colors[0],
		Importance: 2,
	}
}

func TestCreateAssignsIDAndIsQueryable(t *testing.T) {
	s := New(newMemKV())

	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)

	got := s.ByDate("2024-06-10")
	require.Len(t, got, 1)
	require.Equal(t, a, got[0])
	require.Equal(t, "Team sync", got[0].Title)
	require.Empty(t, s.ByDate("2024-06-11"))
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	s := New(nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		a, err := s.Create(draft("2024-06-10"))
		require.NoError(t, err)
		require.False(t, seen[a.ID])
		seen[a.ID] = true
	}
}

func TestCreateRejectsInvalidDrafts(t *testing.T) {
	kv := newMemKV()
	s := New(kv)

	bad := draft("2024-06-10")
	bad.EndTime = "09:00" // not after start
	_, err := s.Create(bad)
	require.Error(t, err)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "endTime", verr.Field)

	bad = draft("2024-06-10")
	bad.Title = " "
	_, err = s.Create(bad)
	require.Error(t, err)

	// State untouched, nothing mirrored.
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, kv.saves)
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	s := New(newMemKV())
	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)

	a.Title = "Retro"
	a.Importance = 3
	a.Completed = true
	s.Update(a)

	got := s.ByDate("2024-06-10")
	require.Len(t, got, 1)
	require.Equal(t, a, got[0])
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := New(newMemKV())
	_, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)

	before := s.All()
	ghost := draft("2024-06-11").Activity("no-such-id")
	s.Update(ghost)
	require.Equal(t, before, s.All())
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := New(newMemKV())
	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.Delete(a.ID)
	require.Equal(t, 0, s.Len())

	s.Delete(a.ID)
	require.Equal(t, 0, s.Len())
}

func TestToggleCompletedIsItsOwnInverse(t *testing.T) {
	s := New(newMemKV())
	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)

	s.ToggleCompleted(a.ID)
	got, ok := s.Get(a.ID)
	require.True(t, ok)
	require.True(t, got.Completed)

	s.ToggleCompleted(a.ID)
	got, _ = s.Get(a.ID)
	require.False(t, got.Completed)

	// Unknown ids change nothing.
	s.ToggleCompleted("no-such-id")
	require.Equal(t, 1, s.Len())
}

func TestByDateKeepsInsertionOrder(t *testing.T) {
	s := New(newMemKV())
	late := draft("2024-06-10")
	late.Title = "Evening run"
	late.StartTime, late.EndTime = "19:00", "20:00"
	first, err := s.Create(late)
	require.NoError(t, err)
	second, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)

	got := s.ByDate("2024-06-10")
	require.Equal(t, []string{first.ID, second.ID}, []string{got[0].ID, got[1].ID})
}

func TestCollectionRoundTripsThroughKV(t *testing.T) {
	kv := newMemKV()
	s := New(kv)
	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)
	b, err := s.Create(draft("2024-06-12"))
	require.NoError(t, err)

	// The persisted blob carries exactly the serialization contract.
	var persisted []model.Activity
	require.NoError(t, json.Unmarshal(kv.data[ActivitiesKey], &persisted))
	require.Equal(t, []model.Activity{a, b}, persisted)

	// A fresh store over the same adapter sees an equal collection.
	reloaded := New(kv)
	require.Equal(t, s.All(), reloaded.All())
}

func TestLoadFailuresDegradeToEmpty(t *testing.T) {
	missing := newMemKV()
	require.Equal(t, 0, New(missing).Len())

	malformed := newMemKV()
	malformed.data[ActivitiesKey] = []byte("{not json")
	require.Equal(t, 0, New(malformed).Len())
}

func TestSaveFailuresAreBestEffort(t *testing.T) {
	kv := newMemKV()
	kv.saveErr = errors.New("disk full")
	s := New(kv)

	var hookErr error
	s.OnSaveError(func(err error) { hookErr = err })

	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)
	require.ErrorIs(t, hookErr, kv.saveErr)

	// Memory stays the source of truth.
	require.Equal(t, 1, s.Len())
	_, ok := s.Get(a.ID)
	require.True(t, ok)
}

func TestSubscribeFiresAfterEveryMutation(t *testing.T) {
	s := New(newMemKV())
	calls := 0
	s.Subscribe(func() { calls++ })

	a, err := s.Create(draft("2024-06-10"))
	require.NoError(t, err)
	s.ToggleCompleted(a.ID)
	s.Delete(a.ID)
	require.Equal(t, 3, calls)

	// No-ops do not notify.
	s.Delete(a.ID)
	s.ToggleCompleted(a.ID)
	require.Equal(t, 3, calls)
}
