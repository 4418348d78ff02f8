package background

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/hebdo/internal/model"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (k *memKV) Load(key string) ([]byte, bool, error) {
	b, ok := k.data[key]
	return b, ok, nil
}

func (k *memKV) Save(key string, blob []byte) error {
	k.data[key] = blob
	return nil
}

func TestNewDefaultsToFirstPreset(t *testing.T) {
	c := New(newMemKV())
	require.Equal(t, Presets[0], c.Selected())
	require.Len(t, c.Options(), len(Presets))
}

func TestNewDegradesOnMalformedData(t *testing.T) {
	kv := newMemKV()
	kv.data[SelectedKey] = []byte("{broken")
	kv.data[CustomKey] = []byte("also broken")
	c := New(kv)
	require.Equal(t, Presets[0], c.Selected())
	require.Len(t, c.Options(), len(Presets))
}

func TestSelectPersistsAcrossReload(t *testing.T) {
	kv := newMemKV()
	c := New(kv)

	require.True(t, c.Select("aurora1"))
	require.Equal(t, "aurora1", c.Selected().ID)

	reloaded := New(kv)
	require.Equal(t, "aurora1", reloaded.Selected().ID)

	require.False(t, c.Select("no-such-bg"))
	require.Equal(t, "aurora1", c.Selected().ID)
}

func TestAddCustomAndReload(t *testing.T) {
	kv := newMemKV()
	c := New(kv)

	bg := c.AddCustom("Home Office", "file:///home/me/office.jpg")
	require.NotEmpty(t, bg.ID)
	require.Equal(t, model.TypeCustom, bg.Type)
	require.Len(t, c.Options(), len(Presets)+1)

	reloaded := New(kv)
	require.Len(t, reloaded.Options(), len(Presets)+1)
	require.True(t, reloaded.Select(bg.ID))
}

func TestDeleteCustomFallsBackSelection(t *testing.T) {
	kv := newMemKV()
	c := New(kv)

	bg := c.AddCustom("Home Office", "file:///home/me/office.jpg")
	require.True(t, c.Select(bg.ID))

	require.True(t, c.DeleteCustom(bg.ID))
	require.Equal(t, Presets[0], c.Selected())
	require.Len(t, c.Options(), len(Presets))

	// Presets cannot be deleted, and deletes are not repeatable.
	require.False(t, c.DeleteCustom("mountain1"))
	require.False(t, c.DeleteCustom(bg.ID))

	reloaded := New(kv)
	require.Equal(t, Presets[0], reloaded.Selected())
}
