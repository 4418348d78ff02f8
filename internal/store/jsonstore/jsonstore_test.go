package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestLoadMissingKey(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	blob, found, err := d.Load("weekly-planner-activities")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, blob)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	in := []byte(`[{"id":"a1","title":"Team sync"}]`)
	require.NoError(t, d.Save("weekly-planner-activities", in))

	out, found, err := d.Load("weekly-planner-activities")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, string(in), string(out))
}

func TestSavePrettyPrintsJSON(t *testing.T) {
	dir := t.TempDir()
	d, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, d.Save("weekly-planner-background", []byte(`{"id":"mountain1","name":"Mountain Peak"}`)))

	raw, err := os.ReadFile(filepath.Join(dir, "weekly-planner-background.json"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(raw), "\n  "))
}

func TestSaveKeepsNonJSONBlobVerbatim(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, d.Save("scratch", []byte("not json")))
	out, found, err := d.Load("scratch")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "not json", string(out))
}
