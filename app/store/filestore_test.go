package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	cats := models.DefaultFeeCategories()
	require.NoError(t, fs.Save(SlotCategories, cats))

	var loaded []models.FeeCategory
	found, err := fs.Load(SlotCategories, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, loaded, len(cats))
	assert.Equal(t, cats[0].Name, loaded[0].Name)
	assert.True(t, cats[0].DefaultAmount.Equal(loaded[0].DefaultAmount))
}

func TestFileStoreMissingSlot(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var queue []string
	found, err := fs.Load(SlotQueue, &queue)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, queue)
}

func TestFileStoreOverwrite(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save(SlotQueue, []string{"a", "b"}))
	require.NoError(t, fs.Save(SlotQueue, []string{"c"}))

	var queue []string
	found, err := fs.Load(SlotQueue, &queue)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"c"}, queue)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, ".json", filepath.Ext(e.Name()))
	}
}

func TestFileStoreCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SlotQueue+".json"), []byte("{nope"), 0o644))

	var queue []string
	_, err = fs.Load(SlotQueue, &queue)
	assert.Error(t, err)
}
