package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "property-favorites.json")
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s := Open(tempPath(t))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}

func TestAddRemoveContains(t *testing.T) {
	s := Open(tempPath(t))

	s.Add(3)
	s.Add(7)
	s.Add(3) // idempotent
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(7))
	assert.Equal(t, []int{3, 7}, s.IDs())

	s.Remove(3)
	s.Remove(3) // idempotent
	assert.False(t, s.Contains(3))
	assert.Equal(t, []int{7}, s.IDs())
}

func TestToggle(t *testing.T) {
	s := Open(tempPath(t))

	assert.True(t, s.Toggle(5))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Toggle(5))
	assert.False(t, s.Contains(5))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := tempPath(t)

	s := Open(path)
	s.Add(3)
	s.Add(7)
	s.Toggle(12)
	s.Remove(7)

	reopened := Open(path)
	assert.Equal(t, []int{3, 12}, reopened.IDs())
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	s := Open(path)
	assert.Equal(t, 0, s.Len())

	// The set still works and persists after a failed load.
	s.Add(1)
	assert.Equal(t, []int{1}, Open(path).IDs())
}

func TestPersistCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "property-favorites.json")

	s := Open(path)
	s.Add(9)

	assert.Equal(t, []int{9}, Open(path).IDs())
}
