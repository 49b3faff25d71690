package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCategories(t *testing.T) {
	t.Run("reads the enumeration in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.json")
		err := os.WriteFile(path, []byte(`{"categories": ["Electronics", "Books", "Office"]}`), 0o644)
		require.NoError(t, err)

		got := LoadCategories(path)
		require.Equal(t, []string{"Electronics", "Books", "Office"}, got)
	})

	t.Run("missing file yields empty enumeration", func(t *testing.T) {
		got := LoadCategories(filepath.Join(t.TempDir(), "nope.json"))
		require.Empty(t, got)
	})

	t.Run("file without categories key yields empty enumeration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.json")
		err := os.WriteFile(path, []byte(`{}`), 0o644)
		require.NoError(t, err)

		require.Empty(t, LoadCategories(path))
	})
}
