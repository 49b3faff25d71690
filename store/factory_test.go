package store

import (
	"path/filepath"
	"testing"
)

func TestNewStoreKinds(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := NewStore("memory", "")
		if err != nil || s == nil {
			t.Fatalf("expected memory store, got err=%v", err)
		}
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		if _, err := NewStore("sqlite", ""); err == nil {
			t.Fatal("expected error for empty sqlite path")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "factory.db")
		s, err := NewStore("sqlite", path)
		if err != nil || s == nil {
			t.Fatalf("expected sqlite store, got err=%v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := NewStore("bogus", ""); err == nil {
			t.Fatal("expected error for unknown store kind")
		}
	})
}
