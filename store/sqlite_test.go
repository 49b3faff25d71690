package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"productman/domain"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return s, path
}

func TestSQLiteCreateGetUpdateDelete(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p, err := s.Create(ctx, domain.Product{Name: "Pen", Price: 3.14, Category: "Office", CreatedDate: created})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	got, err := s.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Pen" || got.Price != 3.14 || got.Category != "Office" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.CreatedDate.Equal(created) {
		t.Fatalf("created date mismatch: %v != %v", got.CreatedDate, created)
	}

	if err := s.Update(ctx, p.ID, "Pencil", 4, "Office"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = s.GetByID(ctx, p.ID)
	if got.Name != "Pencil" || got.Price != 4 {
		t.Fatalf("update not applied: %+v", got)
	}
	if !got.CreatedDate.Equal(created) {
		t.Fatal("update must not touch the creation date")
	}

	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.GetByID(ctx, p.ID); !domain.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestSQLiteNotFound(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	if _, err := s.GetByID(ctx, 42); !domain.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := s.Update(ctx, 42, "A", 1, "C"); !domain.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := s.Delete(ctx, 42); !domain.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSQLiteIDsNeverReused(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	a, _ := s.Create(ctx, domain.Product{Name: "A", Price: 1, Category: "C", CreatedDate: time.Now()})
	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	b, err := s.Create(ctx, domain.Product{Name: "B", Price: 1, Category: "C", CreatedDate: time.Now()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if b.ID <= a.ID {
		t.Fatalf("id %d was reused after deleting %d", b.ID, a.ID)
	}
}

func TestSQLiteListAll_OrderedByCategoryDescending(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, c := range []string{"B", "A", "C"} {
		if _, err := s.Create(ctx, domain.Product{Name: "p" + c, Price: 1, Category: c, CreatedDate: time.Now()}); err != nil {
			t.Fatalf("setup create failed: %v", err)
		}
	}

	out, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"C", "B", "A"}
	if len(out) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i].Category != want[i] {
			t.Fatalf("expected category order %v, got %+v", want, out)
		}
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	s, path := newTestSQLiteStore(t)
	ctx := context.Background()

	p, err := s.Create(ctx, domain.Product{Name: "Durable", Price: 9.99, Category: "Misc", CreatedDate: time.Now()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := reopened.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if got.Name != "Durable" {
		t.Fatalf("unexpected record after reopen: %+v", got)
	}
}
