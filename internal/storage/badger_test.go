package storage_test

import (
	"errors"
	"testing"

	"storefront/internal/storage"
)

func openStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	s, err := storage.OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s := openStore(t)

	if err := s.Write("cart", []byte(`[{"productId":1}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("cart")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `[{"productId":1}]` {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// overwrite is visible immediately
	if err := s.Write("cart", []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ = s.Read("cart")
	if string(got) != `[]` {
		t.Fatalf("overwrite mismatch: %s", got)
	}
}

func TestBadgerStore_MissingKey(t *testing.T) {
	s := openStore(t)

	if _, err := s.Read("absent"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestBadgerStore_Remove(t *testing.T) {
	s := openStore(t)

	if err := s.Write("orders", []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Remove("orders"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Read("orders"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove got %v", err)
	}

	// removing an absent key is not an error
	if err := s.Remove("orders"); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
}
