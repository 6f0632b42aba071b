package cart_test

import (
	"testing"

	"storefront/internal/cart"
	"storefront/internal/storage"

	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func newStore(t *testing.T) (*cart.Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return cart.NewStore(mem, zap.NewNop()), mem
}

func TestAddToCart_AccumulatesSameIdentity(t *testing.T) {
	s, _ := newStore(t)

	if err := s.AddToCart(1, nil, 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := s.AddToCart(1, nil, 3); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 got %d", items[0].Quantity)
	}
	if s.Count() != 5 {
		t.Fatalf("Count expected 5 got %d", s.Count())
	}
}

func TestAddToCart_VariantsAreDistinctIdentities(t *testing.T) {
	s, _ := newStore(t)

	_ = s.AddToCart(1, nil, 1)
	_ = s.AddToCart(1, intPtr(3), 1)
	_ = s.AddToCart(1, intPtr(4), 1)
	_ = s.AddToCart(1, intPtr(3), 2)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items got %d", len(items))
	}
	// insertion order is stable across updates
	if items[0].VariantID != nil || items[1].VariantID == nil || *items[1].VariantID != 3 {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[1].Quantity != 3 {
		t.Fatalf("variant 3 expected quantity 3 got %d", items[1].Quantity)
	}
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	s, _ := newStore(t)

	if err := s.AddToCart(1, nil, 0); err != cart.ErrQuantityInvalid {
		t.Fatalf("expected ErrQuantityInvalid got %v", err)
	}
	if err := s.AddToCart(1, nil, -2); err != cart.ErrQuantityInvalid {
		t.Fatalf("expected ErrQuantityInvalid got %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatalf("cart should stay empty")
	}
}

func TestUpdateQuantity_SetsNotAdds(t *testing.T) {
	s, _ := newStore(t)

	_ = s.AddToCart(7, intPtr(3), 2)
	s.UpdateQuantity(7, intPtr(3), 4)

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Fatalf("expected single item quantity 4 got %+v", items)
	}
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	s, _ := newStore(t)

	_ = s.AddToCart(7, intPtr(3), 2)
	s.UpdateQuantity(7, intPtr(3), 0)

	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart got %+v", s.Items())
	}

	// removing an absent identity is a no-op
	s.UpdateQuantity(7, intPtr(3), 0)
	s.UpdateQuantity(99, nil, -1)
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart got %+v", s.Items())
	}
}

func TestUpdateQuantity_AppendsUnknownIdentity(t *testing.T) {
	s, _ := newStore(t)

	s.UpdateQuantity(5, nil, 2)

	items := s.Items()
	if len(items) != 1 || items[0].ProductID != 5 || items[0].Quantity != 2 {
		t.Fatalf("expected appended item got %+v", items)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	mem := storage.NewMemoryStore()
	s := cart.NewStore(mem, zap.NewNop())

	_ = s.AddToCart(1, nil, 2)
	_ = s.AddToCart(2, intPtr(9), 1)
	s.UpdateQuantity(1, nil, 5)

	reloaded := cart.NewStore(mem, zap.NewNop())
	got := reloaded.Items()
	want := s.Items()
	if len(got) != len(want) {
		t.Fatalf("round trip length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ProductID != want[i].ProductID || got[i].Quantity != want[i].Quantity {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	mem := storage.NewMemoryStore()
	if err := mem.Write("cart", []byte("{not json")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	s := cart.NewStore(mem, zap.NewNop())
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart got %+v", s.Items())
	}

	// a non-list payload must not propagate as a fault either
	if err := mem.Write("cart", []byte(`{"productId":1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	s = cart.NewStore(mem, zap.NewNop())
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart got %+v", s.Items())
	}
}

func TestStore_RestoredQuantityDefaultsToOne(t *testing.T) {
	mem := storage.NewMemoryStore()
	payload := `[{"productId":1},{"productId":2,"quantity":-3},{"productId":3,"quantity":2}]`
	if err := mem.Write("cart", []byte(payload)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	s := cart.NewStore(mem, zap.NewNop())
	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items got %d", len(items))
	}
	if items[0].Quantity != 1 || items[1].Quantity != 1 || items[2].Quantity != 2 {
		t.Fatalf("unexpected quantities: %+v", items)
	}
}

func TestClearCart(t *testing.T) {
	s, mem := newStore(t)

	_ = s.AddToCart(1, nil, 2)
	s.ClearCart()

	if len(s.Items()) != 0 || s.Count() != 0 {
		t.Fatalf("expected empty cart")
	}
	if _, err := mem.Read("cart"); err != storage.ErrNotFound {
		t.Fatalf("snapshot should be removed, got %v", err)
	}
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	s, mem := newStore(t)

	_ = s.AddToCart(1, nil, 2)
	raw, err := mem.Read("cart")
	if err != nil {
		t.Fatalf("Read after add: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("snapshot empty after add")
	}

	s.UpdateQuantity(1, nil, 7)
	reloaded := cart.NewStore(mem, zap.NewNop())
	items := reloaded.Items()
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Fatalf("snapshot not updated: %+v", items)
	}
}
