package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"storefront/internal/models"
	"storefront/internal/storage"

	"go.uber.org/zap"
)

const storageKey = "cart"

// Store owns the cart line items. Every mutation rewrites the persisted
// snapshot before returning, so a restart right after any call cannot lose
// or duplicate a line relative to the last completed call.
type Store struct {
	mu    sync.Mutex
	store storage.Storage
	log   *zap.Logger
	items []models.CartItem
}

func NewStore(st storage.Storage, log *zap.Logger) *Store {
	s := &Store{store: st, log: log}
	s.items = s.load()
	return s
}

func (s *Store) load() []models.CartItem {
	raw, err := s.store.Read(storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
		}
		return nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("cart snapshot corrupt, starting empty", zap.Error(err))
		return nil
	}
	for i := range items {
		if items[i].Quantity <= 0 {
			items[i].Quantity = 1
		}
	}
	return items
}

// persist is called with the lock held.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("marshal cart", zap.Error(err))
		return
	}
	if err := s.store.Write(storageKey, raw); err != nil {
		s.log.Error("persist cart", zap.Error(err))
	}
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the sum of quantities across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// AddToCart accumulates: an existing (product, variant) line grows by
// quantity, otherwise a new line is appended.
func (s *Store) AddToCart(productID int, variantID *int, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID && sameVariant(s.items[i].VariantID, variantID) {
			s.items[i].Quantity += quantity
			s.persist()
			return nil
		}
	}
	s.items = append(s.items, models.CartItem{
		ProductID: productID,
		VariantID: copyVariantID(variantID),
		Quantity:  quantity,
	})
	s.persist()
	return nil
}

// UpdateQuantity sets the absolute quantity for a (product, variant) line.
// Quantity <= 0 removes the line; removing an absent line is a no-op.
// An unknown identity with a positive quantity appends a new line.
func (s *Store) UpdateQuantity(productID int, variantID *int, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		kept := s.items[:0]
		for _, it := range s.items {
			if it.ProductID == productID && sameVariant(it.VariantID, variantID) {
				continue
			}
			kept = append(kept, it)
		}
		s.items = kept
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID && sameVariant(s.items[i].VariantID, variantID) {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
	s.items = append(s.items, models.CartItem{
		ProductID: productID,
		VariantID: copyVariantID(variantID),
		Quantity:  quantity,
	})
	s.persist()
}

// ClearCart empties the cart and removes the persisted snapshot.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if err := s.store.Remove(storageKey); err != nil {
		s.log.Error("remove cart snapshot", zap.Error(err))
	}
}

func sameVariant(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyVariantID(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
