package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/storage"

	"go.uber.org/zap"
)

const storageKey = "orders"

// Recorder persists the order history, most recent first. Orders are never
// mutated after creation; the only destructive operation is ClearHistory.
type Recorder struct {
	mu    sync.Mutex
	store storage.Storage
	log   *zap.Logger
	now   func() time.Time
}

func NewRecorder(st storage.Storage, log *zap.Logger) *Recorder {
	return &Recorder{store: st, log: log, now: time.Now}
}

func (r *Recorder) load() []models.Order {
	raw, err := r.store.Read(storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("order history unreadable, starting empty", zap.Error(err))
		}
		return nil
	}
	var history []models.Order
	if err := json.Unmarshal(raw, &history); err != nil {
		r.log.Warn("order history corrupt, starting empty", zap.Error(err))
		return nil
	}
	return history
}

// History returns the persisted orders, most recent first.
func (r *Recorder) History() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Record snapshots the submitted cart into a new order at the head of the
// history. The id is time-derived, unique within clock resolution.
func (r *Recorder) Record(items []models.CartItem, total int64, currency, summary string) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	ord := models.Order{
		ID:               now.UnixMilli(),
		Items:            append([]models.CartItem(nil), items...),
		Total:            total,
		Currency:         currency,
		LineItemsSummary: summary,
		CreatedAt:        now,
	}

	history := append([]models.Order{ord}, r.load()...)
	raw, err := json.Marshal(history)
	if err != nil {
		return models.Order{}, fmt.Errorf("marshal order history: %w", err)
	}
	if err := r.store.Write(storageKey, raw); err != nil {
		return models.Order{}, fmt.Errorf("persist order history: %w", err)
	}
	return ord, nil
}

// ClearHistory removes the whole persisted list, independent of cart state.
func (r *Recorder) ClearHistory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Remove(storageKey); err != nil {
		r.log.Error("remove order history", zap.Error(err))
	}
}
