package checkout

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/order"
	"storefront/internal/relay"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "IDLE"
	StateSubmitting State = "SUBMITTING"
	StateSucceeded  State = "SUCCEEDED"
)

// Checkout runs one submission attempt at a time:
// Idle -> Submitting -> Succeeded, or back to Idle on failure.
// A failed submission never touches the cart or the history.
type Checkout struct {
	mu        sync.Mutex
	state     State
	cart      *cart.Store
	catalog   *catalog.Catalog
	recorder  *order.Recorder
	submitter relay.Submitter
	log       *zap.Logger
}

func New(cartStore *cart.Store, cat *catalog.Catalog, rec *order.Recorder, sub relay.Submitter, log *zap.Logger) *Checkout {
	return &Checkout{
		state:     StateIdle,
		cart:      cartStore,
		catalog:   cat,
		recorder:  rec,
		submitter: sub,
		log:       log,
	}
}

func (c *Checkout) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset returns the machine to Idle after a confirmed order, so a new
// attempt can start.
func (c *Checkout) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSubmitting {
		c.state = StateIdle
	}
}

// Submit validates the form, sends the order to the relay and, only on a
// confirmed success, records the order and clears the cart.
func (c *Checkout) Submit(ctx context.Context, f Form) (*models.Order, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmitting
	}
	if err := f.Validate(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	items := c.cart.Items()
	if len(items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	rows := cart.Enrich(items, c.catalog)
	total := cart.ComputeTotal(rows)
	currency := cart.ResolveDisplayCurrency(rows)
	summary := cart.LineItemsSummary(rows, currency)

	attempt := uuid.New().String()
	c.log.Info("submitting order",
		zap.String("attempt", attempt),
		zap.Int("items", len(items)),
		zap.Int64("total", total),
		zap.String("currency", currency),
	)

	err := c.submitter.Submit(ctx, relay.Submission{
		Fields:   f.RelayFields(),
		Summary:  summary,
		Total:    cart.FormatAmount(currency, total),
		Currency: currency,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateIdle
		c.log.Warn("order submission failed", zap.String("attempt", attempt), zap.Error(err))
		return nil, fmt.Errorf("submit order: %w", err)
	}

	ord, err := c.recorder.Record(items, total, currency, summary)
	if err != nil {
		// The relay accepted the order but the snapshot could not be
		// persisted. Keep the cart so nothing is lost.
		c.state = StateIdle
		c.log.Error("record order", zap.String("attempt", attempt), zap.Error(err))
		return nil, err
	}

	c.cart.ClearCart()
	c.state = StateSucceeded
	c.log.Info("order confirmed", zap.String("attempt", attempt), zap.Int64("order_id", ord.ID))
	return &ord, nil
}
