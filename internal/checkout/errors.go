package checkout

import "errors"

var (
	ErrSubmitting = errors.New("submission already in progress")
	ErrEmptyCart  = errors.New("cart is empty")
)

// ValidationError carries field-scoped messages. The machine stays Idle and
// no network attempt is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid checkout form" }
