package models

import "errors"

// Validation failures surface as typed errors instead of silent no-ops so
// callers can tell why a save was rejected. State is never partially mutated
// when one of these is returned.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrDispatchNotFound    = errors.New("dispatch not found")
	ErrDispatchClosed      = errors.New("dispatch already closed")
	ErrNothingToSave       = errors.New("nothing to save")
	ErrMissingProvider     = errors.New("provider is required")
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrNonPositiveCost     = errors.New("cost must be greater than zero")
	ErrUnknownCloseField   = errors.New("unknown close field")
	ErrEmptyCart           = errors.New("sale has no items")
)
