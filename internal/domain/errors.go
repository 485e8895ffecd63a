package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core. Every operation either succeeds or fails
// with exactly one of these and leaves internal state unchanged.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrOutOfStock     = errors.New("out of stock")
	ErrAuthentication = errors.New("authentication failed")
)

// OutOfStockError carries enough detail for a precise user-facing message.
type OutOfStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func AuthFailedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAuthentication, fmt.Sprintf(format, args...))
}
