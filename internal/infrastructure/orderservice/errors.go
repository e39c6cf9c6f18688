package orderservice

import (
	"errors"
	"fmt"
)

// OrderServiceError is any non-2xx, non-404 answer from the order service.
type OrderServiceError struct {
	StatusCode int
	Body       string
}

func (e *OrderServiceError) Error() string {
	return fmt.Sprintf("order service error (status: %d): %s", e.StatusCode, e.Body)
}

func IsOrderServiceError(err error) (*OrderServiceError, bool) {
	var osErr *OrderServiceError
	ok := errors.As(err, &osErr)
	return osErr, ok
}
