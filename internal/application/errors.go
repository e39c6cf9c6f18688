package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodePaymentNotFound     = "PAYMENT_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeDuplicatePayment    = "DUPLICATE_PAYMENT"
	ErrCodeInvalidState        = "INVALID_STATE"
	ErrCodeExternalUnavailable = "EXTERNAL_SERVICE_UNAVAILABLE"
	ErrCodeConfirmationFailed  = "PAYMENT_CONFIRMATION_FAILED"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

func NewPaymentNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    "payment not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewOrderNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeOrderNotFound,
		Message:    "order not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewDuplicatePaymentError(orderID int64) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeDuplicatePayment,
		Message:    fmt.Sprintf("a payment already exists for order %d", orderID),
		HTTPStatus: http.StatusConflict,
	}
}

func NewInvalidStateError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidState,
		Message:    "payment is not in a valid state for this operation",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NewExternalServiceError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeExternalUnavailable,
		Message:    "external service call failed",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewConfirmationFailedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfirmationFailed,
		Message:    "gateway payment confirmation failed",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps any error to a response status code.
func ToHTTPStatus(err error) int {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps any error to a machine-readable code.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}
	return ErrCodeInternal
}
