package httperr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a business error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// InsufficientPaymentError reports how much base currency is still missing.
type InsufficientPaymentError struct {
	Due       decimal.Decimal
	Tendered  decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("%s: shortfall %s", CodeInsufficientPayment, e.Shortfall.StringFixed(2))
}

func (e *InsufficientPaymentError) Unwrap() error {
	return BusinessError{Code: CodeInsufficientPayment}
}

// StorageError keeps the driver error for logs and renders as storage_failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Err.Error()
}

func (e *StorageError) Unwrap() []error {
	return []error{BusinessError{Code: CodeStorageFailure}, e.Err}
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return &StorageError{Err: err}
}

// Lookup turns record.ErrNotFound into the given not-found code and anything
// else into a storage failure.
func Lookup(err error, notFoundCode string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, record.ErrNotFound) {
		return ErrBusiness(notFoundCode)
	}
	return Storage(err)
}
