// Package apperrors defines the ledger core's error taxonomy. Expected
// business failures are detected before any mutation and travel as
// values; only persistence failures cross the boundary as wrapped
// unexpected errors.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindInsufficientStock Kind = "INSUFFICIENT_STOCK"
	KindEmptyTransaction  Kind = "EMPTY_TRANSACTION"
	KindNotFound          Kind = "NOT_FOUND"
	KindDuplicateSKU      Kind = "DUPLICATE_SKU"
	KindValidation        Kind = "VALIDATION_ERROR"
	KindInternal          Kind = "INTERNAL_ERROR"
)

var httpStatusByKind = map[Kind]int{
	KindInsufficientStock: http.StatusUnprocessableEntity,
	KindEmptyTransaction:  http.StatusUnprocessableEntity,
	KindNotFound:          http.StatusNotFound,
	KindDuplicateSKU:      http.StatusConflict,
	KindValidation:        http.StatusBadRequest,
	KindInternal:          http.StatusInternalServerError,
}

// HTTPStatus maps an error kind to the response status the handlers use.
func HTTPStatus(kind Kind) int {
	if status, ok := httpStatusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// InsufficientStockError names the item and the shortfall so the caller
// can show an actionable message. No mutation has happened when it is
// returned.
type InsufficientStockError struct {
	ItemName  string
	SKU       string
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (%s): requested %g, available %g",
		e.ItemName, e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Shortfall() float64 {
	return e.Requested - e.Available
}

// ValidationError covers malformed input detected before any mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateSKUError reports a violated SKU-uniqueness invariant.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("sku %q already exists", e.SKU)
}

var (
	// ErrEmptyTransaction: a commit or edit would leave zero line items.
	ErrEmptyTransaction = errors.New("transaction must have at least one line item")
	// ErrTransactionNotFound is fatal for edits; deletes treat it as a no-op.
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrRejectLogNotFound   = errors.New("reject log entry not found")
	ErrInvalidType         = errors.New("invalid transaction type")
)

// KindOf classifies an error for the API contract's error_kind field.
func KindOf(err error) Kind {
	var insufficient *InsufficientStockError
	var duplicate *DuplicateSKUError
	var validation *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &insufficient):
		return KindInsufficientStock
	case errors.As(err, &duplicate):
		return KindDuplicateSKU
	case errors.As(err, &validation):
		return KindValidation
	case errors.Is(err, ErrEmptyTransaction):
		return KindEmptyTransaction
	case errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrRejectLogNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidType):
		return KindValidation
	default:
		return KindInternal
	}
}
