package schema

import (
	"fmt"
	"sync"
)

type LookupErrorCode string

const (
	InvalidInput    LookupErrorCode = "INVALID_INPUT"
	SupplierError   LookupErrorCode = "SUPPLIER_ERROR"
	TimeoutError    LookupErrorCode = "TIMEOUT"
	ConnectionError LookupErrorCode = "CONNECTION_ERROR"
)

// LookupError is the failure variant of a lookup. InvalidInput carries the
// normalized VRM that was rejected, SupplierError the upstream status code.
type LookupError struct {
	Code       LookupErrorCode `json:"code"`
	Message    string          `json:"message"`
	Vrm        string          `json:"vrm,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
}

func (e LookupError) Error() string {
	return e.Message
}

type LookupErrors []LookupError

type errorsBucket struct {
	errors LookupErrors
	sync.Mutex
}

func NewErrorsBucket() errorsBucket {
	return errorsBucket{
		errors: []LookupError{},
	}
}

func (e *errorsBucket) AddErrors(errors []LookupError) {
	e.Lock()
	e.errors = append(e.errors, errors...)
	e.Unlock()
}

func (e *errorsBucket) AddError(err LookupError) {
	e.Lock()
	e.errors = append(e.errors, err)
	e.Unlock()
}

func (e *errorsBucket) Errors() *LookupErrors {
	return &e.errors
}

func NewInvalidInputError(vrm string) LookupError {
	return LookupError{
		Code:    InvalidInput,
		Message: "VRM is invalid: " + vrm,
		Vrm:     vrm,
	}
}

func NewHttpError(statusCode int) LookupError {
	return LookupError{
		Code:       SupplierError,
		Message:    fmt.Sprintf("supplier returned status code %d", statusCode),
		StatusCode: statusCode,
	}
}

func NewSupplierError(msg string) LookupError {
	return LookupError{
		Code:    SupplierError,
		Message: msg,
	}
}

func NewTimeoutError(msg string) LookupError {
	return LookupError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) LookupError {
	return LookupError{
		Code:    ConnectionError,
		Message: msg,
	}
}
