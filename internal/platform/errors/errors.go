package errors

import "errors"

var (
	ErrorNotImplemented = errors.New("not implemented")
)
