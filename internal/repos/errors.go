package repos

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeTableNotFound = "TABLE_NOT_FOUND"
	CodeUnexpected    = "UNEXPECTED_ERROR"
)

// ErrAppendOnly is returned for update/delete attempts against the
// registration log, which only ever grows.
var ErrAppendOnly = errors.New("collection is append-only")

// ErrImmutable is returned for update attempts on name-only collections;
// names are add/remove, never edited in place.
var ErrImmutable = errors.New("item cannot be edited")

// CodedError carries a stable code so callers can offer a degraded mode
// (empty or mock list) when a table is missing instead of failing the load.
type CodedError struct {
	Code string
	Err  error
}

func (e *CodedError) Error() string { return fmt.Sprintf("%s: %v", e.Code, e.Err) }
func (e *CodedError) Unwrap() error { return e.Err }

// Tag classifies a driver error. A missing table is the one recoverable
// case; everything else is reported as unexpected.
func Tag(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, ErrAppendOnly) || errors.Is(err, ErrImmutable) {
		return err
	}
	if strings.Contains(err.Error(), "no such table") {
		return &CodedError{Code: CodeTableNotFound, Err: err}
	}
	return &CodedError{Code: CodeUnexpected, Err: err}
}

// Code extracts the error code, or "" for nil / untagged errors.
func Code(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsTableMissing reports whether err is the recoverable schema-missing case.
func IsTableMissing(err error) bool { return Code(err) == CodeTableNotFound }
