package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a rejected collection or an unknown field.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeInvalidConfiguration indicates a non-positive page size.
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"

	// ErrCodeOutOfRange indicates navigation to a page outside [1, totalPages].
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// ErrCodeEmptyCollection indicates a top-N request over zero records.
	ErrCodeEmptyCollection ErrorCode = "EMPTY_COLLECTION"
)

// Error is a local, recoverable engine failure.
//
// Errors never leave partial state behind: the operation that returned one
// did not mutate anything.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context (offending id, page number, ...).
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func hasCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsInvalidInput returns true if err is an INVALID_INPUT error.
func IsInvalidInput(err error) bool { return hasCode(err, ErrCodeInvalidInput) }

// IsInvalidConfiguration returns true if err is an INVALID_CONFIGURATION error.
func IsInvalidConfiguration(err error) bool { return hasCode(err, ErrCodeInvalidConfiguration) }

// IsOutOfRange returns true if err is an OUT_OF_RANGE error.
func IsOutOfRange(err error) bool { return hasCode(err, ErrCodeOutOfRange) }

// IsEmptyCollection returns true if err is an EMPTY_COLLECTION error.
func IsEmptyCollection(err error) bool { return hasCode(err, ErrCodeEmptyCollection) }

// NewDuplicateIDError reports two records sharing an id.
func NewDuplicateIDError(id ID, first, second int) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("duplicate record id %d at positions %d and %d", id, first, second),
		Details: map[string]string{
			"id":     strconv.FormatInt(int64(id), 10),
			"first":  strconv.Itoa(first),
			"second": strconv.Itoa(second),
		},
	}
}

// NewPageSizeError reports a non-positive page size.
func NewPageSizeError(size int) *Error {
	return &Error{
		Code:    ErrCodeInvalidConfiguration,
		Message: fmt.Sprintf("page size must be positive, got %d", size),
		Details: map[string]string{"page_size": strconv.Itoa(size)},
	}
}

// NewOutOfRangeError reports a page number outside [1, totalPages].
func NewOutOfRangeError(page, totalPages int) *Error {
	return &Error{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("page %d outside [1, %d]", page, totalPages),
		Details: map[string]string{
			"page":        strconv.Itoa(page),
			"total_pages": strconv.Itoa(totalPages),
		},
	}
}

// NewEmptyCollectionError reports an operation that needs at least one record.
func NewEmptyCollectionError(op string) *Error {
	return &Error{
		Code:    ErrCodeEmptyCollection,
		Message: op + " requires at least one record",
		Details: map[string]string{"op": op},
	}
}

// NewFieldKindError reports a field of the wrong kind for an operation.
func NewFieldKindError(op string, f Field, want Kind) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("%s needs a %s field, got %q (%s)", op, want, f, f.Kind()),
		Details: map[string]string{"op": op, "field": string(f)},
	}
}
