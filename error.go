package gradeforge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ESTRUCTURE = "structure"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("gradeforge error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Fields is the loosely-typed field dictionary an extractor builds while
// walking a record. It is attached to record errors for diagnosis.
type Fields map[string]string

// String renders fields sorted by key.
func (f Fields) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+f[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// RecordError reports a failure while decoding one record of a document.
// Fields holds whatever had been decoded when the failure happened.
type RecordError struct {
	Document string
	Record   int
	Fields   Fields
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %v (fields: %s)", e.Document, e.Record, e.Err, e.Fields)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
