package t2e

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	EMALFORMED   = "malformed_xml"
	EMISSINGATTR = "missing_attribute"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Byte offset into the input where the error was detected.
	// Only meaningful for EMALFORMED and EMISSINGATTR, -1 otherwise.
	Offset int64
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("t2e error: code=%s message=%s", e.Code, e.Message)
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
	return "Internal error"
}

// ErrorOffset returns the input offset carried by an application error,
// or -1 if there is none.
func ErrorOffset(err error) int64 {
	var e *Error
	if errors.As(err, &e) {
		return e.Offset
	}
	return -1
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. The offset is left unset.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
	}
}

// OffsetErrorf returns an Error positioned at the given input offset.
func OffsetErrorf(code string, offset int64, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}
