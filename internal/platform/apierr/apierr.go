package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorCode classifies a request-scoped failure.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeNotFound   ErrorCode = "not_found"
	CodeConflict   ErrorCode = "conflict"
	CodeInternal   ErrorCode = "internal"
)

// NonFieldErrors keys validation messages that are not tied to one input field.
const NonFieldErrors = "non_field_errors"

type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	// Fields carries per-field messages for CodeValidation.
	Fields map[string][]string
	Cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	if msg == "" && len(e.Fields) > 0 {
		msg = e.fieldSummary()
	}
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) fieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return strings.Join(parts, ", ")
}

func New(code ErrorCode, op, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

func NotFound(op string) *Error {
	return New(CodeNotFound, op, "Not found.", nil)
}

func Conflict(op, message string) *Error {
	return New(CodeConflict, op, message, nil)
}

func Internal(op string, cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return New(CodeInternal, op, msg, cause)
}

// Invalid builds a validation error for a single field.
func Invalid(op, field, message string) *Error {
	return Validation(op, map[string][]string{field: {message}})
}

func Validation(op string, fields map[string][]string) *Error {
	e := New(CodeValidation, op, "", nil)
	e.Fields = fields
	return e
}

// Wrap annotates err with code unless it already carries one.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return err
	}
	return New(code, op, err.Error(), err)
}

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func CodeOf(err error) ErrorCode {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	return apiErr.Code
}

// Status maps an error onto the HTTP status the storefront answers with.
// Delete-guard conflicts answer 405.
func Status(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
