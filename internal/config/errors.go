package config

import (
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigParse      = "CONFIG_PARSE"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeTopicNotFound    = "TOPIC_NOT_FOUND"
	ErrCodeInvalidFlag      = "INVALID_FLAG"
)

// UserError is an error meant to be shown to the person running bighelp.
type UserError struct {
	Code       string // e.g. "CONFIG_PARSE"
	Message    string
	Context    string // config key or file path
	Suggestion string
	Underlying error
}

// Error returns the message with its context.
func (e *UserError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is matches another UserError with the same code.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns the error with code, location and suggestion.
func (e *UserError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}
	return b.String()
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors struct {
	errs []*UserError
}

func (v *ValidationErrors) add(key, message, suggestion string) {
	v.errs = append(v.errs, &UserError{
		Code:       ErrCodeValidationFailed,
		Message:    fmt.Sprintf("%s: %s", key, message),
		Context:    key,
		Suggestion: suggestion,
	})
}

// Errors returns a copy of the collected errors.
func (v *ValidationErrors) Errors() []*UserError {
	out := make([]*UserError, len(v.errs))
	copy(out, v.errs)
	return out
}

// Error lists every collected error.
func (v *ValidationErrors) Error() string {
	if len(v.errs) == 1 {
		return v.errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d configuration errors:", len(v.errs))
	for i, err := range v.errs {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	out := make([]error, len(v.errs))
	for i, err := range v.errs {
		out[i] = err
	}
	return out
}

func (v *ValidationErrors) orNil() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v
}
