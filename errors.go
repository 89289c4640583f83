package stencil

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common failure cases.
var (
	// ErrSource indicates a semantic failure attributable to an input file's
	// content. It is never retried and ends the run after one diagnostic.
	ErrSource = errors.New("stencil: source error")

	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("stencil: missing configuration")
)

// Span is a pair of byte offsets (Start inclusive, End exclusive) into an
// input file's content. Spans locate diagnostics; they are never stored.
type Span struct {
	Start int
	End   int
}

// String returns the span in byte-offset form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// SourceError represents a semantic failure in an input file's content.
// It carries the offending file, a human-readable message, and the byte-offset
// span identifying the cause.
type SourceError struct {
	File    Text
	Message string
	Span    Span
}

// Error returns the error string.
func (e *SourceError) Error() string {
	var b strings.Builder
	b.WriteString("stencil: source error")
	if e.File != nil {
		b.WriteString(" in ")
		b.WriteString(e.File.Path())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SourceError.
// This allows errors.Is(err, ErrSource) to return true.
func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}

// NewSourceError creates a new SourceError for the given input file.
func NewSourceError(file Text, message string, span Span) *SourceError {
	return &SourceError{
		File:    file,
		Message: message,
		Span:    span,
	}
}

// IsSourceError returns true if the error is a SourceError.
func IsSourceError(err error) bool {
	if err == nil {
		return false
	}
	var e *SourceError
	return errors.As(err, &e) || errors.Is(err, ErrSource)
}

// ConfigError represents an invalid option value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("stencil: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("stencil: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}
