// Package errors provides custom error types for the spotmap system.
// Typed errors carry the failing resource or field so callers can check
// them with errors.Is / errors.As and map them to user-facing output.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join is an alias for the standard library errors.Join.
var Join = errors.Join

// Common sentinel errors for the spotmap system
var (
	// ErrNotFound indicates that a requested spot or region does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a duplicate identifier in the catalog
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a validation failure.
// Allowed, when set, lists the values the field accepts.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Allowed []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Allowed) > 0 {
		msg = fmt.Sprintf("%s (allowed: %s)", msg, strings.Join(e.Allowed, ", "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("validation failed: %s", msg)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NewInvalidValueError reports a value outside an enumerated domain.
func NewInvalidValueError(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("unknown value %q", value),
		Allowed: allowed,
	}
}

// DuplicateError represents a repeated identifier in loaded data
type DuplicateError struct {
	Resource string
	ID       string
	Source   string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s with ID %s already exists (in %s)", e.Resource, e.ID, e.Source)
	}
	return fmt.Sprintf("%s with ID %s already exists", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *DuplicateError) Is(target error) bool {
	return target == ErrAlreadyExists || target == ErrInvalidInput
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "render", "write"
	Resource  string // "catalog", "region", "spot", "docs"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is a duplicate identifier error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// As is an alias for the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is an alias for the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
