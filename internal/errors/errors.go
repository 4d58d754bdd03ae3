// Package errors provides custom error types and utilities for smokecheck.
//
// This package provides error handling for various operations including:
// - Missing fixture errors
// - Configuration errors
// - HTTP errors
// - Command execution errors
// - Multi-error handling
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error categories for smokecheck operations
var (
	ErrMissingFixture = errors.New("missing fixture")
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNetwork        = errors.New("network error")
	ErrConfiguration  = errors.New("configuration error")
	ErrCommand        = errors.New("command error")
)

// FixtureError reports a fixture that is absent from disk.
type FixtureError struct {
	Name string
	Path string
	Err  error
}

func (e *FixtureError) Error() string {
	return "could not read " + e.Name
}

func (e *FixtureError) Unwrap() error {
	return e.Err
}

func (e *FixtureError) Is(target error) bool {
	return target == ErrMissingFixture || target == ErrNotFound
}

// NewFixtureError creates a new missing fixture error
func NewFixtureError(name, path string, err error) *FixtureError {
	return &FixtureError{
		Name: name,
		Path: path,
		Err:  err,
	}
}

// IsMissingFixture checks if an error reports a missing fixture
func IsMissingFixture(err error) bool {
	return errors.Is(err, ErrMissingFixture)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// CommandError represents an external command that did not behave as expected.
// Output holds the command's diagnostics (stderr), if any were captured.
type CommandError struct {
	Args       []string
	ExitCode   int
	ExpectFail bool
	Output     string
	Err        error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Args, " ")
	if e.ExpectFail {
		return fmt.Sprintf("command %s should have failed", cmd)
	}
	if e.Output != "" {
		return fmt.Sprintf("command %s failed: %s", cmd, e.Output)
	}
	return fmt.Sprintf("command %s failed", cmd)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}

// NewCommandError creates a new command error
func NewCommandError(args []string, exitCode int, err error) *CommandError {
	return &CommandError{
		Args:     args,
		ExitCode: exitCode,
		Err:      err,
	}
}

// NewCommandErrorWithOutput creates a command error that carries the command's diagnostics
func NewCommandErrorWithOutput(args []string, exitCode int, output string) *CommandError {
	return &CommandError{
		Args:     args,
		ExitCode: exitCode,
		Output:   strings.TrimSpace(output),
	}
}

// NewUnexpectedSuccessError creates a command error for a command that was expected to fail
func NewUnexpectedSuccessError(args []string) *CommandError {
	return &CommandError{
		Args:       args,
		ExpectFail: true,
	}
}

// IsCommand checks if an error came from an external command
func IsCommand(err error) bool {
	return errors.Is(err, ErrCommand)
}

// HTTPError represents an HTTP-related error
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusBadRequest:
		return target == ErrInvalidInput
	default:
		return target == ErrNetwork && e.StatusCode >= http.StatusInternalServerError
	}
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, method, url, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Message:    message,
	}
}

// NewHTTPErrorWithCause creates a new HTTP error with an underlying cause
func NewHTTPErrorWithCause(statusCode int, method, url, message string, err error) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Message:    message,
		Err:        err,
	}
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}
	return false
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// NewMultiError creates a new multi-error from a slice of errors
func NewMultiError(errs []error) *MultiError {
	var filteredErrors []error
	for _, err := range errs {
		if err != nil {
			filteredErrors = append(filteredErrors, err)
		}
	}
	return &MultiError{Errors: filteredErrors}
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return NewMultiError(nonNilErrors)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}

// IsNetwork checks if an error is network-related
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
