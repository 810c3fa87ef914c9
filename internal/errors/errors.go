// Package errors provides standardized error handling for foldercolor.
// It defines the error kinds the picker distinguishes, constructors for
// creating and wrapping them, and predicates for checking them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrNoActiveColor = NewToolError("no active color reported", "", "", NoActiveColor, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Catalog error kinds
	OutOfRange
	InvalidCatalog
	// Config error kinds
	InvalidConfig
	// Collaborator error kinds
	ToolNotFound
	ToolFailed
	NoActiveColor
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// CatalogError represents errors raised while building or indexing the catalog
type CatalogError struct {
	ApplicationError
	entry string
}

// NewCatalogError creates a new catalog error
func NewCatalogError(msg string, entry string, kind ErrorKind, err error) *CatalogError {
	return &CatalogError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		entry: entry,
	}
}

// Error returns the catalog error message
func (e *CatalogError) Error() string {
	if e.entry != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.entry, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.entry)
	}
	return e.ApplicationError.Error()
}

// Entry returns the entry name or index associated with the error
func (e *CatalogError) Entry() string {
	return e.entry
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ToolError represents a failed invocation of the external folder color tool.
// Its message is what the user sees in the error box, so it carries the
// tool's own output rather than a generic description when there is one.
type ToolError struct {
	ApplicationError
	tool   string
	output string
}

// NewToolError creates a new tool error
func NewToolError(msg string, tool string, output string, kind ErrorKind, err error) *ToolError {
	return &ToolError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		tool:   tool,
		output: output,
	}
}

// Error returns the tool error message
func (e *ToolError) Error() string {
	if e.output != "" {
		return e.output
	}
	if e.tool != "" {
		return fmt.Sprintf("%s: %s", e.tool, e.msg)
	}
	return e.ApplicationError.Error()
}

// Tool returns the executable associated with the error
func (e *ToolError) Tool() string {
	return e.tool
}

// Output returns the captured stderr and stdout of the tool
func (e *ToolError) Output() string {
	return e.output
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first application error in err's chain
func KindOf(err error) ErrorKind {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Kind()
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind()
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsOutOfRange checks if the error is a catalog index out of range error
func IsOutOfRange(err error) bool {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Kind() == OutOfRange
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsToolNotFound checks if the error means the tool could not be launched
func IsToolNotFound(err error) bool {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Kind() == ToolNotFound
	}
	return false
}

// IsToolFailed checks if the error means the tool ran and exited non-zero
func IsToolFailed(err error) bool {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Kind() == ToolFailed
	}
	return false
}
