// Package errors provides coded error types for holectl.
//
// Every failure surfaced by the list manager, the dnsmasq compiler and their
// collaborators carries an ErrorCode, so callers (the CLI and the HTTP API)
// can map it to an exit message or a status code without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeInvalidDomain indicates that a domain or pattern was rejected by the list's syntax rules.
	ErrCodeInvalidDomain ErrorCode = "INVALID_DOMAIN"

	// ErrCodeAlreadyExists indicates a duplicate insert into a list.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// ErrCodeNotFound indicates that the target of an operation is absent.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeConfigWrite indicates an I/O failure while rendering the resolver configuration.
	ErrCodeConfigWrite ErrorCode = "CONFIG_WRITE_ERROR"

	// ErrCodeReload indicates the gravity reload subprocess failed to launch or exited non-zero.
	ErrCodeReload ErrorCode = "RELOAD_ERROR"

	// ErrCodeControlChannel indicates the resolver did not acknowledge a control command.
	ErrCodeControlChannel ErrorCode = "CONTROL_CHANNEL_ERROR"

	// ErrCodeUnknown indicates an unexpected condition, such as an unsupported list type.
	ErrCodeUnknown ErrorCode = "UNKNOWN"

	// ErrCodeConfig indicates an application configuration error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeSettings indicates that the settings store could not be read or holds a malformed value.
	ErrCodeSettings ErrorCode = "SETTINGS_ERROR"

	// ErrCodeStorage indicates a list repository backend failure.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// Sentinels for use with errors.Is. Matching is by code only.
var (
	ErrInvalidDomain  = New(ErrCodeInvalidDomain, "invalid domain")
	ErrAlreadyExists  = New(ErrCodeAlreadyExists, "already exists")
	ErrNotFound       = New(ErrCodeNotFound, "not found")
	ErrConfigWrite    = New(ErrCodeConfigWrite, "config write failed")
	ErrReload         = New(ErrCodeReload, "reload failed")
	ErrControlChannel = New(ErrCodeControlChannel, "control channel failed")
	ErrUnknown        = New(ErrCodeUnknown, "unknown error")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the outermost *Error in err's chain,
// or ErrCodeUnknown if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeUnknown
}

// NewInvalidDomainError reports a domain rejected by a list's acceptance rules.
func NewInvalidDomainError(domain string) *Error {
	return New(ErrCodeInvalidDomain, fmt.Sprintf("invalid domain %q", domain))
}

// NewAlreadyExistsError reports a duplicate list entry.
func NewAlreadyExistsError(list, domain string) *Error {
	return New(ErrCodeAlreadyExists, fmt.Sprintf("%q is already in %s", domain, list))
}

// NewNotFoundError reports a missing list entry.
func NewNotFoundError(list, domain string) *Error {
	return New(ErrCodeNotFound, fmt.Sprintf("%q is not in %s", domain, list))
}

// NewConfigWriteError creates a new configuration write error.
func NewConfigWriteError(message string, cause error) *Error {
	return Wrap(ErrCodeConfigWrite, message, cause)
}

// NewReloadError creates a new gravity reload error.
func NewReloadError(message string, cause error) *Error {
	return Wrap(ErrCodeReload, message, cause)
}

// NewControlChannelError creates a new resolver control channel error.
func NewControlChannelError(message string, cause error) *Error {
	return Wrap(ErrCodeControlChannel, message, cause)
}

// NewUnknownError creates a new error for unexpected conditions.
func NewUnknownError(message string, cause error) *Error {
	return Wrap(ErrCodeUnknown, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewSettingsError creates a new settings store error.
func NewSettingsError(message string, cause error) *Error {
	return Wrap(ErrCodeSettings, message, cause)
}

// NewStorageError creates a new list storage error.
func NewStorageError(message string, cause error) *Error {
	return Wrap(ErrCodeStorage, message, cause)
}
