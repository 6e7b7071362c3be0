// Package errors carries scopelink's coded error type. Every failure
// that crosses a package boundary gets an ErrorCode, so tests and
// renderers match on the category instead of on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category. Codes appear in the CLI's
// machine-readable output and must stay stable.
type ErrorCode string

const (
	// General
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Package manifests
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrManifestInvalid  ErrorCode = "MANIFEST_INVALID"

	// Command arguments
	ErrArgumentInvalid ErrorCode = "ARGUMENT_INVALID"

	// Link registry and package manager
	ErrRegistryUnavailable ErrorCode = "REGISTRY_UNAVAILABLE"
	ErrRegistrationFailed  ErrorCode = "REGISTRATION_FAILED"
	ErrConsumerOpFailed    ErrorCode = "CONSUMER_OP_FAILED"
	ErrLockRegenFailed     ErrorCode = "LOCK_REGEN_FAILED"
	ErrReinstallFailed     ErrorCode = "REINSTALL_FAILED"
	ErrCommandFailed       ErrorCode = "COMMAND_FAILED"

	// Filesystem and link slots
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSlotOccupied  ErrorCode = "SLOT_OCCUPIED"
)

// LinkError is the error type scopelink operations return. Code drives
// matching, Message is for humans, and Details carry the paths and
// package names renderers show alongside the message.
type LinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *LinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *LinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches two LinkErrors by code alone, so errors.Is works against
// a template error regardless of message.
func (e *LinkError) Is(target error) bool {
	var other *LinkError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithDetail attaches a named value for renderers to display.
func (e *LinkError) WithDetail(key string, value interface{}) *LinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches several named values at once.
func (e *LinkError) WithDetails(details map[string]interface{}) *LinkError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// New builds a LinkError from a code and a fixed message.
func New(code ErrorCode, message string) *LinkError {
	return &LinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf builds a LinkError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *LinkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap annotates err with a code and message while keeping it
// reachable through errors.Unwrap. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *LinkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// IsErrorCode reports whether err or anything it wraps is a LinkError
// with the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *LinkError
	return errors.As(err, &e) && e.Code == code
}

// GetErrorCode extracts the code from err, or ErrUnknown when no
// LinkError is in the chain.
func GetErrorCode(err error) ErrorCode {
	var e *LinkError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails extracts the detail map from err, or nil when no
// LinkError is in the chain.
func GetErrorDetails(err error) map[string]interface{} {
	var e *LinkError
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
