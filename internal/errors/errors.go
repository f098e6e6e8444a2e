// Package errors provides standardized error handling for the ImgVault
// application. It defines common error kinds and helper functions for
// consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience.
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error.
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	// Config error kinds
	InvalidConfig
	// GUI error kinds
	DialogUnavailable
	PlatformUnsupported
)

// ApplicationError is the base error type for all application errors.
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message.
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error.
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the error kind.
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// New creates a new application error with an Unknown kind.
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a new formatted application error.
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// NewWithKind creates a new application error with the given kind.
func NewWithKind(msg string, kind ErrorKind, err error) error {
	return &ApplicationError{msg: msg, kind: kind, err: err}
}

// Wrap wraps an error with a message. Wrapping nil returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: kindOf(err)}
}

// Wrapf wraps an error with a formatted message. Wrapping nil returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: kindOf(err)}
}

func kindOf(err error) ErrorKind {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return Unknown
}

// FileError is an application error carrying the path it relates to.
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates an error about a specific file path.
func NewFileError(msg, path string, kind ErrorKind, err error) *FileError {
	full := msg
	if path != "" {
		full = fmt.Sprintf("%s: %s", msg, path)
	}
	return &FileError{
		ApplicationError: ApplicationError{msg: full, kind: kind, err: err},
		path:             path,
	}
}

// Path returns the path the error relates to.
func (e *FileError) Path() string {
	return e.path
}

// IsFileNotFound reports whether err is a file-not-found application error.
func IsFileNotFound(err error) bool {
	return hasKind(err, FileNotFound)
}

// IsInvalidPath reports whether err is an invalid-path application error.
func IsInvalidPath(err error) bool {
	return hasKind(err, InvalidPath)
}

// IsDialogUnavailable reports whether err signals that no dialog backend
// could be shown.
func IsDialogUnavailable(err error) bool {
	return hasKind(err, DialogUnavailable)
}

func hasKind(err error, kind ErrorKind) bool {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.kind == kind
	}
	return false
}
