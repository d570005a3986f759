// Package skinerr defines the kinds of errors returned while reading,
// writing and rendering skins.
//
// Every error produced by this module matches exactly one kind with
// errors.Is, e.g. errors.Is(err, skinerr.ErrNotFound). Out of bounds errors
// additionally match ErrArgument.
package skinerr

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIO          = stderrors.New("i/o error")
	ErrArchive     = stderrors.New("archive error")
	ErrNotFound    = stderrors.New("not found")
	ErrCodec       = stderrors.New("image error")
	ErrArgument    = stderrors.New("argument error")
	ErrOutOfBounds = stderrors.New("out of bounds")
	ErrFormat      = stderrors.New("invalid format")
)

// kindError attaches a kind to a wrapped cause.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.err
}

func (e *kindError) Is(target error) bool {
	if target == e.kind {
		return true
	}
	return e.kind == ErrOutOfBounds && target == ErrArgument
}

func newKind(kind error, cause error, format string, args ...interface{}) error {
	if cause == nil {
		cause = kind
	}
	return &kindError{kind: kind, err: errors.Wrapf(cause, format, args...)}
}

// IO wraps a file system failure.
func IO(err error, format string, args ...interface{}) error {
	return newKind(ErrIO, err, format, args...)
}

// Archive wraps a container format failure.
func Archive(err error, format string, args ...interface{}) error {
	return newKind(ErrArchive, err, format, args...)
}

// Codec wraps an image decoding or encoding failure.
func Codec(err error, format string, args ...interface{}) error {
	return newKind(ErrCodec, err, format, args...)
}

// NotFound reports that the named file or entry does not exist.
func NotFound(what string) error {
	return newKind(ErrNotFound, nil, "%s", what)
}

// Argument reports an invalid identifier or parameter.
func Argument(format string, args ...interface{}) error {
	return newKind(ErrArgument, nil, format, args...)
}

// OutOfBounds reports a destination rectangle that does not fit its canvas.
func OutOfBounds(format string, args ...interface{}) error {
	return newKind(ErrOutOfBounds, nil, format, args...)
}

// FormatError is a grammar violation in a text configuration file.
type FormatError struct {
	// Line is 1-based. Zero means the position is unknown.
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid format: %s", e.Msg)
	}
	return fmt.Sprintf("invalid format on line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Formatf returns a *FormatError for the given 1-based line.
func Formatf(line int, format string, args ...interface{}) error {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is of the not found kind.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
