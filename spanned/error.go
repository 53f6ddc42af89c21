package spanned

import (
	"errors"
	"fmt"
)

// Error is a chain of located failures. The outermost frame carries the
// most recently added context, the innermost frame the original
// failure. Wrapping allocates a new outer frame that owns the previous
// chain, so a chain can never contain a cycle.
//
// Error satisfies the error interface, and its Error text is the fully
// rendered report.
type Error struct {
	span  Span
	err   error
	cause *Error
}

// Frame is one link of a chain, outermost first in Frames.
type Frame struct {
	Span    Span
	Message string
}

// NewError creates a single frame chain holding err at sp.
func NewError(err error, sp Span) *Error {
	return &Error{span: sp, err: err}
}

// NewMessage creates a single frame chain holding a plain message at sp.
func NewMessage(msg string, sp Span) *Error {
	return &Error{span: sp, err: errors.New(msg)}
}

// Errorf creates a single frame chain holding a formatted message at sp.
func Errorf(sp Span, format string, args ...any) *Error {
	return &Error{span: sp, err: fmt.Errorf(format, args...)}
}

// HereError creates a single frame chain holding err at the caller's
// own source line.
func HereError(err error) *Error {
	return &Error{span: hereSpan(1), err: err}
}

// HereMessage creates a single frame chain holding a plain message at
// the caller's own source line.
func HereMessage(msg string) *Error {
	return &Error{span: hereSpan(1), err: errors.New(msg)}
}

// ErrorOf converts a located value into a single frame chain at its
// span. Content that already is an error is kept as is, anything else
// becomes its formatted text.
func ErrorOf[T any](s Spanned[T]) *Error {
	return &Error{span: s.Span, err: contentError(s.Content)}
}

// contentError adapts arbitrary content to an error.
func contentError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(v))
}

// Wrap returns a new chain with an outer frame holding err at sp and e
// as its cause.
func (e *Error) Wrap(err error, sp Span) *Error {
	return &Error{span: sp, err: err, cause: e}
}

// WrapMessage returns a new chain with an outer frame holding a plain
// message at sp and e as its cause.
func (e *Error) WrapMessage(msg string, sp Span) *Error {
	return &Error{span: sp, err: errors.New(msg), cause: e}
}

// Wrapf returns a new chain with an outer frame holding a formatted
// message at sp and e as its cause.
func (e *Error) Wrapf(sp Span, format string, args ...any) *Error {
	return &Error{span: sp, err: fmt.Errorf(format, args...), cause: e}
}

// Span returns the outermost frame's span.
func (e *Error) Span() Span {
	return e.span
}

// Message returns the outermost frame's message.
func (e *Error) Message() string {
	return e.err.Error()
}

// Frames returns every link of the chain, outermost first.
func (e *Error) Frames() []Frame {
	var frames []Frame
	for cur := e; cur != nil; cur = cur.cause {
		frames = append(frames, Frame{Span: cur.span, Message: cur.err.Error()})
	}
	return frames
}

// Unwrap exposes both the outer frame's own error and the rest of the
// chain to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

// Error renders the complete annotated report, reading every referenced
// file once. Output is colored subject to the process wide color
// capability.
func (e *Error) Error() string {
	return renderDocument(e.Document())
}
