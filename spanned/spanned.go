package spanned

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// FS is the file system all source files are read through, both at load
// time and when a span or report is rendered. Tests swap in an
// in-memory implementation.
var FS afero.Fs = afero.NewOsFs()

// readSource reads one source file through FS.
func readSource(path string) (string, error) {
	data, err := afero.ReadFile(FS, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Spanned couples a content value with the span it was derived from.
type Spanned[T any] struct {
	Span    Span
	Content T
}

// NewSpanned couples content with sp.
func NewSpanned[T any](content T, sp Span) Spanned[T] {
	return Spanned[T]{Span: sp, Content: content}
}

// DummySpanned couples content with the dummy span, for values that
// have no source.
func DummySpanned[T any](content T) Spanned[T] {
	return Spanned[T]{Span: DummySpan(), Content: content}
}

// HereSpanned couples content with the caller's own source line.
func HereSpanned[T any](content T) Spanned[T] {
	return Spanned[T]{Span: hereSpan(1), Content: content}
}

// MapSpanned transforms the content while keeping the span.
func MapSpanned[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Span: s.Span, Content: f(s.Content)}
}

// Err converts the value into a single frame error chain at its span.
// Content that already is an error is kept as is, anything else becomes
// its formatted text.
func (s Spanned[T]) Err() *Error {
	return ErrorOf(s)
}

// Report renders the value as a one frame annotated report.
func (s Spanned[T]) Report() string {
	return ErrorOf(s).Error()
}

// ReadFile reads path through FS and spans the whole content. Files too
// large for span offsets are rejected. On failure the returned value
// still carries a zero width span at path, so callers can wrap the
// error with a location.
func ReadFile(path string) (Spanned[[]byte], error) {
	placeholder := Spanned[[]byte]{Span: NewSpan(0, 0, path)}
	if info, err := FS.Stat(path); err == nil && info.Size() >= int64(dummyOffset) {
		return placeholder, fmt.Errorf("%s: file too large to span (%d bytes)", path, info.Size())
	}
	data, err := afero.ReadFile(FS, path)
	if err != nil {
		return placeholder, err
	}
	if len(data) >= int(dummyOffset) {
		return placeholder, fmt.Errorf("%s: file too large to span (%d bytes)", path, len(data))
	}
	return Spanned[[]byte]{Span: NewSpan(0, len(data), path), Content: data}, nil
}

// ReadFileString reads path like ReadFile and additionally requires the
// content to be valid UTF-8.
func ReadFileString(path string) (Spanned[string], error) {
	data, err := ReadFile(path)
	if err != nil {
		return Spanned[string]{Span: data.Span}, err
	}
	text, terr := ToText(data)
	if terr != nil {
		return Spanned[string]{Span: data.Span}, fmt.Errorf("%s: invalid UTF-8 at byte %d", path, terr.Span().Start())
	}
	return text, nil
}

// ToText converts raw bytes to text, requiring valid UTF-8. On failure
// the chain's span collapses to the first offending byte.
func ToText(s Spanned[[]byte]) (Spanned[string], *Error) {
	for i := 0; i < len(s.Content); {
		r, size := utf8.DecodeRune(s.Content[i:])
		if r == utf8.RuneError && size == 1 {
			return Spanned[string]{}, NewMessage("invalid UTF-8 sequence", sliceSpan(s.Span, i, i))
		}
		i += size
	}
	return Spanned[string]{Span: s.Span, Content: string(s.Content)}, nil
}
