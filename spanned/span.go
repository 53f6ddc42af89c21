// Package spanned tracks the exact byte ranges parsed values came from
// and renders failures as annotated source reports.
//
// Values read from a file carry a Span. String operations narrow both
// the text and the span in lockstep, so a value that has been split,
// trimmed, and parsed still points at the precise bytes it came from.
// Failures become an Error chain whose rendered form underlines every
// location that contributed to the problem.
package spanned

import (
	"cmp"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"
)

// dummyOffset is reserved for the dummy span and never valid in a real one.
const dummyOffset = ^uint32(0)

// Span identifies the byte range [Start, End) within one source file.
// Spans are immutable; the arithmetic methods return new values and
// panic when an adjustment would break the Start <= End invariant,
// since that is always a programming error in the caller.
type Span struct {
	file  string
	start uint32
	end   uint32
}

// NewSpan creates a span for the byte range [start, end) of file.
// It panics when the range is negative, inverted, or too large to
// represent.
func NewSpan(start, end int, file string) Span {
	if start < 0 || end < start {
		panic(fmt.Sprintf("spanned: invalid span %d..%d for %s", start, end, file))
	}
	if end >= int(dummyOffset) {
		panic(fmt.Sprintf("spanned: span end %d for %s exceeds the representable range", end, file))
	}
	return Span{file: file, start: uint32(start), end: uint32(end)}
}

// DummySpan returns the placeholder span for values that have no source,
// such as synthesized defaults. It equals no span but another dummy and
// never resolves to a file.
func DummySpan() Span {
	return Span{start: dummyOffset, end: dummyOffset}
}

// Here returns a span covering the line of source code that called it.
// When the calling file cannot be read back the span degrades to a zero
// width range at the start of that file.
func Here() Span {
	return hereSpan(1)
}

// hereSpan resolves the position skip frames above its caller. It maps
// the call to that whole source line so the report can underline it.
func hereSpan(skip int) Span {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return DummySpan()
	}
	text, err := readSource(file)
	if err != nil {
		return NewSpan(0, 0, file)
	}
	start := 0
	for l := 1; l < line; l++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return NewSpan(0, 0, file)
		}
		start += nl + 1
	}
	end := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		end = start + nl
	}
	if end > start && text[end-1] == '\r' {
		end--
	}
	return NewSpan(start, end, file)
}

// IsDummy reports whether the span is the placeholder span.
func (s Span) IsDummy() bool {
	return s.file == "" && s.start == dummyOffset && s.end == dummyOffset
}

// File returns the path of the file the span points into.
func (s Span) File() string {
	return s.file
}

// Start returns the byte offset the span begins at.
func (s Span) Start() int {
	return int(s.start)
}

// End returns the byte offset just past the span.
func (s Span) End() int {
	return int(s.end)
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return int(s.end - s.start)
}

// ShrinkEndBy moves the end n bytes toward the start.
func (s Span) ShrinkEndBy(n int) Span {
	end := int64(s.end) - int64(n)
	if n < 0 || end < int64(s.start) {
		panic(fmt.Sprintf("spanned: ShrinkEndBy(%d) underflows span %d..%d", n, s.start, s.end))
	}
	s.end = uint32(end)
	return s
}

// GrowStartBy moves the start n bytes toward the end.
func (s Span) GrowStartBy(n int) Span {
	start := int64(s.start) + int64(n)
	if n < 0 || start > int64(s.end) {
		panic(fmt.Sprintf("spanned: GrowStartBy(%d) overflows span %d..%d", n, s.start, s.end))
	}
	s.start = uint32(start)
	return s
}

// SetEndRelativeToStart places the end n bytes past the start. The end
// may only move inward: start+n past the current end panics.
func (s Span) SetEndRelativeToStart(n int) Span {
	end := int64(s.start) + int64(n)
	if n < 0 || end > int64(s.end) {
		panic(fmt.Sprintf("spanned: SetEndRelativeToStart(%d) out of range for span %d..%d", n, s.start, s.end))
	}
	s.end = uint32(end)
	return s
}

// ShrinkToStart collapses the span to a zero width range at its start.
func (s Span) ShrinkToStart() Span {
	s.end = s.start
	return s
}

// ShrinkToEnd collapses the span to a zero width range at its end.
func (s Span) ShrinkToEnd() Span {
	s.start = s.end
	return s
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= int(s.start) && offset < int(s.end)
}

// Compare orders spans by file, then start, then end.
func (s Span) Compare(o Span) int {
	return cmp.Or(
		strings.Compare(s.file, o.file),
		cmp.Compare(s.start, o.start),
		cmp.Compare(s.end, o.end),
	)
}

// String renders the span as file:line:column. The position is
// recomputed from the file contents on demand, so it reflects the file
// as it is now. Output degrades to file:line when the span's line is
// not valid UTF-8, and to the bare path when the file cannot be read or
// no longer contains the offset. The dummy span renders as DUMMY_SPAN.
func (s Span) String() string {
	if s.IsDummy() {
		return "DUMMY_SPAN"
	}
	text, err := readSource(s.file)
	if err != nil {
		return s.file
	}
	start := int(s.start)
	if start > len(text) {
		return s.file
	}
	before := text[:start]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	lineEnd := len(text)
	if nl := strings.IndexByte(text[lineStart:], '\n'); nl >= 0 {
		lineEnd = lineStart + nl
	}
	if !utf8.ValidString(text[lineStart:lineEnd]) {
		return fmt.Sprintf("%s:%d", s.file, line)
	}
	col := utf8.RuneCountInString(text[lineStart:start]) + 1
	return fmt.Sprintf("%s:%d:%d", s.file, line, col)
}
