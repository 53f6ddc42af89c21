package spanned

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The operations below are the string API of Spanned values. Every
// derived value's span is narrowed to the exact bytes it covers, so a
// report issued much later still underlines the right source range.
// Delimiters and trimmed bytes belong to neither side.

// sliceSpan narrows sp to the byte range [from, to) of its content.
// The dummy span stays dummy, synthesized text has no source to narrow.
func sliceSpan(sp Span, from, to int) Span {
	if sp.IsDummy() {
		return sp
	}
	return sp.GrowStartBy(from).SetEndRelativeToStart(to - from)
}

// slice returns the sub value covering content[from:to].
func slice(s Spanned[string], from, to int) Spanned[string] {
	return Spanned[string]{
		Span:    sliceSpan(s.Span, from, to),
		Content: s.Content[from:to],
	}
}

// SplitOnce splits around the first occurrence of delim. The delimiter
// belongs to neither side's content nor span. ok is false when delim
// does not occur.
func SplitOnce(s Spanned[string], delim string) (left, right Spanned[string], ok bool) {
	before, _, found := strings.Cut(s.Content, delim)
	if !found {
		return Spanned[string]{}, Spanned[string]{}, false
	}
	left = slice(s, 0, len(before))
	right = slice(s, len(before)+len(delim), len(s.Content))
	return left, right, true
}

// SplitAt splits immediately before the byte at pos. The two halves
// partition the input exactly. It panics when pos is outside [0, len],
// mirroring the span arithmetic it is built on.
func SplitAt(s Spanned[string], pos int) (left, right Spanned[string]) {
	if pos < 0 || pos > len(s.Content) {
		panic(fmt.Sprintf("spanned: SplitAt(%d) out of range for %d bytes", pos, len(s.Content)))
	}
	return slice(s, 0, pos), slice(s, pos, len(s.Content))
}

// TakeWhile splits before the first rune for which pred fails. ok is
// false when pred never fails, including on empty content.
func TakeWhile(s Spanned[string], pred func(rune) bool) (taken, rest Spanned[string], ok bool) {
	at := -1
	for i, r := range s.Content {
		if !pred(r) {
			at = i
			break
		}
	}
	if at < 0 {
		return Spanned[string]{}, Spanned[string]{}, false
	}
	return slice(s, 0, at), slice(s, at, len(s.Content)), true
}

// Trim removes leading and trailing Unicode whitespace.
func Trim(s Spanned[string]) Spanned[string] {
	return TrimStart(TrimEnd(s))
}

// TrimStart removes leading Unicode whitespace.
func TrimStart(s Spanned[string]) Spanned[string] {
	rest := strings.TrimLeftFunc(s.Content, unicode.IsSpace)
	return slice(s, len(s.Content)-len(rest), len(s.Content))
}

// TrimEnd removes trailing Unicode whitespace.
func TrimEnd(s Spanned[string]) Spanned[string] {
	rest := strings.TrimRightFunc(s.Content, unicode.IsSpace)
	return slice(s, 0, len(rest))
}

// TrimStartMatches removes every leading occurrence of c.
func TrimStartMatches(s Spanned[string], c rune) Spanned[string] {
	rest := strings.TrimLeft(s.Content, string(c))
	return slice(s, len(s.Content)-len(rest), len(s.Content))
}

// StripPrefix removes prefix. ok is false when the content does not
// start with it.
func StripPrefix(s Spanned[string], prefix string) (Spanned[string], bool) {
	if !strings.HasPrefix(s.Content, prefix) {
		return Spanned[string]{}, false
	}
	return slice(s, len(prefix), len(s.Content)), true
}

// StripSuffix removes suffix. ok is false when the content does not end
// with it.
func StripSuffix(s Spanned[string], suffix string) (Spanned[string], bool) {
	if !strings.HasSuffix(s.Content, suffix) {
		return Spanned[string]{}, false
	}
	return slice(s, 0, len(s.Content)-len(suffix)), true
}

// StartsWith reports whether the content begins with prefix.
func StartsWith(s Spanned[string], prefix string) bool {
	return strings.HasPrefix(s.Content, prefix)
}

// IsEmpty reports whether the content holds no bytes.
func IsEmpty(s Spanned[string]) bool {
	return len(s.Content) == 0
}

// Chars iterates the runes of the content. Each rune carries a zero
// width span at its own byte offset, precise enough to point a caret at
// one character. The sequence can be ranged over more than once.
func Chars(s Spanned[string]) iter.Seq[Spanned[rune]] {
	return func(yield func(Spanned[rune]) bool) {
		for i, r := range s.Content {
			if !yield(Spanned[rune]{Span: sliceSpan(s.Span, i, i), Content: r}) {
				return
			}
		}
	}
}

// SplitChar iterates the segments between occurrences of delim. For n
// delimiters it always yields n+1 segments, so leading, trailing, and
// adjacent delimiters produce empty ones.
func SplitChar(s Spanned[string], delim rune) iter.Seq[Spanned[string]] {
	return func(yield func(Spanned[string]) bool) {
		start := 0
		for i, r := range s.Content {
			if r != delim {
				continue
			}
			if !yield(slice(s, start, i)) {
				return
			}
			start = i + utf8.RuneLen(delim)
		}
		yield(slice(s, start, len(s.Content)))
	}
}

// Lines iterates the physical lines of the content. Both \n and \r\n
// terminate a line; terminators belong to no line's content or span,
// and a trailing terminator does not produce an empty final line.
func Lines(s Spanned[string]) iter.Seq[Spanned[string]] {
	return func(yield func(Spanned[string]) bool) {
		start := 0
		for start < len(s.Content) {
			end := len(s.Content)
			next := end
			if nl := strings.IndexByte(s.Content[start:], '\n'); nl >= 0 {
				end = start + nl
				next = end + 1
				if end > start && s.Content[end-1] == '\r' {
					end--
				}
			}
			if !yield(slice(s, start, end)) {
				return
			}
			start = next
		}
	}
}
