package spanned

import (
	"strconv"
)

// ParseInt interprets the content as a base 10 integer.
func ParseInt(s Spanned[string]) (Spanned[int64], *Error) {
	v, err := strconv.ParseInt(s.Content, 10, 64)
	if err != nil {
		return Spanned[int64]{}, Errorf(s.Span, "expected an integer, found %q", s.Content)
	}
	return NewSpanned(v, s.Span), nil
}

// ParseUint interprets the content as a base 10 unsigned integer.
func ParseUint(s Spanned[string]) (Spanned[uint64], *Error) {
	v, err := strconv.ParseUint(s.Content, 10, 64)
	if err != nil {
		return Spanned[uint64]{}, Errorf(s.Span, "expected an unsigned integer, found %q", s.Content)
	}
	return NewSpanned(v, s.Span), nil
}

// ParseFloat interprets the content as a decimal number.
func ParseFloat(s Spanned[string]) (Spanned[float64], *Error) {
	v, err := strconv.ParseFloat(s.Content, 64)
	if err != nil {
		return Spanned[float64]{}, Errorf(s.Span, "expected a number, found %q", s.Content)
	}
	return NewSpanned(v, s.Span), nil
}

// ParseBool interprets the content as the literal true or false.
// Unlike strconv.ParseBool, no other spellings are accepted.
func ParseBool(s Spanned[string]) (Spanned[bool], *Error) {
	switch s.Content {
	case "true":
		return NewSpanned(true, s.Span), nil
	case "false":
		return NewSpanned(false, s.Span), nil
	}
	return Spanned[bool]{}, Errorf(s.Span, "expected true or false, found %q", s.Content)
}

// ParseWith interprets the content with a caller supplied parser. The
// parser's own error becomes the chain's leaf at the value's span.
func ParseWith[T any](s Spanned[string], parse func(string) (T, error)) (Spanned[T], *Error) {
	v, err := parse(s.Content)
	if err != nil {
		return Spanned[T]{}, NewError(err, s.Span)
	}
	return NewSpanned(v, s.Span), nil
}
