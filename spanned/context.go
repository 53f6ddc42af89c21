package spanned

// The context adapters attach locations to plain errors at API
// boundaries. An err that already is a chain is extended in place;
// anything else first becomes a leaf at the adapter's call site, so no
// failure enters a chain without a location.

// WithContext wraps err with the located value produced by f. A nil err
// returns nil and f is never called.
func WithContext[T any](err error, f func() Spanned[T]) *Error {
	if err == nil {
		return nil
	}
	chain, ok := err.(*Error)
	if !ok {
		chain = NewError(err, hereSpan(1))
	}
	located := f()
	return chain.Wrap(contentError(located.Content), located.Span)
}

// WithPathContext wraps err with msg located at the start of path. Used
// when a whole file operation fails and no finer span exists.
func WithPathContext(err error, path, msg string) *Error {
	if err == nil {
		return nil
	}
	chain, ok := err.(*Error)
	if !ok {
		chain = NewError(err, hereSpan(1))
	}
	return chain.WrapMessage(msg, NewSpan(0, 0, path))
}

// WithMessageContext wraps err with msg located at the caller's own
// source line.
func WithMessageContext(err error, msg string) *Error {
	if err == nil {
		return nil
	}
	at := hereSpan(1)
	chain, ok := err.(*Error)
	if !ok {
		chain = NewError(err, at)
	}
	return chain.WrapMessage(msg, at)
}
