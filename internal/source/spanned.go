package source

// Spanned pairs a value with the span it covers in the source text.
// Consumers that only care about structure read V and ignore the span.
type Spanned[T any] struct {
	V    T
	Span Span
}

// At wraps a value with its span.
func At[T any](v T, span Span) Spanned[T] {
	return Spanned[T]{V: v, Span: span}
}

// Synthesized wraps a value produced by a tool rather than parsed from text.
func Synthesized[T any](v T) Spanned[T] {
	return Spanned[T]{V: v}
}

// Map converts the wrapped value while keeping the span.
func Map[T, U any](s Spanned[T], fn func(T) U) Spanned[U] {
	return Spanned[U]{V: fn(s.V), Span: s.Span}
}
