package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "other inside span",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 12, End: 18},
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "other extends end",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 15, End: 30},
			expected: Span{Start: 10, End: 30},
		},
		{
			name:     "other extends start",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 2, End: 12},
			expected: Span{Start: 2, End: 20},
		},
		{
			name:     "disjoint spans",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 40, End: 50},
			expected: Span{Start: 10, End: 50},
		},
		{
			name:     "empty other at start",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 10, End: 10},
			expected: Span{Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	empty := Span{Start: 7, End: 7}
	if !empty.Empty() {
		t.Errorf("expected %v to be empty", empty)
	}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d, want 0", empty.Len())
	}

	full := Span{Start: 3, End: 11}
	if full.Empty() {
		t.Errorf("expected %v to be non-empty", full)
	}
	if full.Len() != 8 {
		t.Errorf("Len() = %d, want 8", full.Len())
	}
}

func TestSpanned_At(t *testing.T) {
	s := At("hello", Span{Start: 1, End: 6})
	if s.V != "hello" {
		t.Errorf("V = %q, want %q", s.V, "hello")
	}
	if s.Span != (Span{Start: 1, End: 6}) {
		t.Errorf("Span = %v, want 1-6", s.Span)
	}

	syn := Synthesized(42)
	if syn.V != 42 || !syn.Span.Empty() {
		t.Errorf("Synthesized() = %+v, want zero span", syn)
	}
}

func TestSpanned_Map(t *testing.T) {
	s := At(5, Span{Start: 2, End: 3})
	got := Map(s, func(v int) int { return v * 2 })
	if got.V != 10 {
		t.Errorf("V = %d, want 10", got.V)
	}
	if got.Span != s.Span {
		t.Errorf("Span = %v, want %v", got.Span, s.Span)
	}
}
