package syntax

import "fmt"

// Span is a half-open byte range into the original input: [Start, End).
//
// Adapted from typst-syntax's span.rs, trading its numbered-span machinery
// (built for incremental re-editing) for a plain range: FQL parses are
// one-shot, so a range that shifts on every keystroke isn't a concern here.
type Span struct {
	Start int
	End   int
}

// Len returns the width of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.IsEmpty() && other.Start == 0 && other.End == 0 {
		return s
	}
	if s.IsEmpty() && s.Start == 0 && s.End == 0 {
		return other
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// String implements fmt.Stringer, rendering e.g. "0..16".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned is implemented by anything with a known location in the source text.
type Spanned interface {
	Span() Span
}
