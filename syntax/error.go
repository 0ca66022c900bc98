package syntax

import (
	"fmt"
	"strings"
)

// ParseError is a single diagnostic produced while parsing: the set of
// kinds that would have been accepted at a position, what was actually
// found there (absent at end of input), and the span the error covers.
type ParseError struct {
	Expected []Kind
	Found    Kind
	HasFound bool
	Span     Span
}

// Error implements the error interface, rendering e.g.
// "At 4..5, expected ':', found '+'" or, at end of input (where the span is
// that of the last token), "At 11..12, expected ident".
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "At %s, expected %s", e.Span, friendlyList(e.Expected))
	if e.HasFound {
		fmt.Fprintf(&b, ", found %s", quoted(e.Found))
	}
	return b.String()
}

// quoted renders a kind the way it reads in a diagnostic: punctuation
// kinds get single-quoted glyphs (`'+'`, `'!~'`), category kinds stay bare
// words (`ident`, `boolean`).
func quoted(k Kind) string {
	if k.isPunctuation() {
		return "'" + k.name() + "'"
	}
	return k.name()
}

// friendlyList renders kinds as an English alternation: empty for none, the
// bare kind for one, and an Oxford-comma "a, b, or c" for more — matching
// the comma-before-or form even at exactly two items ("a, or b"), not the
// more common two-item "a or b".
func friendlyList(kinds []Kind) string {
	switch len(kinds) {
	case 0:
		return ""
	case 1:
		return quoted(kinds[0])
	default:
		var b strings.Builder
		b.WriteString(quoted(kinds[0]))
		for _, k := range kinds[1 : len(kinds)-1] {
			b.WriteString(", ")
			b.WriteString(quoted(k))
		}
		b.WriteString(", or ")
		b.WriteString(quoted(kinds[len(kinds)-1]))
		return b.String()
	}
}
