package syntax

// Set is a bitset of syntax kinds for fast membership tests where order
// doesn't matter (such as RecoverySet below). It is NOT used for the
// parser's expected-kind accumulator: that accumulator must preserve
// call-site order for diagnostics (see OperatorKinds, LiteralKinds below,
// and error.go), which a bitset can't reconstruct once the bits are mixed.
//
// Based on rust-analyzer's TokenSet:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/token_set.rs
type Set uint64

// NewSet builds a Set containing the given kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add inserts kind into the set and returns the new set.
func (s Set) Add(kind Kind) Set {
	return s | (1 << kind)
}

// Contains reports whether the set contains kind.
func (s Set) Contains(kind Kind) bool {
	return s&(1<<kind) != 0
}

// Union combines two sets.
func (s Set) Union(other Set) Set {
	return s | other
}

// IsEmpty reports whether the set holds no kinds.
func (s Set) IsEmpty() bool {
	return s == 0
}

// RecoverySet holds the tokens at which the parser's error recovery
// resynchronizes instead of consuming the offending token. FQL has exactly
// one: the closing paren of a parenthesized expression.
var RecoverySet = NewSet(RParen)

// OperatorKinds lists the clause-operator tokens in the order they should
// appear in an "expected ..." diagnostic: `! > < >= <= ~ !~`. Kept as an
// explicit slice, not a Set, because AtSet must push expected kinds onto
// the accumulator in this exact order.
var OperatorKinds = []Kind{Bang, Gt, Lt, Ge, Le, Tilde, BangTilde}

// LiteralKinds lists the literal tokens in diagnostic order: boolean,
// string, integer. Note this differs from Kind's declaration order
// (String, Integer, Boolean), which exists for lexer/tree-printing reasons
// unrelated to how a misplaced literal should be reported.
var LiteralKinds = []Kind{Boolean, String, Integer}
