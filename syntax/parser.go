package syntax

// recoveryKinds holds the tokens at which Parser.Error resynchronizes
// instead of consuming the offending token. FQL has exactly one: the
// closing paren of a parenthesized expression.
var recoveryKinds = []Kind{RParen}

// Parser turns a token vector into a flat event stream (see event.go).
// It never builds a tree itself — that's the sink's job — which is what
// lets a Pratt production retroactively wrap an already-parsed left
// operand in a node whose kind wasn't known until an infix operator
// showed up (see Marker.Precede).
type Parser struct {
	src          *source
	events       []event
	expectedKinds []Kind
}

func newParser(tokens []Token) *Parser {
	return &Parser{src: newSource(tokens)}
}

// At reports whether the current token has the given kind, recording kind
// in the expected-kinds accumulator regardless of the outcome.
func (p *Parser) At(kind Kind) bool {
	p.expectedKinds = append(p.expectedKinds, kind)
	k, ok := p.src.peekKind()
	return ok && k == kind
}

// AtSet reports whether the current token's kind is one of kinds. On a
// miss, every kind in kinds is appended to the expected-kinds
// accumulator (on a hit, nothing is appended, since the match itself
// will be consumed by a bump that clears the accumulator).
func (p *Parser) AtSet(kinds []Kind) bool {
	atSet := p.atSetNoExpectedKinds(kinds)
	if !atSet {
		p.expectedKinds = append(p.expectedKinds, kinds...)
	}
	return atSet
}

func (p *Parser) atSetNoExpectedKinds(kinds []Kind) bool {
	k, ok := p.src.peekKind()
	if !ok {
		return false
	}
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Expect consumes the current token if it has the given kind, else
// records an error.
func (p *Parser) Expect(kind Kind) {
	if p.At(kind) {
		p.Bump()
	} else {
		p.Error()
	}
}

// ExpectOne runs fn and, if it reports no match, records an error. This is
// Expect's counterpart for productions rather than single tokens.
func (p *Parser) ExpectOne(fn func(*Parser) (CompletedMarker, bool)) (CompletedMarker, bool) {
	cm, ok := fn(p)
	if !ok {
		p.Error()
	}
	return cm, ok
}

// Bump advances past the current token, emitting a token event and
// clearing the expected-kinds accumulator — the position a bump leaves
// the parser at has no pending expectations of its own yet.
func (p *Parser) Bump() {
	p.expectedKinds = p.expectedKinds[:0]
	if _, ok := p.src.next(); !ok {
		panic("bump called with no current token")
	}
	p.events = append(p.events, tokenEvent())
}

// Start opens a new node at the current position, returning a Marker that
// must eventually be completed.
func (p *Parser) Start() Marker {
	position := len(p.events)
	p.events = append(p.events, placeholderEvent())
	return newMarker(position)
}

// Error records a ParseError carrying the current expected-kinds
// accumulator and what was actually found (or, at end of input, the
// range of the last token). If the current token is not in the recovery
// set and input remains, it's wrapped in an Error node so the parse
// always makes progress; a recovery-set token is left for the enclosing
// production to consume on resynchronization.
func (p *Parser) Error() {
	var found Kind
	var hasFound bool
	var rng Span
	if tok, ok := p.src.peekToken(); ok {
		found, hasFound, rng = tok.Kind, true, tok.Range
	} else if last, ok := p.src.lastTokenRange(); ok {
		rng = last
	}

	expected := p.expectedKinds
	p.expectedKinds = nil
	p.events = append(p.events, errorEvent(&ParseError{
		Expected: expected,
		Found:    found,
		HasFound: hasFound,
		Span:     rng,
	}))

	if !p.atSetNoExpectedKinds(recoveryKinds) && !p.AtEnd() {
		m := p.Start()
		p.Bump()
		m.Complete(p, Error)
	}
}

// AtEnd reports whether the cursor has consumed every token.
func (p *Parser) AtEnd() bool {
	_, ok := p.src.peekKind()
	return !ok
}

// parseWith drives root through the parser starting at Root, returning the
// finished green tree and the accumulated diagnostics.
//
// After root returns, any tokens it didn't consume are drained and wrapped
// one at a time in Error nodes. A grammar that fully matched the input
// never exercises this; it exists so that trailing garbage after an
// otherwise-complete expression (e.g. an extra token following a clause
// whose operand production already gave up) still ends up inside Root
// instead of silently vanishing from the tree, which would violate the
// round-trip invariant that every input byte is reconstructible from the
// CST.
func parseWith(text string, root func(*Parser) (CompletedMarker, bool)) (*Node, []*ParseError) {
	tokens := Lex(text)
	p := newParser(tokens)

	m := p.Start()
	if !p.AtEnd() {
		root(p)
	}
	for !p.AtEnd() {
		p.recoverTrailing()
	}
	m.Complete(p, Root)

	// Every Start must have been completed by now; a placeholder left in
	// the stream is a marker the grammar opened and never finished.
	for _, ev := range p.events {
		if ev.kind == "placeholder" {
			panic("a Marker was never completed")
		}
	}

	sink := newSink(tokens, p.events)
	return sink.finish()
}

// recoverTrailing records an error for the current token and unconditionally
// wraps it in an Error node, ignoring the recovery set — there is no
// enclosing production left to resynchronize for once the root grammar has
// already returned.
func (p *Parser) recoverTrailing() {
	tok, ok := p.src.peekToken()
	if !ok {
		return
	}
	expected := p.expectedKinds
	p.expectedKinds = nil
	p.events = append(p.events, errorEvent(&ParseError{
		Expected: expected,
		Found:    tok.Kind,
		HasFound: true,
		Span:     tok.Range,
	}))

	m := p.Start()
	p.Bump()
	m.Complete(p, Error)
}
