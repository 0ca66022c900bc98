package syntax

// literalKinds lists the literal tokens in the order they should be
// reported in a diagnostic: boolean, string, integer.
var literalKinds = LiteralKinds

// literal parses a single String, Integer, or Boolean token, wrapped in a
// Literal node. Returns false without committing if the current token
// isn't one of those kinds.
func literal(p *Parser) (CompletedMarker, bool) {
	if !p.AtSet(literalKinds) {
		return CompletedMarker{}, false
	}
	m := p.Start()
	p.Bump()
	return m.Complete(p, Literal), true
}
