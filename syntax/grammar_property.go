package syntax

// property parses `Ident (subproperty)*`, wrapped in a Property node.
// Returns false without committing if not at an Ident.
func property(p *Parser) (CompletedMarker, bool) {
	if !p.At(Ident) {
		return CompletedMarker{}, false
	}
	m := p.Start()
	p.Bump()

	for subproperty(p) {
	}

	return m.Complete(p, Property), true
}

// subproperty parses a single `.` Ident pair. A trailing `.` with no
// following Ident is still consumed: the Ident expectation fails and an
// error is recorded, but the dot itself is accounted for, so partial
// input like `host.online.` still produces a usable Property node.
func subproperty(p *Parser) bool {
	if !p.At(Period) {
		return false
	}
	p.Bump()
	p.Expect(Ident)
	return true
}
