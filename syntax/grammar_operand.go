package syntax

// operand parses either a bracketed exact-match operand (`[` optionally
// followed by a string literal, then `]`) or a plain literal, wrapping
// either shape in an Operand node. The operand is considered exact iff its
// first child is LBracket, even if the closing RBracket is missing — see
// OperandNode.IsExact in ast.go.
func operand(p *Parser) (CompletedMarker, bool) {
	if p.At(LBracket) {
		m := p.Start()
		p.Bump()
		if p.At(String) {
			literal(p)
		}
		p.Expect(RBracket)
		return m.Complete(p, Operand), true
	}

	lit, ok := literal(p)
	if !ok {
		return CompletedMarker{}, false
	}
	m := lit.Precede(p)
	return m.Complete(p, Operand), true
}
