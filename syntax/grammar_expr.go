package syntax

// compoundOp identifies which infix operator is at the current position
// and its binding power, used to drive the precedence-climbing loop in
// exprBindingPower. `+` binds tighter than `,`; both are left-associative.
type compoundOp struct {
	left, right int
}

func parseCompoundOp(p *Parser) (compoundOp, bool) {
	switch {
	case p.At(Plus):
		return compoundOp{left: 3, right: 4}, true
	case p.At(Comma):
		return compoundOp{left: 1, right: 2}, true
	default:
		return compoundOp{}, false
	}
}

// expr parses a full expression: a left-hand side (parenthesized
// expression or clause) optionally followed by a chain of infix `+`/`,`
// operators, using precedence climbing via exprBindingPower.
func expr(p *Parser) (CompletedMarker, bool) {
	return exprBindingPower(p, 0)
}

func exprBindingPower(p *Parser, minPower int) (CompletedMarker, bool) {
	lhs, ok := lhs(p)
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		op, ok := parseCompoundOp(p)
		if !ok {
			break
		}
		if op.left < minPower {
			break
		}

		p.Bump()

		_, rhsOK := exprBindingPower(p, op.right)
		wrap := lhs.Precede(p)
		lhs = wrap.Complete(p, InfixExpr)

		if !rhsOK {
			break
		}
	}

	return lhs, true
}

func lhs(p *Parser) (CompletedMarker, bool) {
	if cm, ok := parenExpr(p); ok {
		return cm, true
	}
	return clause(p)
}

// parenExpr parses `(` expr `)`. The closing paren belongs to the
// recovery set, so a missing inner expression still lets the enclosing
// production resynchronize at `)` instead of eating past it.
func parenExpr(p *Parser) (CompletedMarker, bool) {
	if !p.At(LParen) {
		return CompletedMarker{}, false
	}
	m := p.Start()
	p.Bump()
	p.ExpectOne(expr)
	p.Expect(RParen)
	return m.Complete(p, ParenExpr), true
}

// clause parses `property : [operator] operand`, wrapped in a Clause node.
// Returns false without committing if no property is present.
func clause(p *Parser) (CompletedMarker, bool) {
	prop, ok := property(p)
	if !ok {
		return CompletedMarker{}, false
	}
	m := prop.Precede(p)

	p.Expect(Colon)
	operator(p)
	p.ExpectOne(operand)

	return m.Complete(p, Clause), true
}
