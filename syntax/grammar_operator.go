package syntax

// operatorKinds lists the clause-operator tokens in diagnostic order:
// `! > < >= <= ~ !~`.
var operatorKinds = OperatorKinds

// operator parses a single clause-operator token, wrapped in an Operator
// node. Returns false without committing if not at one of those kinds.
func operator(p *Parser) (CompletedMarker, bool) {
	if !p.AtSet(operatorKinds) {
		return CompletedMarker{}, false
	}
	m := p.Start()
	p.Bump()
	return m.Complete(p, Operator), true
}
