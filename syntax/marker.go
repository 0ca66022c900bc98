package syntax

// Marker records the event index of a Placeholder emitted by Parser.Start.
// Completing it rewrites that placeholder into a StartNode/FinishNode
// pair. A Marker that is never completed is a programmer error: the
// grammar began a node and never said what it was.
type Marker struct {
	position int
	defused  bool
}

func newMarker(position int) Marker {
	return Marker{position: position}
}

// Complete finalizes the node this marker opened, giving it kind. It
// returns a CompletedMarker that later code can Precede to wrap this node
// inside a new parent.
func (m *Marker) Complete(p *Parser, kind Kind) CompletedMarker {
	ev := &p.events[m.position]
	if ev.kind != "placeholder" {
		panic("marker does not point to a placeholder event")
	}
	*ev = startEvent(kind)
	p.events = append(p.events, finishEvent())
	m.defused = true
	return CompletedMarker{position: m.position}
}

// CompletedMarker is the result of completing a Marker: a node that
// already exists in the event stream at a fixed position.
type CompletedMarker struct {
	position int
}

// Precede opens a new Marker at the end of the event stream and records on
// cm's StartNode event the forward-parent distance to it, so the sink knows
// that cm's node is
// really the child of whatever kind the new marker is eventually completed
// with. This is how a Pratt parser inserts an InfixExpr node around an
// already-parsed left-hand side without having known, at the time it
// parsed that left-hand side, that an infix operator was coming.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newMarker := p.Start()
	ev := &p.events[cm.position]
	if ev.kind != "start" {
		panic("forward_parent target is not a StartNode event")
	}
	ev.hasForwardParent = true
	ev.forwardParent = newMarker.position - cm.position
	return newMarker
}
