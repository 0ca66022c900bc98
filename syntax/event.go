package syntax

// event is one step of the parser's output stream. The parser never
// builds a tree directly; it records intent as a flat sequence of events,
// which a sink (sink.go) later replays into a green tree. Decoupling the
// two is what lets a forward-parent StartNode retroactively wrap a
// left-hand side that was already fully parsed by the time the wrapping
// node's kind is known (see marker.go).
type event struct {
	kind string // "start", "token", "finish", "error", "placeholder"

	startKind      Kind
	forwardParent  int // distance to the real parent's StartNode event; 0 means none
	hasForwardParent bool

	err *ParseError
}

func startEvent(kind Kind) event    { return event{kind: "start", startKind: kind} }
func tokenEvent() event             { return event{kind: "token"} }
func finishEvent() event            { return event{kind: "finish"} }
func errorEvent(e *ParseError) event { return event{kind: "error", err: e} }
func placeholderEvent() event       { return event{kind: "placeholder"} }
