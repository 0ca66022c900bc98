package syntax

// ParseFilter lexes and parses text as a filter expression, returning the
// green tree root (kind Root) and whatever diagnostics were raised. It
// never fails: empty or wholly malformed input still yields a Root node,
// possibly with no children and no errors (empty input) or with every
// byte wrapped in Error nodes (garbage input).
func ParseFilter(text string) (*Node, []*ParseError) {
	return parseWith(text, expr)
}
