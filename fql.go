// Package fql parses the filter query language: clauses of the form
// `property:[operator]operand` joined by the infix compounds `+` (and)
// and `,` (or), e.g. `host.online:true+tag:['prod']`.
//
// Parse never fails. Malformed input still produces a usable tree with
// the damage recorded as diagnostics, so a caller — a CLI, a code
// generator, a WebAssembly host — never has to handle a parse error as
// an exceptional path.
package fql

import (
	"github.com/TedDriggs/fql/syntax"
)

// Parse is the result of parsing a filter string: an immutable syntax
// tree plus whatever diagnostics were raised along the way. Both are safe
// to share across goroutines by value.
type Parse struct {
	root   *syntax.Node
	errors []*syntax.ParseError
}

// ParseString parses text into a Parse. It is a pure function: the same
// text always yields structurally identical trees and identical error
// lists.
func ParseString(text string) *Parse {
	root, errors := syntax.ParseFilter(text)
	return &Parse{root: root, errors: errors}
}

// Root returns the underlying CST root node, of kind syntax.Root.
func (p *Parse) Root() *syntax.Node { return p.root }

// ToExpr returns the first child of Root cast to the typed Expr overlay,
// or false if there is none (empty input).
func (p *Parse) ToExpr() (syntax.Expr, bool) {
	children := p.root.Children()
	if len(children) == 0 {
		return nil, false
	}
	return syntax.CastExpr(syntax.NewLinkedNode(p.root).Children()[0])
}

// DebugTree renders the CST in the indented `Kind@start..end` format used
// throughout diagnostics and tests.
func (p *Parse) DebugTree() string {
	return syntax.DebugTree(p.root)
}

// Diagnostics returns every ParseError raised while parsing, in the order
// they were recorded.
func (p *Parse) Diagnostics() []*syntax.ParseError {
	return p.errors
}
