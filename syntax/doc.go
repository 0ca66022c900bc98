// Package syntax provides the lexer, lossless concrete syntax tree, and
// recursive-descent parser for FQL, the filter query language.
//
// FQL filters facts by clauses of the form `property:[operator]operand`
// joined by the infix compounds `+` (and) and `,` (or), e.g.
// `host.online:true+tag:['prod']`. Parsing never fails outright: malformed
// input still produces a tree, with unexpected tokens wrapped in Error nodes
// and the damage recorded as a separate list of diagnostics, so a caller
// can report a problem without losing the rest of the document.
//
// The tree comes in two views. The green tree (Node) is an immutable,
// owned structure built bottom-up by the sink from the parser's event
// stream; it has no parent pointers,
// so the same subtree can be shared across positions without copying.
// LinkedNode is the red view: a lightweight handle with an absolute byte
// offset and a parent pointer, computed lazily while walking down from a
// root. Concatenating every token's text across a green tree reproduces the
// original input exactly, including whitespace.
//
// A typed overlay (ast.go) casts over the red view to give each grammar
// production its own accessor type (ClauseExpr, OperandNode, LiteralNode,
// and so on) without copying or re-parsing.
package syntax
