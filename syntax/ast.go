package syntax

import "strconv"

// Expr is the typed view shared by every expression-shaped CST node:
// ExprBinary (InfixExpr), ExprParen (ParenExpr), and Clause. CastExpr
// picks the right concrete type by kind; nothing here copies or
// re-parses, each wrapper just holds the LinkedNode it was cast from.
type Expr interface {
	// Node returns the underlying red-tree handle.
	Node() *LinkedNode
	exprNode()
}

// CastExpr casts a LinkedNode to its typed Expr variant, or returns false
// if ln's kind isn't one of InfixExpr, ParenExpr, or Clause.
func CastExpr(ln *LinkedNode) (Expr, bool) {
	if ln == nil {
		return nil, false
	}
	switch ln.Kind() {
	case InfixExpr:
		return ExprBinary{ln}, true
	case ParenExpr:
		return ExprParen{ln}, true
	case Clause:
		return ClauseExpr{ln}, true
	default:
		return nil, false
	}
}

// Clauses returns every Clause descendant of expr, visiting InfixExpr's
// left then right child and ParenExpr's body, in a deterministic
// depth-first order.
func Clauses(expr Expr) []ClauseExpr {
	var out []ClauseExpr
	collectClauses(expr, &out)
	return out
}

func collectClauses(expr Expr, out *[]ClauseExpr) {
	switch e := expr.(type) {
	case ClauseExpr:
		*out = append(*out, e)
	case ExprBinary:
		if lhs, ok := e.Lhs(); ok {
			collectClauses(lhs, out)
		}
		if rhs, ok := e.Rhs(); ok {
			collectClauses(rhs, out)
		}
	case ExprParen:
		if body, ok := e.Body(); ok {
			collectClauses(body, out)
		}
	}
}

// firstChildExpr returns the first direct child of ln that casts to Expr.
func firstChildExpr(ln *LinkedNode) (Expr, bool) {
	for _, c := range ln.Children() {
		if e, ok := CastExpr(c); ok {
			return e, true
		}
	}
	return nil, false
}

// firstChildOfKind returns the first direct child of ln with the given kind.
func firstChildOfKind(ln *LinkedNode, kind Kind) (*LinkedNode, bool) {
	for _, c := range ln.Children() {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// firstDescendantOfKind returns the first descendant (any depth, document
// order, including ln itself) with the given kind.
func firstDescendantOfKind(ln *LinkedNode, kind Kind) (*LinkedNode, bool) {
	for _, d := range ln.Descendants() {
		if d.Kind() == kind {
			return d, true
		}
	}
	return nil, false
}

// --- ExprBinary ---

// ExprBinary is the typed view of an InfixExpr node: two sub-expressions
// joined by `+` (and) or `,` (or).
type ExprBinary struct{ ln *LinkedNode }

func (e ExprBinary) Node() *LinkedNode { return e.ln }
func (ExprBinary) exprNode()           {}

// Lhs returns the first direct child that casts to Expr.
func (e ExprBinary) Lhs() (Expr, bool) {
	for _, c := range e.ln.Children() {
		if expr, ok := CastExpr(c); ok {
			return expr, true
		}
	}
	return nil, false
}

// Rhs returns the second direct child that casts to Expr.
func (e ExprBinary) Rhs() (Expr, bool) {
	found := 0
	for _, c := range e.ln.Children() {
		if expr, ok := CastExpr(c); ok {
			found++
			if found == 2 {
				return expr, true
			}
		}
	}
	return nil, false
}

// Op returns the infix operator token: Plus or Comma. Colon is
// deliberately excluded — it separates a Clause's property from its
// operand, never an InfixExpr's operands.
func (e ExprBinary) Op() (*LinkedNode, bool) {
	for _, c := range e.ln.Children() {
		if c.Kind() == Plus || c.Kind() == Comma {
			return c, true
		}
	}
	return nil, false
}

// --- ExprParen ---

// ExprParen is the typed view of a ParenExpr node: `(` expr `)`.
type ExprParen struct{ ln *LinkedNode }

func (e ExprParen) Node() *LinkedNode { return e.ln }
func (ExprParen) exprNode()           {}

// Body returns the first child that casts to Expr.
func (e ExprParen) Body() (Expr, bool) {
	return firstChildExpr(e.ln)
}

// --- ClauseExpr ---

// ClauseExpr is the typed view of a Clause node: `property:[operator]operand`.
type ClauseExpr struct{ ln *LinkedNode }

func (e ClauseExpr) Node() *LinkedNode { return e.ln }
func (ClauseExpr) exprNode()           {}

// Property returns the clause's Property node, if present.
func (e ClauseExpr) Property() (PropertyNode, bool) {
	n, ok := firstChildOfKind(e.ln, Property)
	if !ok {
		return PropertyNode{}, false
	}
	return PropertyNode{n}, true
}

// Colon returns the clause's `:` token, if present.
func (e ClauseExpr) Colon() (*LinkedNode, bool) {
	return firstChildOfKind(e.ln, Colon)
}

// Operator returns the clause's Operator node, if an operator prefix was
// present at all (clauses may omit it — implicit equality).
func (e ClauseExpr) Operator() (OperatorNode, bool) {
	n, ok := firstChildOfKind(e.ln, Operator)
	if !ok {
		return OperatorNode{}, false
	}
	return OperatorNode{n}, true
}

// Operand returns the clause's Operand node, if present.
func (e ClauseExpr) Operand() (OperandNode, bool) {
	n, ok := firstChildOfKind(e.ln, Operand)
	if !ok {
		return OperandNode{}, false
	}
	return OperandNode{n}, true
}

// --- PropertyNode ---

// PropertyNode is the typed view of a Property node: a dotted sequence of
// identifiers, e.g. `host.online`.
type PropertyNode struct{ ln *LinkedNode }

func (p PropertyNode) Node() *LinkedNode { return p.ln }

// Segments returns the property's Ident tokens, in document order, at any
// depth beneath the node (periods are not segments).
func (p PropertyNode) Segments() []*LinkedNode {
	var out []*LinkedNode
	for _, d := range p.ln.Descendants() {
		if d.Kind() == Ident {
			out = append(out, d)
		}
	}
	return out
}

// Text joins the property's segments with `.`, discarding any error
// recovery noise (extra periods, stray tokens) — use IntoText on the
// underlying node if the raw source text is wanted instead.
func (p PropertyNode) Text() string {
	segments := p.Segments()
	var out string
	for i, s := range segments {
		if i > 0 {
			out += "."
		}
		out += s.Text()
	}
	return out
}

// --- OperatorNode ---

// OperatorNode is the typed view of an Operator node wrapping a single
// clause-operator token.
type OperatorNode struct{ ln *LinkedNode }

func (o OperatorNode) Node() *LinkedNode { return o.ln }

// Token returns the wrapped operator token.
func (o OperatorNode) Token() (*LinkedNode, bool) {
	for _, c := range o.ln.Children() {
		if c.Kind().IsOperator() {
			return c, true
		}
	}
	return nil, false
}

// --- OperandNode ---

// OperandNode is the typed view of an Operand node: a Literal, optionally
// bracketed for an exact match.
type OperandNode struct{ ln *LinkedNode }

func (o OperandNode) Node() *LinkedNode { return o.ln }

// IsExact reports whether the operand has a direct-child LBracket token —
// true even if the closing RBracket never showed up.
func (o OperandNode) IsExact() bool {
	_, ok := firstChildOfKind(o.ln, LBracket)
	return ok
}

// Literal returns the operand's Literal node, if present (it may be
// missing if the operand production never got past `[`).
func (o OperandNode) Literal() (LiteralNode, bool) {
	n, ok := firstDescendantOfKind(o.ln, Literal)
	if !ok {
		return LiteralNode{}, false
	}
	return LiteralNode{n}, true
}

// --- LiteralNode ---

// LiteralNode is the typed view of a Literal node wrapping a single
// String, Integer, or Boolean token.
type LiteralNode struct{ ln *LinkedNode }

func (l LiteralNode) Node() *LinkedNode { return l.ln }

// LitValue is a tagged semantic value for a literal: exactly one of Bool,
// Int, or Str is meaningful, selected by Kind.
type LitValue struct {
	Kind Kind // Boolean, Integer, or String
	Bool bool
	Int  uint64
	// IntOverflow is true when the literal's digits don't fit a uint64;
	// Int is meaningless in that case.
	IntOverflow bool
	Str         string
}

// Value computes the semantic value of the wrapped token: a bool for
// Boolean, a parsed uint64 (or IntOverflow) for Integer, or the
// quote-stripped text for String.
func (l LiteralNode) Value() LitValue {
	token, ok := firstLeafChild(l.ln)
	if !ok {
		panic("Literal node has no token child")
	}
	switch token.Kind() {
	case Boolean:
		switch token.Text() {
		case "true":
			return LitValue{Kind: Boolean, Bool: true}
		case "false":
			return LitValue{Kind: Boolean, Bool: false}
		default:
			panic("Boolean token text is neither \"true\" nor \"false\"")
		}
	case Integer:
		n, err := strconv.ParseUint(token.Text(), 10, 64)
		if err != nil {
			return LitValue{Kind: Integer, IntOverflow: true}
		}
		return LitValue{Kind: Integer, Int: n}
	case String:
		text := token.Text()
		if len(text) >= 2 {
			text = text[1 : len(text)-1]
		}
		return LitValue{Kind: String, Str: text}
	default:
		panic("Literal node wraps a non-literal token")
	}
}

func firstLeafChild(ln *LinkedNode) (*LinkedNode, bool) {
	for _, c := range ln.Children() {
		if c.Node().IsLeaf() {
			return c, true
		}
	}
	return nil, false
}
