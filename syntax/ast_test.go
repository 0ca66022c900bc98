package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseExprForTest(t *testing.T, text string) Expr {
	t.Helper()
	root, _ := ParseFilter(text)
	ln := NewLinkedNode(root)
	children := ln.Children()
	require.Len(t, children, 1)
	expr, ok := CastExpr(children[0])
	require.True(t, ok)
	return expr
}

func TestClausesWalksBinaryAndParen(t *testing.T) {
	expr := parseExprForTest(t, "(a:1,b:2)+c:'x'")
	clauses := Clauses(expr)
	require.Len(t, clauses, 3)

	props := make([]string, len(clauses))
	for i, c := range clauses {
		p, ok := c.Property()
		require.True(t, ok)
		props[i] = p.Text()
	}
	require.Equal(t, []string{"a", "b", "c"}, props)
}

func TestClauseExprAccessors(t *testing.T) {
	expr := parseExprForTest(t, "host.online:!true")
	clause, ok := expr.(ClauseExpr)
	require.True(t, ok)

	prop, ok := clause.Property()
	require.True(t, ok)
	require.Equal(t, "host.online", prop.Text())
	require.Equal(t, []string{"host", "online"}, func() []string {
		var out []string
		for _, s := range prop.Segments() {
			out = append(out, s.Text())
		}
		return out
	}())

	op, ok := clause.Operator()
	require.True(t, ok)
	tok, ok := op.Token()
	require.True(t, ok)
	require.Equal(t, "!", tok.Text())

	operand, ok := clause.Operand()
	require.True(t, ok)
	require.False(t, operand.IsExact())

	lit, ok := operand.Literal()
	require.True(t, ok)
	v := lit.Value()
	require.Equal(t, Boolean, v.Kind)
	require.True(t, v.Bool)
}

func TestLiteralValueInteger(t *testing.T) {
	expr := parseExprForTest(t, "count:>42")
	clause := expr.(ClauseExpr)
	operand, ok := clause.Operand()
	require.True(t, ok)
	lit, ok := operand.Literal()
	require.True(t, ok)
	v := lit.Value()
	require.Equal(t, Integer, v.Kind)
	require.False(t, v.IntOverflow)
	require.Equal(t, uint64(42), v.Int)
}

func TestLiteralValueIntegerOverflow(t *testing.T) {
	expr := parseExprForTest(t, "count:>99999999999999999999")
	clause := expr.(ClauseExpr)
	operand, ok := clause.Operand()
	require.True(t, ok)
	lit, ok := operand.Literal()
	require.True(t, ok)
	v := lit.Value()
	require.Equal(t, Integer, v.Kind)
	require.True(t, v.IntOverflow)
}

func TestLiteralValueExactString(t *testing.T) {
	expr := parseExprForTest(t, "tag:['prod']")
	clause := expr.(ClauseExpr)
	operand, ok := clause.Operand()
	require.True(t, ok)
	require.True(t, operand.IsExact())
	lit, ok := operand.Literal()
	require.True(t, ok)
	v := lit.Value()
	require.Equal(t, String, v.Kind)
	require.Equal(t, "prod", v.Str)
}

func TestExprBinaryOp(t *testing.T) {
	expr := parseExprForTest(t, "a:1+b:2")
	binary := expr.(ExprBinary)
	op, ok := binary.Op()
	require.True(t, ok)
	require.Equal(t, "+", op.Text())

	lhs, ok := binary.Lhs()
	require.True(t, ok)
	_, isClause := lhs.(ClauseExpr)
	require.True(t, isClause)

	rhs, ok := binary.Rhs()
	require.True(t, ok)
	_, isClause = rhs.(ClauseExpr)
	require.True(t, isClause)
}

func TestExprParenBody(t *testing.T) {
	expr := parseExprForTest(t, "(a:1)")
	paren := expr.(ExprParen)
	body, ok := paren.Body()
	require.True(t, ok)
	_, isClause := body.(ClauseExpr)
	require.True(t, isClause)
}
