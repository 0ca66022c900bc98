// Package wasm exposes the fql library to JavaScript hosts. The JSON shape
// produced by ExportedParse.MarshalJSON (exercised here without a wasm
// build, and driven through syscall/js in cmd/fql-wasm/main.go under
// GOOS=js) is the
// wire contract a host's generated bindings are written against.
package wasm

import (
	"encoding/json"

	"github.com/TedDriggs/fql"
	"github.com/TedDriggs/fql/syntax"
)

// ExportedParse mirrors fql.Parse as a JSON-friendly value.
type ExportedParse struct {
	ToExpr      *ExportedExpr        `json:"toExpr,omitempty"`
	DebugTree   string               `json:"debugTree"`
	Diagnostics []ExportedDiagnostic `json:"diagnostics"`
}

// ExportedExpr mirrors one of syntax.ExprBinary, syntax.ExprParen, or
// syntax.ClauseExpr, discriminated by Kind.
type ExportedExpr struct {
	Kind string `json:"kind"` // "binary" | "paren" | "clause"

	// binary
	Op  string        `json:"op,omitempty"`
	Lhs *ExportedExpr `json:"lhs,omitempty"`
	Rhs *ExportedExpr `json:"rhs,omitempty"`

	// paren
	Body *ExportedExpr `json:"body,omitempty"`

	// clause
	Property string           `json:"property,omitempty"`
	Operator string           `json:"operator,omitempty"`
	Operand  *ExportedOperand `json:"operand,omitempty"`
}

// ExportedOperand mirrors syntax.OperandNode. LiteralValue is a string,
// float64, bool, or nil (JSON null) — nil when the operand has no literal
// (LiteralKind is then empty), or when LiteralKind is "integer" and the
// digits overflowed a uint64, a case the live JS binding turns into NaN.
type ExportedOperand struct {
	Exact        bool        `json:"exact"`
	LiteralKind  string      `json:"literalKind,omitempty"` // "string" | "integer" | "boolean"
	LiteralValue interface{} `json:"literalValue"`
}

// ExportedDiagnostic mirrors a *syntax.ParseError.
type ExportedDiagnostic struct {
	Message string `json:"message"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Length  int    `json:"length"`
}

// Export converts a fully parsed filter into its JSON-friendly shape.
func Export(p *fql.Parse) ExportedParse {
	out := ExportedParse{
		DebugTree:   p.DebugTree(),
		Diagnostics: make([]ExportedDiagnostic, 0, len(p.Diagnostics())),
	}
	if expr, ok := p.ToExpr(); ok {
		out.ToExpr = exportExpr(expr)
	}
	for _, diag := range p.Diagnostics() {
		span := diag.Span
		out.Diagnostics = append(out.Diagnostics, ExportedDiagnostic{
			Message: diag.Error(),
			Start:   span.Start,
			End:     span.End,
			Length:  span.Len(),
		})
	}
	return out
}

func exportExpr(expr syntax.Expr) *ExportedExpr {
	switch e := expr.(type) {
	case syntax.ExprBinary:
		out := &ExportedExpr{Kind: "binary"}
		if op, ok := e.Op(); ok {
			out.Op = op.Text()
		}
		if lhs, ok := e.Lhs(); ok {
			out.Lhs = exportExpr(lhs)
		}
		if rhs, ok := e.Rhs(); ok {
			out.Rhs = exportExpr(rhs)
		}
		return out
	case syntax.ExprParen:
		out := &ExportedExpr{Kind: "paren"}
		if body, ok := e.Body(); ok {
			out.Body = exportExpr(body)
		}
		return out
	case syntax.ClauseExpr:
		out := &ExportedExpr{Kind: "clause"}
		if prop, ok := e.Property(); ok {
			out.Property = prop.Text()
		}
		if op, ok := e.Operator(); ok {
			if tok, ok := op.Token(); ok {
				out.Operator = tok.Text()
			}
		}
		if operand, ok := e.Operand(); ok {
			out.Operand = exportOperand(operand)
		}
		return out
	default:
		return nil
	}
}

func exportOperand(operand syntax.OperandNode) *ExportedOperand {
	out := &ExportedOperand{Exact: operand.IsExact()}
	lit, ok := operand.Literal()
	if !ok {
		return out
	}
	v := lit.Value()
	switch v.Kind {
	case syntax.Boolean:
		out.LiteralKind = "boolean"
		out.LiteralValue = v.Bool
	case syntax.Integer:
		out.LiteralKind = "integer"
		if v.IntOverflow {
			out.LiteralValue = nil
		} else {
			out.LiteralValue = float64(v.Int)
		}
	case syntax.String:
		out.LiteralKind = "string"
		out.LiteralValue = v.Str
	}
	return out
}

// MarshalJSON is the wire contract wasm/contract_test.go validates and the
// live binding's fqlParse (cmd/fql-wasm) decodes.
func (p ExportedParse) MarshalJSON() ([]byte, error) {
	type alias ExportedParse
	return json.Marshal(alias(p))
}
