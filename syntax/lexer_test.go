package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func checkToken(t *testing.T, input string, kind Kind) {
	t.Helper()
	tokens := Lex(input)
	require.Len(t, tokens, 1)
	require.Equal(t, kind, tokens[0].Kind)
	require.Equal(t, input, tokens[0].Text)
}

func TestLexWhitespace(t *testing.T) {
	checkToken(t, " ", Whitespace)
	checkToken(t, "   ", Whitespace)
}

func TestLexBoolean(t *testing.T) {
	checkToken(t, "true", Boolean)
	checkToken(t, "false", Boolean)
}

func TestLexIdent(t *testing.T) {
	checkToken(t, "h", Ident)
	checkToken(t, "host", Ident)
	checkToken(t, "hos5", Ident)
}

func checkSeq(t *testing.T, input string, expected []Token) {
	t.Helper()
	tokens := Lex(input)
	require.Len(t, tokens, len(expected))
	for i, want := range expected {
		require.Equal(t, want.Kind, tokens[i].Kind, "token %d kind", i)
		require.Equal(t, want.Text, tokens[i].Text, "token %d text", i)
	}
}

func TestLexClause(t *testing.T) {
	checkSeq(t, "host.online:true", []Token{
		{Kind: Ident, Text: "host"},
		{Kind: Period, Text: "."},
		{Kind: Ident, Text: "online"},
		{Kind: Colon, Text: ":"},
		{Kind: Boolean, Text: "true"},
	})
}

func TestLexAnd(t *testing.T) {
	checkSeq(t, "host.name:'test'+host.online:true", []Token{
		{Kind: Ident, Text: "host"},
		{Kind: Period, Text: "."},
		{Kind: Ident, Text: "name"},
		{Kind: Colon, Text: ":"},
		{Kind: String, Text: "'test'"},
		{Kind: Plus, Text: "+"},
		{Kind: Ident, Text: "host"},
		{Kind: Period, Text: "."},
		{Kind: Ident, Text: "online"},
		{Kind: Colon, Text: ":"},
		{Kind: Boolean, Text: "true"},
	})
}

func TestLexBangString(t *testing.T) {
	checkSeq(t, "!'windows'", []Token{
		{Kind: Bang, Text: "!"},
		{Kind: String, Text: "'windows'"},
	})
}

func TestLexBangTildeString(t *testing.T) {
	checkSeq(t, "!~'hello'", []Token{
		{Kind: BangTilde, Text: "!~"},
		{Kind: String, Text: "'hello'"},
	})
}

func TestLexNeverFailsOnGarbage(t *testing.T) {
	tokens := Lex("@#$")
	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		require.Equal(t, Error, tok.Kind)
	}
}
