package syntax

import "regexp"

// Token is a single lexical unit: a kind, the exact source slice it
// covers, and that slice's byte range.
type Token struct {
	Kind  Kind
	Text  string
	Range Span
}

// rule pairs a token kind with the regexp that recognizes it. The longest
// match wins, which is how `>=` beats `>`. Order matters only as a
// tie-break: when two rules match the same length at the same position,
// the earlier rule in this table wins, which is how `Boolean`'s literal
// keywords beat the general `Ident` pattern.
type rule struct {
	kind Kind
	re   *regexp.Regexp
}

var lexRules = []rule{
	{Whitespace, regexp.MustCompile(`^\s+`)},
	{String, regexp.MustCompile(`^'[^']*'`)},
	{Boolean, regexp.MustCompile(`^(?:true|false)`)},
	{Integer, regexp.MustCompile(`^\d+`)},
	{Ident, regexp.MustCompile(`^[a-z]\w*`)},
	{Ge, regexp.MustCompile(`^>=`)},
	{Le, regexp.MustCompile(`^<=`)},
	{BangTilde, regexp.MustCompile(`^!~`)},
	{Period, regexp.MustCompile(`^\.`)},
	{Colon, regexp.MustCompile(`^:`)},
	{LBracket, regexp.MustCompile(`^\[`)},
	{RBracket, regexp.MustCompile(`^\]`)},
	{Plus, regexp.MustCompile(`^\+`)},
	{Comma, regexp.MustCompile(`^,`)},
	{LParen, regexp.MustCompile(`^\(`)},
	{RParen, regexp.MustCompile(`^\)`)},
	{Bang, regexp.MustCompile(`^!`)},
	{Gt, regexp.MustCompile(`^>`)},
	{Lt, regexp.MustCompile(`^<`)},
	{Tilde, regexp.MustCompile(`^~`)},
}

// Lex tokenizes text in full. It never fails: a byte matched by no rule
// becomes a single-byte Error token, and lexing always consumes the
// entire input.
func Lex(text string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		rest := text[pos:]

		bestLen := -1
		bestKind := Error
		for _, r := range lexRules {
			if loc := r.re.FindStringIndex(rest); loc != nil && loc[0] == 0 {
				if loc[1] > bestLen {
					bestLen = loc[1]
					bestKind = r.kind
				}
			}
		}

		if bestLen <= 0 {
			tokens = append(tokens, Token{
				Kind:  Error,
				Text:  rest[:1],
				Range: Span{Start: pos, End: pos + 1},
			})
			pos++
			continue
		}

		tokens = append(tokens, Token{
			Kind:  bestKind,
			Text:  rest[:bestLen],
			Range: Span{Start: pos, End: pos + bestLen},
		})
		pos += bestLen
	}
	return tokens
}
