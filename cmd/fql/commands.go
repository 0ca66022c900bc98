package main

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/TedDriggs/fql"
	"github.com/TedDriggs/fql/syntax"
)

func parseAndLog(filter string) *fql.Parse {
	p := fql.ParseString(filter)
	slog.Debug("parsed filter",
		"fingerprint", fmt.Sprintf("%x", p.Fingerprint()),
		"diagnostics", len(p.Diagnostics()),
	)
	return p
}

// runFacts implements `fql facts FILTER`: print whether the root
// expression is binary, parenthesized, or a clause.
func runFacts(cfg *config, filter string) (int, error) {
	p := parseAndLog(filter)
	expr, ok := p.ToExpr()
	if !ok {
		return 1, nil
	}
	switch expr.(type) {
	case syntax.ExprBinary:
		fmt.Println("binary")
	case syntax.ExprParen:
		fmt.Println("parenthesized")
	case syntax.ClauseExpr:
		fmt.Println("clause")
	}
	return 0, nil
}

// runListProperties implements `fql list-properties FILTER`: print each
// clause's property, one per line.
func runListProperties(cfg *config, filter string) (int, error) {
	p := parseAndLog(filter)
	expr, ok := p.ToExpr()
	if !ok {
		return 1, nil
	}
	for _, clause := range syntax.Clauses(expr) {
		if prop, ok := clause.Property(); ok {
			fmt.Println(prop.Text())
		}
	}
	return 0, nil
}

// runListOperands implements `fql list-operands FILTER`: print each
// clause's operand, one per line.
func runListOperands(cfg *config, filter string) (int, error) {
	p := parseAndLog(filter)
	expr, ok := p.ToExpr()
	if !ok {
		return 1, nil
	}
	for _, clause := range syntax.Clauses(expr) {
		operand, ok := clause.Operand()
		if !ok {
			continue
		}
		fmt.Println(operand.Node().Node().IntoText())
	}
	return 0, nil
}

// runSortLiterals implements `fql sort-literals FILTER`: collect every
// literal, deduplicate, then print in three groups — booleans (false then
// true), integers (numeric ascending), strings (collated ascending).
func runSortLiterals(cfg *config, filter string) (int, error) {
	p := parseAndLog(filter)
	expr, ok := p.ToExpr()
	if !ok {
		return 1, nil
	}

	var bools []bool
	ints := map[uint64]bool{}
	strs := map[string]bool{}
	seenBool := map[bool]bool{}

	for _, clause := range syntax.Clauses(expr) {
		operand, ok := clause.Operand()
		if !ok {
			continue
		}
		lit, ok := operand.Literal()
		if !ok {
			continue
		}
		v := lit.Value()
		switch v.Kind {
		case syntax.Boolean:
			if !seenBool[v.Bool] {
				seenBool[v.Bool] = true
				bools = append(bools, v.Bool)
			}
		case syntax.Integer:
			if !v.IntOverflow {
				ints[v.Int] = true
			}
		case syntax.String:
			strs[v.Str] = true
		}
	}

	sort.Slice(bools, func(i, j int) bool { return !bools[i] && bools[j] })
	for _, b := range bools {
		fmt.Println(b)
	}

	intSlice := make([]uint64, 0, len(ints))
	for n := range ints {
		intSlice = append(intSlice, n)
	}
	sort.Slice(intSlice, func(i, j int) bool { return intSlice[i] < intSlice[j] })
	for _, n := range intSlice {
		fmt.Println(n)
	}

	strSlice := make([]string, 0, len(strs))
	for s := range strs {
		strSlice = append(strSlice, s)
	}
	sortStrings(strSlice, cfg.CollationLocale)
	for _, s := range strSlice {
		fmt.Println(s)
	}

	return 0, nil
}

func sortStrings(strs []string, locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	col := collate.New(tag)
	col.SortStrings(strs)
}

// runPrintTree implements `fql print-tree FILTER`: print the debug-tree,
// then one diagnostic per line.
func runPrintTree(cfg *config, filter string) (int, error) {
	p := parseAndLog(filter)
	fmt.Println(p.DebugTree())
	for _, diag := range p.Diagnostics() {
		fmt.Println(diag.Error())
	}
	return 0, nil
}
