package syntax

import (
	"fmt"
	"strings"
)

// DebugTree renders root as the indented, range-annotated text format used
// throughout diagnostics and tests: two spaces per depth, `Kind@start..end`
// for every node, tokens additionally quoting their text.
//
//	Root@0..16
//	  Clause@0..16
//	    Property@0..11
//	      Ident@0..4 "host"
func DebugTree(root *Node) string {
	var b strings.Builder
	writeDebugTree(&b, NewLinkedNode(root), 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeDebugTree(b *strings.Builder, ln *LinkedNode, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	span := ln.Span()
	if ln.Node().IsLeaf() {
		fmt.Fprintf(b, "%s@%d..%d %q\n", ln.Kind(), span.Start, span.End, ln.Text())
		return
	}
	fmt.Fprintf(b, "%s@%d..%d\n", ln.Kind(), span.Start, span.End)
	for _, c := range ln.Children() {
		writeDebugTree(b, c, depth+1)
	}
}
