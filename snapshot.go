package fql

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/TedDriggs/fql/syntax"
)

// snapshotNode is a CBOR-friendly projection of a syntax.Node: just kind,
// text (leaves only), and children — no parent pointers, no computed
// widths, nothing that depends on this package's internal types. A
// downstream consumer (a code generator, a cache) can decode a Snapshot
// without importing anything but an off-the-shelf CBOR library.
type snapshotNode struct {
	Kind     syntax.Kind     `cbor:"k"`
	Text     string          `cbor:"t,omitempty"`
	Children []*snapshotNode `cbor:"c,omitempty"`
}

// Snapshot is the canonical encoding of a Parse: its CST plus its flat
// diagnostic list.
type Snapshot struct {
	Tree   *snapshotNode        `cbor:"tree"`
	Errors []*syntax.ParseError `cbor:"errors,omitempty"`
}

func toSnapshotNode(n *syntax.Node) *snapshotNode {
	if n.IsLeaf() {
		return &snapshotNode{Kind: n.Kind(), Text: n.Text()}
	}
	children := make([]*snapshotNode, 0, len(n.Children()))
	for _, c := range n.Children() {
		children = append(children, toSnapshotNode(c))
	}
	return &snapshotNode{Kind: n.Kind(), Children: children}
}

// Snapshot encodes p as canonical CBOR bytes.
func (p *Parse) Snapshot() ([]byte, error) {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(Snapshot{
		Tree:   toSnapshotNode(p.root),
		Errors: p.errors,
	})
}

// DecodeSnapshot decodes bytes produced by Parse.Snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	err := cbor.Unmarshal(data, &snap)
	return snap, err
}

// DebugTree renders a decoded Snapshot in the same `Kind@start..end`
// format as Parse.DebugTree, so a round-trip through Snapshot/
// DecodeSnapshot/DebugTree reproduces the original Parse.DebugTree()
// output exactly.
func (s Snapshot) DebugTree() string {
	var b strings.Builder
	writeSnapshotTree(&b, s.Tree, 0, 0)
	return strings.TrimRight(b.String(), "\n")
}

func snapshotWidth(n *snapshotNode) int {
	if len(n.Children) == 0 {
		return len(n.Text)
	}
	w := 0
	for _, c := range n.Children {
		w += snapshotWidth(c)
	}
	return w
}

func writeSnapshotTree(b *strings.Builder, n *snapshotNode, depth, offset int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	width := snapshotWidth(n)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, "%s@%d..%d %q\n", n.Kind, offset, offset+width, n.Text)
		return
	}
	fmt.Fprintf(b, "%s@%d..%d\n", n.Kind, offset, offset+width)
	childOffset := offset
	for _, c := range n.Children {
		writeSnapshotTree(b, c, depth+1, childOffset)
		childOffset += snapshotWidth(c)
	}
}
