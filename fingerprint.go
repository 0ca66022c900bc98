package fql

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/TedDriggs/fql/syntax"
)

// Fingerprint is a 128-bit content hash over a Parse's token stream (kind
// and text of every token, trivia included), independent of tree shape.
// Two parses of the same text always fingerprint equal; it's a cheap
// cache key for callers that want to deduplicate or invalidate without
// holding onto the whole tree.
type Fingerprint [16]byte

// Fingerprint computes p's content fingerprint.
func (p *Parse) Fingerprint() Fingerprint {
	h, err := blake2b.New(16, nil)
	if err != nil {
		panic(err)
	}
	for _, leaf := range leaves(p.root) {
		var kindBuf [2]byte
		binary.LittleEndian.PutUint16(kindBuf[:], uint16(leaf.Kind()))
		h.Write(kindBuf[:])
		h.Write([]byte(leaf.Text()))
	}
	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}

// leaves returns every leaf (token) node beneath root, in document order.
func leaves(root *syntax.Node) []*syntax.Node {
	if root.IsLeaf() {
		return []*syntax.Node{root}
	}
	var out []*syntax.Node
	for _, c := range root.Children() {
		out = append(out, leaves(c)...)
	}
	return out
}
