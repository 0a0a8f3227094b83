package huffcode

import (
	"math"
)

// Symbol is one element of the alphabet being coded, usually a byte value.
// Negative values are not symbols.
type Symbol int32

const (
	// MaxSymbol is the largest symbol a tree can hold.
	MaxSymbol = Symbol(math.MaxInt32)

	// MaxByteSymbol is the largest symbol that ByteSink can write.
	MaxByteSymbol = Symbol(math.MaxUint8)

	// InvalidSymbol marks the absence of a symbol.
	InvalidSymbol = Symbol(-1)
)

// IsValid returns true iff the symbol lies in 0 .. MaxSymbol.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// Node is a node in a Tree.  It is either a *Leaf or an *Internal; no other
// implementations exist.
type Node interface {
	// Weight returns the frequency of a Leaf, or the summed frequency of
	// an Internal node's children.  Nodes of a loaded tree have weight 0.
	Weight() uint64

	isNode()
}

// Leaf is a Node that holds exactly one Symbol and has no children.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// Symbol returns the symbol held by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Node with two children and no symbol.
//
// A tree returned by Build never has an absent child.  A tree returned by
// Load may, if the saved code did not cover every path; see Tree.Complete.
type Internal struct {
	left   Node
	right  Node
	weight uint64
}

// Left returns the child reached by a 0 bit, or nil if it is absent.
func (n *Internal) Left() Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil if it is absent.
func (n *Internal) Right() Node {
	return n.right
}

// Child returns Left() for bit 0 and Right() for any other bit.
func (n *Internal) Child(bit uint) Node {
	if bit == 0 {
		return n.left
	}
	return n.right
}

// Weight returns the summed weight of this node's children.
func (n *Internal) Weight() uint64 {
	return n.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
