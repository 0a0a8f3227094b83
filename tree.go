package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// Tree is a Huffman code tree.  The leaves are symbols and the root-to-leaf
// paths are their codewords.  A Tree is read-only once constructed, so it may
// be shared freely between goroutines.
//
// The zero Tree is empty: it has no root and holds no symbols.
type Tree struct {
	root      Node
	numLeaves int
	minSize   int
	maxSize   int
}

func newTree(root Node) *Tree {
	t := &Tree{root: root}
	first := true
	t.walk(func(node Node, hc Code) {
		if _, ok := node.(*Leaf); !ok {
			return
		}
		size := hc.Len()
		t.numLeaves++
		if first {
			first = false
			t.minSize = size
			t.maxSize = size
		} else if t.minSize > size {
			t.minSize = size
		} else if t.maxSize < size {
			t.maxSize = size
		}
	})
	return t
}

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree) Root() Node {
	return t.root
}

// Empty returns true iff the tree holds no symbols.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Degenerate returns true iff the root of the tree is itself a Leaf, i.e. the
// alphabet has exactly one symbol and its codeword is empty.
func (t *Tree) Degenerate() bool {
	_, ok := t.root.(*Leaf)
	return ok
}

// Len returns the number of symbols (leaves) in the tree.
func (t *Tree) Len() int {
	return t.numLeaves
}

// MinSize is the bit length of the shortest codeword.
func (t *Tree) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest codeword.
func (t *Tree) MaxSize() int {
	return t.maxSize
}

// Complete returns true iff no Internal node in the tree has an absent child.
// Empty trees are complete.  Trees made by Build are always complete.
func (t *Tree) Complete() bool {
	complete := true
	t.walk(func(node Node, hc Code) {
		if node == nil {
			complete = false
		}
	})
	return complete
}

// Walk calls fn for every leaf in depth-first order, left subtree before
// right subtree.  Walk stops at the first error returned by fn and returns it.
func (t *Tree) Walk(fn func(symbol Symbol, hc Code) error) error {
	var err error
	t.walk(func(node Node, hc Code) {
		if err != nil {
			return
		}
		if leaf, ok := node.(*Leaf); ok {
			err = fn(leaf.symbol, hc)
		}
	})
	return err
}

// Codes returns the codeword for every symbol in the tree.
func (t *Tree) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code, t.numLeaves)
	_ = t.Walk(func(symbol Symbol, hc Code) error {
		out[symbol] = hc
		return nil
	})
	return out
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.numLeaves, t.minSize, t.maxSize)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Absent children are listed as "nil".
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	t.walk(func(node Node, hc Code) {
		switch x := node.(type) {
		case nil:
			fmt.Fprintf(&buf, "\t%s = nil\n", hc)
		case *Leaf:
			fmt.Fprintf(&buf, "\t%s = %d\n", hc, x.symbol)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

// walk visits every node in pre-order, left before right.  An absent child
// of an Internal node is visited as a nil Node.
//
// We use an explicit stack rather than recursion, since a loaded tree can be
// arbitrarily deep.
func (t *Tree) walk(visit func(node Node, hc Code)) {
	if t.root == nil {
		return
	}

	type stackItem struct {
		node Node
		hc   Code
	}

	stack := []stackItem{{node: t.root}}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		visit(top.node, top.hc)
		if n, ok := top.node.(*Internal); ok {
			// Push right first, so that left pops first.
			stack = append(stack, stackItem{n.right, top.hc.Append(1)})
			stack = append(stack, stackItem{n.left, top.hc.Append(0)})
		}
	}
}
