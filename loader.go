package huffcode

import (
	"github.com/pkg/errors"
)

// Loader grows a Tree one (symbol, codeword) pair at a time.  It is the
// mutable counterpart of Tree: pairs may be added in any order, and the
// finished Tree does not depend on that order.
//
// A Loader must not be used from more than one goroutine at a time.
type Loader struct {
	root     *loadNode
	paths    map[Symbol]Code
	numPairs int
}

type loadNode struct {
	symbol Symbol
	isLeaf bool
	left   *loadNode
	right  *loadNode
}

// Len returns the number of pairs added so far.
func (l *Loader) Len() int {
	return l.numPairs
}

// Reset discards all pairs added so far.
func (l *Loader) Reset() {
	*l = Loader{}
}

// Add installs symbol at the end of the path described by hc, creating any
// missing Internal nodes along the way.  A Leaf already at that path is
// overwritten.
//
// Add fails with ErrMalformedCode if hc passes through an existing Leaf, if
// an Internal node already occupies the end of the path, if symbol already
// sits at a different path, or if symbol is not valid.  On failure the Loader
// is left unchanged.
func (l *Loader) Add(symbol Symbol, hc Code) error {
	if !symbol.IsValid() {
		return errors.Wrapf(ErrMalformedCode, "symbol %d is out of range 0 .. %d", symbol, MaxSymbol)
	}

	if prev, found := l.paths[symbol]; found && prev != hc {
		return errors.Wrapf(ErrMalformedCode, "symbol %d has two codewords, %s and %s", symbol, prev, hc)
	}

	// Check the whole path before touching anything.
	cur := l.root
	for i := 0; i < hc.Len() && cur != nil; i++ {
		if cur.isLeaf {
			return errors.Wrapf(ErrMalformedCode, "codeword %s for symbol %d extends the codeword of symbol %d", hc, symbol, cur.symbol)
		}
		if hc.Bit(i) == 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur != nil && !cur.isLeaf {
		return errors.Wrapf(ErrMalformedCode, "codeword %s for symbol %d is a prefix of other codewords", hc, symbol)
	}

	slot := &l.root
	for i := 0; i < hc.Len(); i++ {
		if *slot == nil {
			*slot = &loadNode{}
		}
		if hc.Bit(i) == 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	if *slot != nil {
		delete(l.paths, (*slot).symbol)
	}
	*slot = &loadNode{symbol: symbol, isLeaf: true}
	if l.paths == nil {
		l.paths = make(map[Symbol]Code)
	}
	l.paths[symbol] = hc
	l.numPairs++
	return nil
}

// Tree returns the finished Tree.  The Loader may continue to be used; later
// pairs do not affect Trees that were already returned.
func (l *Loader) Tree() *Tree {
	return newTree(l.root.freeze())
}

// freeze converts a mutable subtree into immutable Nodes.  Absent children
// stay absent.
func (ln *loadNode) freeze() Node {
	if ln == nil {
		return nil
	}
	if ln.isLeaf {
		return &Leaf{symbol: ln.symbol}
	}

	type stackItem struct {
		src  *loadNode
		dest *Internal
	}

	root := &Internal{}
	stack := []stackItem{{ln, root}}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack = stack[:last]

		for bit, child := range [2]*loadNode{top.src.left, top.src.right} {
			var node Node
			switch {
			case child == nil:
				// leave absent
			case child.isLeaf:
				node = &Leaf{symbol: child.symbol}
			default:
				n := &Internal{}
				stack = append(stack, stackItem{child, n})
				node = n
			}
			if bit == 0 {
				top.dest.left = node
			} else {
				top.dest.right = node
			}
		}
	}
	return root
}
