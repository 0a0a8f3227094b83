package huffcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Build constructs a Huffman tree from a frequency table.  The table lists
// the frequency (i.e. number of occurrences) of each Symbol, indexed by
// Symbol.  Symbols with a frequency of 0 are left out of the tree, as are
// any Symbols past the end of the table.
//
// Build uses the classic greedy algorithm: the two lightest nodes are merged
// until only the root remains, the first one removed becoming the left child.
// Ties between equal weights are broken by age: leaves are ranked in Symbol
// order, and each merged node ranks after every node created before it.
// The resulting codeword assignment is therefore fully deterministic.
//
// If exactly one Symbol has a positive frequency, the root of the tree is a
// Leaf and its codeword is empty.  If none do, Build returns ErrEmptyAlphabet.
//
func Build(frequencies []uint32) (*Tree, error) {
	assert.Assertf(len(frequencies) <= int(MaxSymbol), "len(frequencies) %d > MaxSymbol %d", len(frequencies), int(MaxSymbol))

	nodes := make([]weightedNode, 0, len(frequencies))
	var seq uint64
	for symbol := Symbol(0); symbol < Symbol(len(frequencies)); symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			leaf := &Leaf{symbol: symbol, weight: uint64(freq)}
			nodes = append(nodes, weightedNode{leaf, seq})
			seq++
		}
	}

	if len(nodes) == 0 {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}

	h := nodeHeap{nodes}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		merged := &Internal{
			left:   a.node,
			right:  b.node,
			weight: a.node.Weight() + b.node.Weight(),
		}
		heap.Push(&h, weightedNode{merged, seq})
		seq++
	}

	root := heap.Pop(&h).(weightedNode)
	return newTree(root.node), nil
}

// Init replaces this Tree with one built from the given frequency table.  On
// error, the Tree is left unchanged.  See Build.
func (t *Tree) Init(frequencies []uint32) error {
	built, err := Build(frequencies)
	if err != nil {
		return err
	}
	*t = *built
	return nil
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
