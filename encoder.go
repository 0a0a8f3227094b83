package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps symbols to the codewords of a Tree.
type Encoder struct {
	codes     map[Symbol]Code
	maxSymbol Symbol
	minSize   int
	maxSize   int
	tree      *Tree
}

// maxDenseSymbol bounds the symbols that SizeBySymbol will lay out in a
// dense array.
const maxDenseSymbol = Symbol(1<<16 - 1)

// NewEncoder is a convenience function that constructs an Encoder for t.
func NewEncoder(t *Tree) Encoder {
	var e Encoder
	e.Init(t)
	return e
}

// Init initializes this Encoder with the codewords of the given Tree.  A nil
// Tree is treated as an empty one.
func (e *Encoder) Init(t *Tree) {
	if t == nil {
		t = &Tree{}
	}

	codes := make(map[Symbol]Code, t.Len())
	maxSymbol := InvalidSymbol
	_ = t.Walk(func(symbol Symbol, hc Code) error {
		codes[symbol] = hc
		if symbol > maxSymbol {
			maxSymbol = symbol
		}
		return nil
	})

	*e = Encoder{
		codes:     codes,
		maxSymbol: maxSymbol,
		minSize:   t.MinSize(),
		maxSize:   t.MaxSize(),
		tree:      t,
	}
}

// Has returns true iff symbol has a codeword.
func (e Encoder) Has(symbol Symbol) bool {
	_, found := e.codes[symbol]
	return found
}

// Encode returns the codeword for symbol.  Symbols not in the tree yield the
// empty Code; use Has to tell them apart from the only symbol of a
// degenerate tree.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Write appends the codewords for the given symbols to dst and returns the
// number of bits written.
//
// Write fails if a symbol has no codeword.  It also fails with
// ErrDegenerateSingleSymbol for a degenerate tree, since the empty codeword
// would produce a bitstream that records nothing.
//
func (e Encoder) Write(dst BitWriter, symbols ...Symbol) (int64, error) {
	if e.tree != nil && e.tree.Degenerate() {
		return 0, errors.WithStack(ErrDegenerateSingleSymbol)
	}

	var n int64
	for _, symbol := range symbols {
		hc, found := e.codes[symbol]
		if !found {
			return n, errors.Errorf("symbol %d has no codeword", symbol)
		}
		for i := 0; i < hc.Len(); i++ {
			if err := dst.WriteBool(hc.Bit(i) != 0); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// MinSize is the bit length of the shortest codeword.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest codeword.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet, or InvalidSymbol if
// the alphabet is empty.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (e Encoder) MaxSymbol() Symbol {
	return e.maxSymbol
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, or 0 for symbols with no codeword.  This array is the input
// expected by NewCanonicalTree.
//
// The only symbol of a degenerate tree also has length 0.  SizeBySymbol
// panics if any codeword is longer than 255 bits, or if MaxSymbol is above
// 65535; Tree.Canonical checks both first.
//
func (e Encoder) SizeBySymbol() []byte {
	assert.Assertf(e.maxSize <= math.MaxUint8, "MaxSize %d > %d", e.maxSize, math.MaxUint8)
	assert.Assertf(e.maxSymbol <= maxDenseSymbol, "MaxSymbol %d > %d", e.maxSymbol, maxDenseSymbol)

	out := make([]byte, int(e.maxSymbol)+1)
	for symbol, hc := range e.codes {
		out[symbol] = byte(hc.Len())
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Only symbols with a codeword are listed.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(e.codes))
	for symbol := range e.codes {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
