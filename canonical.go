package huffcode

import (
	"github.com/pkg/errors"
)

const maxBitsPerCode = 32

// NewCanonicalTree constructs the canonical Huffman tree for the given bit
// lengths, one for each symbol, per the algorithm in RFC 1951 Section 3.2.2.
// Symbols with an assigned bit length of 0 are omitted from the code
// entirely.  Codewords of equal length are assigned in Symbol order.
//
// Not all inputs are valid.  In particular, this function rejects lengths
// over 32 bits, and length sets that would leave some paths unused or would
// need more paths than exist.  Length sets with 0 symbols (giving an empty
// tree) or with 1 symbol of length 1 (giving a tree whose "1" path is absent)
// are permitted, however, as there is no way to do better for such cases.
//
// The nodes of the returned tree have weight 0.
//
func NewCanonicalTree(sizes []byte) (*Tree, error) {
	numSymbols := Symbol(len(sizes))

	var countArray [maxBitsPerCode + 1]uint64
	var numSymbolsWithNonZeroSizes uint64
	var minSize, maxSize byte
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		size := sizes[symbol]
		if size == 0 {
			continue
		}

		// forbid codes with sizes greater than maxBitsPerCode
		if size > maxBitsPerCode {
			return nil, errors.Errorf("invalid bit length for symbol %d: got %d, max %d", symbol, size, maxBitsPerCode)
		}

		if numSymbolsWithNonZeroSizes == 0 {
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}

		countArray[size]++
		numSymbolsWithNonZeroSizes++
	}

	// permit degenerate code with 0 symbols
	if numSymbolsWithNonZeroSizes == 0 {
		return &Tree{}, nil
	}

	var nextCodeArray [maxBitsPerCode + 1]uint64
	var code uint64
	for bits := minSize; bits <= maxSize; bits++ {
		code = (code + countArray[bits-1]) << 1
		nextCodeArray[bits] = code
	}
	code += countArray[maxSize]

	// permit degenerate code with 1 symbol
	// forbid all other degenerate codes
	if code == 1 && maxSize == 1 {
		// pass
	} else if code != (uint64(1) << maxSize) {
		return nil, errors.Errorf("degenerate Huffman tree: expected %d, got %d", uint64(1)<<maxSize, code)
	}

	var l Loader
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		size := sizes[symbol]
		if size == 0 {
			continue
		}

		code := nextCodeArray[size]
		nextCodeArray[size]++

		if err := l.Add(symbol, MakeReversedCode(size, uint32(code))); err != nil {
			return nil, err
		}
	}
	return l.Tree(), nil
}

// Canonical returns the canonical Huffman tree with the same codeword
// lengths as this one.  Every symbol keeps its codeword length, so the code
// is exactly as compact, but the codewords themselves are determined by the
// lengths alone; see NewCanonicalTree.
//
// Empty and degenerate trees are already canonical and are returned as is.
// Incomplete trees, trees with codewords over 32 bits, and trees with symbols
// over 65535 are rejected.
//
func (t *Tree) Canonical() (*Tree, error) {
	if t.Empty() || t.Degenerate() {
		return t, nil
	}
	if !t.Complete() {
		return nil, errors.Wrap(ErrIncompleteTree, "cannot canonicalize")
	}
	if t.maxSize > maxBitsPerCode {
		return nil, errors.Errorf("cannot canonicalize: codeword of %d bits, max %d", t.maxSize, maxBitsPerCode)
	}
	e := NewEncoder(t)
	if e.MaxSymbol() > maxDenseSymbol {
		return nil, errors.Errorf("cannot canonicalize: symbol %d, max %d", e.MaxSymbol(), maxDenseSymbol)
	}
	return NewCanonicalTree(e.SizeBySymbol())
}
