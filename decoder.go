package huffcode

import (
	"io"

	"github.com/pkg/errors"
)

// Decoder turns a bitstream back into symbols by walking a Tree: each bit
// moves a cursor from the current node to its left (0) or right (1) child,
// and each leaf reached emits its symbol and sends the cursor back to the
// root.
//
// A Decoder holds no per-stream state, so one Decoder may serve any number of
// concurrent Decode calls on independent streams.
type Decoder struct {
	tree *Tree
}

// NewDecoder is a convenience function that constructs a Decoder for t.
func NewDecoder(t *Tree) Decoder {
	var d Decoder
	d.Init(t)
	return d
}

// Init initializes this Decoder to decode with the given Tree.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t}
}

// Tree returns the Tree used by this Decoder.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode reads bits from src until it is exhausted, writing one symbol to dst
// for every complete codeword.  It returns the number of symbols written.
//
// Bits left over at the end of src that do not complete a codeword are
// ignored, as they are normally padding.
//
// If a bit leads to a child that the tree does not have (which can only
// happen with a tree loaded from an incomplete code), or if src or dst fail,
// Decode stops and returns a *DecodeError giving the number of symbols
// already written and the offset of the failing bit.  The error wraps
// ErrIncompleteTree, or the I/O error.
//
// A degenerate tree, whose only codeword is empty, cannot be decoded bit by
// bit: Decode reads nothing and fails with ErrDegenerateSingleSymbol.  Use
// DecodeRepeat when the symbol count is known from elsewhere.  An empty tree
// decodes an empty stream to nothing and fails with ErrIncompleteTree on the
// first bit of any other stream.
//
func (d Decoder) Decode(src BitReader, dst SymbolWriter) (int, error) {
	var root Node
	if d.tree != nil {
		root = d.tree.root
	}

	if _, ok := root.(*Leaf); ok {
		return 0, &DecodeError{Err: errors.WithStack(ErrDegenerateSingleSymbol)}
	}

	var emitted int
	var offset int64
	cursor := root
	for {
		bit, err := src.ReadBool()
		if err == io.EOF {
			return emitted, nil
		}
		if err != nil {
			return emitted, &DecodeError{Emitted: emitted, Offset: offset, Err: err}
		}

		n, ok := cursor.(*Internal)
		if !ok {
			return emitted, &DecodeError{Emitted: emitted, Offset: offset, Err: errors.Wrap(ErrIncompleteTree, "tree is empty")}
		}
		if bit {
			cursor = n.right
		} else {
			cursor = n.left
		}

		switch x := cursor.(type) {
		case nil:
			return emitted, &DecodeError{Emitted: emitted, Offset: offset, Err: errors.WithStack(ErrIncompleteTree)}
		case *Leaf:
			if err := dst.WriteSymbol(x.symbol); err != nil {
				return emitted, &DecodeError{Emitted: emitted, Offset: offset, Err: err}
			}
			emitted++
			cursor = root
		}
		offset++
	}
}

// DecodeRepeat handles the degenerate case that Decode refuses: it writes the
// only symbol of a degenerate tree to dst count times, without reading any
// bits.  It fails with ErrNotDegenerate if the tree is not degenerate, and
// rejects a negative count.
func (d Decoder) DecodeRepeat(dst SymbolWriter, count int) (int, error) {
	if d.tree == nil || !d.tree.Degenerate() {
		return 0, errors.WithStack(ErrNotDegenerate)
	}
	if count < 0 {
		return 0, errors.Errorf("negative repeat count %d", count)
	}
	symbol := d.tree.root.(*Leaf).symbol
	for i := 0; i < count; i++ {
		if err := dst.WriteSymbol(symbol); err != nil {
			return i, &DecodeError{Emitted: i, Err: err}
		}
	}
	return count, nil
}

// DecodeAll is a convenience function that decodes src with t into a slice.
func DecodeAll(t *Tree, src BitReader) ([]Symbol, error) {
	var buf SymbolBuffer
	_, err := NewDecoder(t).Decode(src, &buf)
	return buf.Symbols, err
}
