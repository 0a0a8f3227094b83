package huffcode

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is built from a frequency
	// table in which no symbol has a positive frequency.
	ErrEmptyAlphabet = errors.New("empty alphabet: no symbol has a positive frequency")

	// ErrMalformedCode is returned when a saved code violates the
	// symbol/codeword line pair format.
	ErrMalformedCode = errors.New("malformed Huffman code")

	// ErrIncompleteTree is returned when decoding walks into a child that
	// was never defined by the loaded code.
	ErrIncompleteTree = errors.New("incomplete Huffman tree")

	// ErrDegenerateSingleSymbol is returned when bit-driven decoding is
	// attempted against a tree whose root is a leaf.  Such a tree has a
	// single zero-length codeword, so the bitstream cannot say how many
	// symbols it holds.
	ErrDegenerateSingleSymbol = errors.New("degenerate Huffman tree: root is a leaf")

	// ErrNotDegenerate is returned by Decoder.DecodeRepeat when the root
	// of the tree is not a leaf.
	ErrNotDegenerate = errors.New("Huffman tree root is not a leaf")
)

// DecodeError reports a failed Decode along with how far it got.  Emitted
// symbols were already written to the sink and may be usable by the caller.
type DecodeError struct {
	// Emitted is the number of symbols written before the failure.
	Emitted int

	// Offset is the zero-based index of the bit at which decoding failed.
	Offset int64

	// Err is the underlying cause.
	Err error
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at bit %d after %d symbols: %v", err.Offset, err.Emitted, err.Err)
}

// Unwrap returns the underlying cause.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

// Cause returns the underlying cause, for github.com/pkg/errors.
func (err *DecodeError) Cause() error {
	return err.Err
}

var _ error = (*DecodeError)(nil)

func malformedf(line int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedCode, "line %d: "+format, append([]interface{}{line}, args...)...)
}
