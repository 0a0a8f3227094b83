package huffcode

import (
	"fmt"
	"io"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code represents a sequence of bits: the path from the root of a Tree to one
// of its leaves, where 0 means "go left" and 1 means "go right".  The zero
// Code is the empty path, which names the root itself.
type Code struct {
	path string
}

// MakeCode is a convenience function that constructs a Code from the low
// size bits of bits.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint32) Code {
	var sb strings.Builder
	sb.Grow(int(size))
	for i := byte(0); i < size; i++ {
		sb.WriteByte('0' + byte((bits>>i)&1))
	}
	return Code{path: sb.String()}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint32) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// ParseCode parses a string of '0' and '1' characters into a Code.  The empty
// string is valid and yields the empty Code.
func ParseCode(str string) (Code, error) {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return Code{}, errors.Wrapf(ErrMalformedCode, "codeword %q: invalid character %q at position %d", str, ch, i)
		}
	}
	return Code{path: str}, nil
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc.path)
}

// Bit returns the i'th bit of this Code, counting from the first bit.
func (hc Code) Bit(i int) uint {
	return uint(hc.path[i] - '0')
}

// Append returns this Code with one more bit added to the end.
func (hc Code) Append(bit uint) Code {
	if bit == 0 {
		return Code{path: hc.path + "0"}
	}
	return Code{path: hc.path + "1"}
}

// Concat returns the concatenation of this Code and the given Codes.
func (hc Code) Concat(more ...Code) Code {
	var sb strings.Builder
	sb.WriteString(hc.path)
	for _, other := range more {
		sb.WriteString(other.path)
	}
	return Code{path: sb.String()}
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(hc.path, prefix.path)
}

// Path returns the bits of this Code as an unquoted string of '0' and '1'
// characters, which is the form used in saved codes.
func (hc Code) Path() string {
	return hc.path
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.path == "" {
		return "\"\""
	}
	return strconv.Quote(hc.path)
}

// Reader returns a BitReader which yields the bits of this Code in order.
func (hc Code) Reader() BitReader {
	return &codeReader{path: hc.path}
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint32) uint32 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse32(bits) >> (32 - size)
}

type codeReader struct {
	path string
	pos  int
}

func (r *codeReader) ReadBool() (bool, error) {
	if r.pos >= len(r.path) {
		return false, io.EOF
	}
	bit := r.path[r.pos] == '1'
	r.pos++
	return bit, nil
}

var _ BitReader = (*codeReader)(nil)
