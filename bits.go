package huffcode

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitReader is a source of bits.  Each call to ReadBool consumes exactly one
// bit, with true meaning 1.  ReadBool returns io.EOF once the source is
// exhausted.
//
// *bitio.Reader from github.com/icza/bitio satisfies this interface.
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is a sink for bits.  Each call to WriteBool appends exactly one
// bit, with true meaning 1.
//
// *bitio.Writer from github.com/icza/bitio satisfies this interface.
type BitWriter interface {
	WriteBool(bit bool) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// NewBitReader returns a BitReader that reads bits from r, most significant
// bit of each byte first.  If numBits is non-negative, the reader reports
// io.EOF after numBits bits, so that the padding at the end of the final byte
// is never decoded.
func NewBitReader(r io.Reader, numBits int64) BitReader {
	return &limitedBitReader{r: bitio.NewReader(r), remaining: numBits}
}

type limitedBitReader struct {
	r         *bitio.Reader
	remaining int64
}

func (br *limitedBitReader) ReadBool() (bool, error) {
	if br.remaining == 0 {
		return false, io.EOF
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		if err == io.EOF {
			return false, io.EOF
		}
		return false, errors.WithStack(err)
	}
	if br.remaining > 0 {
		br.remaining--
	}
	return bit, nil
}

// CountingBitWriter writes bits to an io.Writer, most significant bit of
// each byte first, and keeps count of how many bits were written.  The count
// is what NewBitReader needs to skip the padding when reading them back.
type CountingBitWriter struct {
	w *bitio.Writer
	n int64
}

// NewBitWriter returns a CountingBitWriter that writes to w.  Call Close to
// flush the final, partially filled byte.
func NewBitWriter(w io.Writer) *CountingBitWriter {
	return &CountingBitWriter{w: bitio.NewWriter(w)}
}

// WriteBool appends one bit.
func (bw *CountingBitWriter) WriteBool(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return errors.WithStack(err)
	}
	bw.n++
	return nil
}

// Len returns the number of bits written so far, not counting padding.
func (bw *CountingBitWriter) Len() int64 {
	return bw.n
}

// Close pads the final byte with zero bits and flushes it.  It does not close
// the underlying io.Writer.
func (bw *CountingBitWriter) Close() error {
	return errors.WithStack(bw.w.Close())
}

var (
	_ BitReader = (*limitedBitReader)(nil)
	_ BitWriter = (*CountingBitWriter)(nil)
	_ io.Closer = (*CountingBitWriter)(nil)
)
