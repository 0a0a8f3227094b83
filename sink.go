package huffcode

import (
	"io"

	"github.com/pkg/errors"
)

// SymbolWriter is a sink for decoded symbols, which are written one at a
// time in decode order.
type SymbolWriter interface {
	WriteSymbol(symbol Symbol) error
}

// ByteSink is a SymbolWriter that writes each symbol as a single byte.
// Symbols above MaxByteSymbol are rejected.
type ByteSink struct {
	W io.ByteWriter
}

// WriteSymbol writes symbol as one byte.
func (sink ByteSink) WriteSymbol(symbol Symbol) error {
	if symbol < 0 || symbol > MaxByteSymbol {
		return errors.Errorf("symbol %d does not fit in a byte", symbol)
	}
	return errors.WithStack(sink.W.WriteByte(byte(symbol)))
}

// SymbolBuffer is a SymbolWriter that collects symbols in memory.
type SymbolBuffer struct {
	Symbols []Symbol
}

// WriteSymbol appends symbol to the buffer.  It never fails.
func (buf *SymbolBuffer) WriteSymbol(symbol Symbol) error {
	buf.Symbols = append(buf.Symbols, symbol)
	return nil
}

// Reset empties the buffer.
func (buf *SymbolBuffer) Reset() {
	buf.Symbols = buf.Symbols[:0]
}

var (
	_ SymbolWriter = ByteSink{}
	_ SymbolWriter = (*SymbolBuffer)(nil)
)
