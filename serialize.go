package huffcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteTo saves the tree to w as a sequence of line pairs, one pair per
// symbol: the symbol as a decimal integer, then its codeword as a string of
// '0' and '1' characters.  Pairs appear in depth-first order, left subtree
// before right subtree.  A degenerate tree saves a single pair whose codeword
// line is empty, and an empty tree saves nothing.
//
// The output can be read back with ReadFrom or Load.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	var scratch []byte
	err := t.Walk(func(symbol Symbol, hc Code) error {
		scratch = strconv.AppendInt(scratch[:0], int64(symbol), 10)
		scratch = append(scratch, '\n')
		scratch = append(scratch, hc.Path()...)
		scratch = append(scratch, '\n')
		_, err := bw.Write(scratch)
		return err
	})
	if err == nil {
		err = bw.Flush()
	}
	return cw.n, errors.WithStack(err)
}

// ReadFrom replaces this Tree with one loaded from r, which must hold line
// pairs in the format written by WriteTo.  Pairs may appear in any order.
// Both "\n" and "\r\n" line endings are accepted.
//
// Input with zero pairs yields an empty Tree.  Input that ends in the middle
// of a pair, a symbol line that is not a decimal integer in 0 .. MaxSymbol, a
// codeword line with characters other than '0' and '1', or a set of
// codewords that is not prefix-free all yield an error wrapping
// ErrMalformedCode.  On error, the Tree is left unchanged.
//
func (t *Tree) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	loaded, err := loadPairs(cr)
	if err != nil {
		return cr.n, err
	}
	*t = *loaded
	return cr.n, nil
}

// Load reads a Tree from r.  See Tree.ReadFrom for the format.
func Load(r io.Reader) (*Tree, error) {
	return loadPairs(r)
}

func loadPairs(r io.Reader) (*Tree, error) {
	var l Loader
	sc := bufio.NewScanner(r)
	lineNum := 0
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNum++
		return strings.TrimSuffix(sc.Text(), "\r"), true
	}

	for {
		symbolLine, ok := nextLine()
		if !ok {
			break
		}

		codeLine, ok := nextLine()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, errors.WithStack(err)
			}
			return nil, malformedf(lineNum, "input ended after symbol %q with no codeword line", symbolLine)
		}

		value, err := strconv.ParseInt(symbolLine, 10, 32)
		if err != nil || value < 0 {
			return nil, malformedf(lineNum-1, "symbol %q is not an integer in 0 .. %d", symbolLine, MaxSymbol)
		}

		hc, err := ParseCode(codeLine)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}

		if err := l.Add(Symbol(value), hc); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return l.Tree(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

var (
	_ io.WriterTo   = (*Tree)(nil)
	_ io.ReaderFrom = (*Tree)(nil)
)
