package huffcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestEncoder(t *testing.T) {
	e := NewEncoder(makeTestTree())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	if e.MaxSymbol() != 5 {
		t.Errorf("expected MaxSymbol 5, got %d", e.MaxSymbol())
	}
	if e.Has(6) || e.Has(InvalidSymbol) {
		t.Errorf("expected symbols 6 and -1 to have no codeword")
	}
}

func TestEncoder_Write(t *testing.T) {
	e := NewEncoder(makeTestTree())

	var out bytes.Buffer
	bw := NewBitWriter(&out)
	n, err := e.Write(bw, 5, 1, 2, 4)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if n != 11 || bw.Len() != 11 {
		t.Errorf("expected 11 bits, got %d (Len=%d)", n, bw.Len())
	}

	// 0 1101 100 111 + 00000 padding
	expect := []byte{0x6c, 0xe0}
	if !bytes.Equal(out.Bytes(), expect) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, out.Bytes())
	}

	if _, err := e.Write(bw, 6); err == nil {
		t.Errorf("expected Write to reject a symbol with no codeword")
	}
}

func TestEncoder_Degenerate(t *testing.T) {
	tree, err := Build([]uint32{1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	e := NewEncoder(tree)

	if !e.Has(0) || e.Encode(0).Len() != 0 {
		t.Errorf("expected symbol 0 to have the empty codeword, got %s", e.Encode(0))
	}
	var out bytes.Buffer
	if _, err := e.Write(NewBitWriter(&out), 0); !errors.Is(err, ErrDegenerateSingleSymbol) {
		t.Errorf("expected ErrDegenerateSingleSymbol, got %v", err)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	const message = "abracadabra, said the magician"

	freqs := make([]uint32, 256)
	for i := 0; i < len(message); i++ {
		freqs[message[i]]++
	}
	tree, err := Build(freqs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	symbols := make([]Symbol, len(message))
	for i := 0; i < len(message); i++ {
		symbols[i] = Symbol(message[i])
	}

	var packed bytes.Buffer
	bw := NewBitWriter(&packed)
	if _, err := NewEncoder(tree).Write(bw, symbols...); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var saved bytes.Buffer
	if _, err := tree.WriteTo(&saved); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	reloaded, err := Load(&saved)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var out bytes.Buffer
	n, err := NewDecoder(reloaded).Decode(NewBitReader(&packed, bw.Len()), ByteSink{W: &out})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != len(message) || out.String() != message {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", message, out.String())
	}
}

func TestEncoder_LargeSymbol(t *testing.T) {
	tree := loadString(t, "2000000000\n0\n1\n1\n")
	e := NewEncoder(tree)

	if e.MaxSymbol() != 2000000000 {
		t.Errorf("expected MaxSymbol 2000000000, got %d", e.MaxSymbol())
	}
	if hc := e.Encode(2000000000); hc.Path() != "0" {
		t.Errorf("expected \"0\", got %s", hc)
	}

	var out bytes.Buffer
	bw := NewBitWriter(&out)
	if n, err := e.Write(bw, 2000000000, 1); err != nil || n != 2 {
		t.Errorf("expected (2, nil), got (%d, %v)", n, err)
	}

	if canonical, err := tree.Canonical(); err == nil {
		t.Errorf("expected Canonical to reject symbol 2000000000, got %v", canonical)
	}
}

func TestEncoder_NilTree(t *testing.T) {
	e := NewEncoder(nil)
	if e.Has(0) {
		t.Errorf("expected no codewords")
	}
	if e.MaxSymbol() != InvalidSymbol {
		t.Errorf("expected MaxSymbol %d, got %d", InvalidSymbol, e.MaxSymbol())
	}
	if len(e.SizeBySymbol()) != 0 {
		t.Errorf("expected no sizes, got %v", e.SizeBySymbol())
	}

	var out bytes.Buffer
	if _, err := e.Write(NewBitWriter(&out), 0); err == nil {
		t.Errorf("expected Write to reject a symbol with no codeword")
	}
}
