package huffcode

import (
	"bytes"
	"io"
	"testing"
)

func TestNewBitReader(t *testing.T) {
	type testRow struct {
		name    string
		data    []byte
		numBits int64
		expect  string
	}

	testData := [...]testRow{
		{"limited", []byte{0xa5, 0xc0}, 10, "1010010111"},
		{"unlimited", []byte{0x81}, -1, "10000001"},
		{"zero", []byte{0xff}, 0, ""},
		{"short-data", []byte{0xf0}, 12, "11110000"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			r := NewBitReader(bytes.NewReader(row.data), row.numBits)
			var actual Code
			for {
				bit, err := r.ReadBool()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadBool failed: %v", err)
				}
				if bit {
					actual = actual.Append(1)
				} else {
					actual = actual.Append(0)
				}
			}
			if actual.Path() != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual.Path())
			}
		})
	}
}

func TestByteSink(t *testing.T) {
	var out bytes.Buffer
	sink := ByteSink{W: &out}
	for _, symbol := range []Symbol{'h', 'i', 0, 255} {
		if err := sink.WriteSymbol(symbol); err != nil {
			t.Errorf("WriteSymbol(%d) failed: %v", symbol, err)
		}
	}
	if expect := "hi\x00\xff"; out.String() != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, out.String())
	}

	if err := sink.WriteSymbol(256); err == nil {
		t.Errorf("expected WriteSymbol(256) to fail")
	}
}
