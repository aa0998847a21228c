// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import (
	"bytes"
	"fmt"
	"testing"
)

func sequential(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func repeated(pattern byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = pattern
	}
	return b
}

func encodeOrFatal(t *testing.T, input []byte, rows, cols uint32) []byte {
	t.Helper()
	out := make([]byte, MinOutputSize(rows, cols))
	n, err := Encode(input, rows, cols, out)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return out[:n]
}

func TestRoundTrip_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols uint32
		input      []byte
		wantSize   int
		wantPrefix []byte
	}{
		{
			name: "4x4-sequential-literal",
			rows: 4, cols: 4,
			input:      sequential(16),
			wantSize:   26,
			wantPrefix: []byte{0x02, 0x04, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02},
		},
		{
			name: "4x4-all-equal",
			rows: 4, cols: 4,
			input:      repeated(0xaa, 16),
			wantSize:   11,
			wantPrefix: []byte{0x02, 0x04, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x40, 0xaa},
		},
		{
			name: "8x4-two-distinct-literal-cells",
			rows: 8, cols: 4,
			input:    sequential(32),
			wantSize: 43,
		},
		{
			name: "5x5-literal-plus-padded-cells",
			rows: 5, cols: 5,
			input:    sequential(25),
			wantSize: 9 + 17 + (1 + 4) + (1 + 4) + (1 + 1),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compressed := encodeOrFatal(t, tc.input, tc.rows, tc.cols)
			if len(compressed) != tc.wantSize {
				t.Fatalf("compressed size = %d, want %d", len(compressed), tc.wantSize)
			}
			if tc.wantPrefix != nil && !bytes.Equal(compressed[:len(tc.wantPrefix)], tc.wantPrefix) {
				t.Fatalf("prefix = % x, want % x", compressed[:len(tc.wantPrefix)], tc.wantPrefix)
			}

			out := make([]byte, len(tc.input))
			n, err := Decode(compressed, out)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if n != len(tc.input) {
				t.Fatalf("Decode returned %d bytes, want %d", n, len(tc.input))
			}
			if !bytes.Equal(out, tc.input) {
				t.Fatalf("round-trip mismatch:\n got=% x\nwant=% x", out, tc.input)
			}
		})
	}
}

func TestEncode_StackedCellsUseFullCellBackReference(t *testing.T) {
	// An 8x8 block made of four copies of the same 4x4 pattern: the first
	// cell must be literal, the remaining three full-cell back-references.
	cell := sequential(16)
	input := make([]byte, 64)
	for blockRow := 0; blockRow < 2; blockRow++ {
		for blockCol := 0; blockCol < 2; blockCol++ {
			for r := 0; r < 4; r++ {
				row := blockRow*4 + r
				start := row*8 + blockCol*4
				copy(input[start:start+4], cell[r*4:r*4+4])
			}
		}
	}

	compressed := encodeOrFatal(t, input, 8, 8)
	wantSize := 9 + 17 + 3 + 3 + 3
	if len(compressed) != wantSize {
		t.Fatalf("compressed size = %d, want %d", len(compressed), wantSize)
	}

	out := make([]byte, len(input))
	if _, err := Decode(compressed, out); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatal("round-trip mismatch for stacked-cell block")
	}
}

func TestRoundTrip_RandomShapesAndContent(t *testing.T) {
	shapes := [][2]uint32{{4, 4}, {4, 8}, {8, 4}, {5, 5}, {9, 7}, {16, 16}, {17, 13}, {1, 16}, {16, 1}}

	contentFns := map[string]func(n int) []byte{
		"sequential":  sequential,
		"all-zero":    func(n int) []byte { return make([]byte, n) },
		"all-max":     func(n int) []byte { return repeated(0xff, n) },
		"byte-cycle":  func(n int) []byte { return bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7}, (n/7)+1)[:n] },
	}

	for _, shape := range shapes {
		rows, cols := shape[0], shape[1]
		if rows*cols < 16 {
			continue
		}
		for name, fn := range contentFns {
			t.Run(fmt.Sprintf("%dx%d/%s", rows, cols, name), func(t *testing.T) {
				input := fn(int(rows * cols))
				compressed := encodeOrFatal(t, input, rows, cols)

				out := make([]byte, len(input))
				if _, err := Decode(compressed, out); err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !bytes.Equal(out, input) {
					t.Fatal("round-trip mismatch")
				}
			})
		}
	}
}

func TestEncode_BoundedOutputGrowth(t *testing.T) {
	rows, cols := uint32(13), uint32(11)
	input := sequential(int(rows * cols))
	compressed := encodeOrFatal(t, input, rows, cols)

	grid := newCellGrid(rows, cols)
	maxLen := len(input) + int(grid.count()) + 9
	if len(compressed) > maxLen {
		t.Fatalf("compressed length %d exceeds bound %d", len(compressed), maxLen)
	}
}

func TestEncode_Determinism(t *testing.T) {
	rows, cols := uint32(12), uint32(20)
	input := bytes.Repeat([]byte{1, 2, 3, 4}, int(rows*cols)/4)

	a := encodeOrFatal(t, input, rows, cols)
	b := encodeOrFatal(t, input, rows, cols)
	if !bytes.Equal(a, b) {
		t.Fatal("Encode is not deterministic across identical calls")
	}
}

func TestEncode_RejectsUndersizedInput(t *testing.T) {
	out := make([]byte, 64)
	if _, err := Encode(make([]byte, 15), 3, 5, out); err == nil {
		t.Fatal("expected error for block smaller than 16 bytes")
	}
	if _, err := Encode(make([]byte, 16), 4, 5, out); err == nil {
		t.Fatal("expected error for input length not matching rows*cols")
	}
}

func TestEncode_RejectsUndersizedOutput(t *testing.T) {
	input := sequential(16)
	out := make([]byte, MinOutputSize(4, 4)-1)
	if _, err := Encode(input, 4, 4, out); err == nil {
		t.Fatal("expected error for output buffer below MinOutputSize")
	}
}

func TestDecode_RejectsShapeMismatch(t *testing.T) {
	input := sequential(16)
	compressed := encodeOrFatal(t, input, 4, 4)

	out := make([]byte, 15)
	if _, err := Decode(compressed, out); err != ErrShapeMismatch {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestDecode_RejectsUnknownToken(t *testing.T) {
	input := sequential(16)
	compressed := encodeOrFatal(t, input, 4, 4)
	compressed[9] = 0x20 // not a valid token in any recognized range

	out := make([]byte, 16)
	if _, err := Decode(compressed, out); err != ErrMalformedStream {
		t.Fatalf("got %v, want ErrMalformedStream", err)
	}
}

func TestDecode_RejectsTruncatedStream(t *testing.T) {
	input := sequential(16)
	compressed := encodeOrFatal(t, input, 4, 4)

	out := make([]byte, 16)
	if _, err := Decode(compressed[:len(compressed)-1], out); err != ErrMalformedStream {
		t.Fatalf("got %v, want ErrMalformedStream", err)
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(uint32(4), uint32(4), sequential(16))
	f.Add(uint32(5), uint32(5), sequential(25))
	f.Add(uint32(8), uint32(8), repeated(0x11, 64))

	f.Fuzz(func(t *testing.T, rows, cols uint32, data []byte) {
		rows = rows%32 + 1
		cols = cols%32 + 1
		n := int(rows) * int(cols)
		if n < 16 || n > len(data) {
			t.Skip()
		}
		input := data[:n]

		out := make([]byte, MinOutputSize(rows, cols))
		written, err := Encode(input, rows, cols, out)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		compressed := out[:written]

		decoded := make([]byte, n)
		if _, err := Decode(compressed, decoded); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, input) {
			t.Fatalf("round-trip mismatch for %dx%d", rows, cols)
		}
	})
}

func FuzzDecode_NeverWritesOutOfBounds(f *testing.F) {
	input := sequential(64)
	out := make([]byte, MinOutputSize(8, 8))
	n, err := Encode(input, 8, 8, out)
	if err != nil {
		f.Fatalf("setup Encode failed: %v", err)
	}
	f.Add(out[:n], 64)

	f.Fuzz(func(t *testing.T, compressed []byte, outLen int) {
		if outLen < 0 || outLen > 1<<20 {
			t.Skip()
		}
		dst := make([]byte, outLen)
		// Decode must either succeed or return a failure sentinel; it must
		// never panic or write past dst, which Go's own slice bounds checks
		// would turn into a panic if it tried.
		_, _ = Decode(compressed, dst)
	})
}
