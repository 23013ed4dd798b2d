package popdat

import (
	"bytes"
	"testing"
)

// TestDecodeRLELR: 0x02 0x41 0x42 0x43 0xFE 0x58 into a 6-byte
// destination yields "ABCXXX".
func TestDecodeRLELR(t *testing.T) {
	src := []byte{0x02, 0x41, 0x42, 0x43, 0xFE, 0x58}
	got, err := Decompress(MethodRLELR, src, 6, 0, 0)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	want := []byte("ABCXXX")
	if !bytes.Equal(got, want) {
		t.Errorf("Decompress() = %q, want %q", got, want)
	}
}

// TestDecodeRLEColumnMajor: width=2, height=3,
// dest_length=6, input 0x05 1 2 3 4 5 6 fills column-major so a
// row-major reading of the destination is "1 4 2 5 3 6".
func TestDecodeRLEColumnMajor(t *testing.T) {
	src := []byte{0x05, 1, 2, 3, 4, 5, 6}
	got, err := Decompress(MethodRLEColumn, src, 6, 2, 3)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	want := []byte{1, 4, 2, 5, 3, 6}
	if !bytes.Equal(got, want) {
		t.Errorf("Decompress() = %v, want %v", got, want)
	}
}

// TestDecodeRawLR: decode(encode_raw(bytes)) == bytes for method 0.
func TestDecodeRawLR(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	got, err := Decompress(MethodRawLR, src, len(src), 0, 0)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Errorf("Decompress() = %v, want %v", got, src)
	}
}

// TestDecodeRLERepeatRun: RLE-LR applied to k
// identical bytes (k<=128), expressed as the repeat token (-k+1, b),
// produces k copies of b.
func TestDecodeRLERepeatRun(t *testing.T) {
	for _, k := range []int{1, 2, 5, 128} {
		token := int8(-(k - 1))
		src := []byte{byte(token), 0x99}
		got, err := Decompress(MethodRLELR, src, k, 0, 0)
		if err != nil {
			t.Fatalf("k=%d: Decompress() error = %v", k, err)
		}
		want := bytes.Repeat([]byte{0x99}, k)
		if !bytes.Equal(got, want) {
			t.Errorf("k=%d: Decompress() = %v, want %v", k, got, want)
		}
	}
}

func TestDecodeRLEOverrun(t *testing.T) {
	src := []byte{0x05, 0x41} // count says 6 literals, only 1 byte follows
	if _, err := Decompress(MethodRLELR, src, 6, 0, 0); err == nil {
		t.Error("Decompress() expected overrun error, got nil")
	}
}

// TestExpandSubByte: depth=4, width=3, stride=2,
// input 0xAB 0xC0 yields 0xA, 0xB, 0xC.
func TestExpandSubByte(t *testing.T) {
	got, err := expandSubByte([]byte{0xAB, 0xC0}, 3, 1, 4, 2)
	if err != nil {
		t.Fatalf("expandSubByte() error = %v", err)
	}
	want := []byte{0xA, 0xB, 0xC}
	if !bytes.Equal(got, want) {
		t.Errorf("expandSubByte() = %v, want %v", got, want)
	}
}

func TestExpandSubByte1BPP(t *testing.T) {
	// 0b10110010 -> 1,0,1,1,0,0,1,0
	got, err := expandSubByte([]byte{0xB2}, 8, 1, 1, 1)
	if err != nil {
		t.Fatalf("expandSubByte() error = %v", err)
	}
	want := []byte{1, 0, 1, 1, 0, 0, 1, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("expandSubByte() = %v, want %v", got, want)
	}
}

func TestExpandSubByteInvalidDepth(t *testing.T) {
	if _, err := expandSubByte([]byte{0}, 1, 1, 3, 1); err == nil {
		t.Error("expandSubByte() expected error for unsupported depth, got nil")
	}
}

// TestDecodeLZGLiteralsOnly exercises the LZG decoder against a
// hand-crafted literal-only stream (no back-references): with an
// all-ones mask every bit selects the literal path, so the decoded
// bytes must equal the selected literal byte regardless of the window
// state, a minimal but real exercise of the mask refill/LZG dispatch
// path.
func TestDecodeLZGLiteralsOnly(t *testing.T) {
	// mask byte 0xFF: all 8 flag bits are 1 (literal). Emit 4 literals.
	src := []byte{0xFF, 'A', 'B', 'C', 'D'}
	got, err := Decompress(MethodLZGLR, src, 4, 0, 0)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(got, []byte("ABCD")) {
		t.Errorf("Decompress() = %q, want %q", got, "ABCD")
	}
}

func TestDecodeRLEC(t *testing.T) {
	// 0x02 -> copy 3 literal bytes; 0x81 -> repeat next byte 2 times.
	src := []byte{0x02, 'A', 'B', 'C', 0x81, 'X'}
	got, err := decodeRLEC(src, 5)
	if err != nil {
		t.Fatalf("decodeRLEC() error = %v", err)
	}
	want := []byte("ABCXX")
	if !bytes.Equal(got, want) {
		t.Errorf("decodeRLEC() = %q, want %q", got, want)
	}
}
