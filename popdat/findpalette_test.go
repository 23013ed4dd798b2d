package popdat

import (
	"bytes"
	"testing"
)

func TestFindPalette_V1(t *testing.T) {
	raw := buildV1Container([]struct {
		id      uint16
		payload []byte
	}{
		{id: 20, payload: []byte{1, 0, 4, 0, 0x00, 0x00, 0xAA, 0xBB, 0xCC, 0xDD}},
		{id: 10, payload: validVGAPalette100()},
	})

	c, err := OpenReader(bytes.NewReader(raw), POP1)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer c.Close()

	pal, _, err := FindPalette(c, POP1)
	if err != nil {
		t.Fatalf("FindPalette() error = %v", err)
	}
	if pal == nil {
		t.Fatal("FindPalette() = nil, want a palette")
	}
}

func TestFindPalette_V1_NoPaletteEntry(t *testing.T) {
	raw := buildV1Container([]struct {
		id      uint16
		payload []byte
	}{
		{id: 1, payload: []byte{1, 2, 3}},
	})

	c, err := OpenReader(bytes.NewReader(raw), POP1)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer c.Close()

	pal, _, err := FindPalette(c, POP1)
	if err != nil {
		t.Fatalf("FindPalette() error = %v", err)
	}
	if pal != nil {
		t.Errorf("FindPalette() = %+v, want nil (no candidate entry)", pal)
	}
}
