package popdat

import "testing"

// TestGenericPaletteChannelExpansion: every channel of every
// GenericPalette entry equals the source channel shifted left by two,
// and indices beyond the source size read as zero.
func TestGenericPaletteChannelExpansion(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x3F, 0x20, 0x10}
	pal := NewGenericPaletteFromRaw(raw)

	got := pal.At(0)
	want := RGB{R: 0x01 << 2, G: 0x02 << 2, B: 0x03 << 2}
	if got != want {
		t.Errorf("pal.At(0) = %+v, want %+v", got, want)
	}

	got = pal.At(1)
	want = RGB{R: 0x3F << 2, G: 0x20 << 2, B: 0x10 << 2}
	if got != want {
		t.Errorf("pal.At(1) = %+v, want %+v", got, want)
	}

	if got := pal.At(2); got != (RGB{}) {
		t.Errorf("pal.At(2) = %+v, want zero value (index beyond source)", got)
	}
	if got := pal.At(575); got != (RGB{}) {
		t.Errorf("pal.At(575) = %+v, want zero value", got)
	}
	if got := pal.At(-1); got != (RGB{}) {
		t.Errorf("pal.At(-1) = %+v, want zero value (out of range)", got)
	}
	if got := pal.At(576); got != (RGB{}) {
		t.Errorf("pal.At(576) = %+v, want zero value (out of range)", got)
	}
}

func TestNewGenericPaletteFromRaw_TruncatesAt576(t *testing.T) {
	raw := make([]byte, 600*3)
	for i := range raw {
		raw[i] = 0x3F
	}
	pal := NewGenericPaletteFromRaw(raw)
	for i := 0; i < 576; i++ {
		if pal.Entries[i].R != 0xFC {
			t.Fatalf("entry %d not populated", i)
		}
	}
}

func TestParsePaletteV1_ShortPayloadWarns(t *testing.T) {
	_, warnings, err := ParsePaletteV1(make([]byte, 50))
	if err != nil {
		t.Fatalf("ParsePaletteV1() error = %v", err)
	}
	if len(warnings) == 0 {
		t.Error("ParsePaletteV1() expected a size-mismatch warning, got none")
	}
}

func TestParsePaletteV2Raw_OversizeWarns(t *testing.T) {
	raw := make([]byte, 577*3)
	_, warnings := ParsePaletteV2Raw(raw)
	if len(warnings) == 0 {
		t.Error("ParsePaletteV2Raw() expected an oversize warning, got none")
	}
}
