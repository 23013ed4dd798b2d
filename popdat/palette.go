package popdat

// RGB is one 8-bit-per-channel color table entry.
type RGB struct{ R, G, B uint8 }

// GenericPalette is a color table of up to 576 RGB triples, each channel
// expanded from a 0-63 source range to 8 bits via raw<<2. Indices
// beyond the source palette's size read as zero.
type GenericPalette struct {
	Entries [576]RGB
}

// At returns the palette entry for index i, or the zero RGB if i is out
// of range. Source palettes vary in size, so an indexed image can
// legitimately address entries its palette never defined.
func (p *GenericPalette) At(i int) RGB {
	if i < 0 || i >= len(p.Entries) {
		return RGB{}
	}
	return p.Entries[i]
}

// NewGenericPaletteFromRaw builds a GenericPalette from raw 0-63 RGB
// triples (the v1 VGA range, and the v2 SVGA/TGA/MULTIPAL raw-triple
// format). Triples beyond 576 are ignored; any index not covered by raw
// remains the zero value.
func NewGenericPaletteFromRaw(raw []byte) GenericPalette {
	var p GenericPalette
	n := len(raw) / 3
	if n > len(p.Entries) {
		n = len(p.Entries)
	}
	for i := 0; i < n; i++ {
		p.Entries[i] = RGB{
			R: expandChannel(raw[i*3+0]),
			G: expandChannel(raw[i*3+1]),
			B: expandChannel(raw[i*3+2]),
		}
	}
	return p
}

func expandChannel(c byte) uint8 { return c << 2 }

// PaletteV1 is the 100-byte v1 palette record: 4 unknown
// bytes, 48 VGA bytes (16 RGB triples, 0-63 each channel), 16 CGA
// pattern bytes, 32 EGA pattern bytes.
type PaletteV1 struct {
	Unknown [4]byte
	VGA     [48]byte
	CGA     [16]byte
	EGA     [32]byte
}

func ParsePaletteV1(payload []byte) (PaletteV1, Warnings, error) {
	var pv PaletteV1
	var warnings Warnings
	if len(payload) != 100 {
		warnings = warnings.add("palette", "v1 palette payload is %d bytes, want 100", len(payload))
	}
	r := newByteReader(payload)
	if b, err := r.bytes(minInt(4, len(payload))); err == nil {
		copy(pv.Unknown[:], b)
	}
	if b, err := r.bytes(minInt(48, r.remaining())); err == nil {
		copy(pv.VGA[:], b)
	}
	if b, err := r.bytes(minInt(16, r.remaining())); err == nil {
		copy(pv.CGA[:], b)
	}
	if b, err := r.bytes(minInt(32, r.remaining())); err == nil {
		copy(pv.EGA[:], b)
	}
	return pv, warnings, nil
}

// Palette builds the GenericPalette a decoded v1 PaletteV1 contributes:
// its 16 VGA triples, 0-63 channels each.
func (pv PaletteV1) Palette() GenericPalette {
	return NewGenericPaletteFromRaw(pv.VGA[:])
}

// PaletteV2Shape is the v2 shape-palette record: 4 unknown, 3 unknown,
// 48 VGA bytes.
type PaletteV2Shape struct {
	Unknown1 [4]byte
	Unknown2 [3]byte
	VGA      [48]byte
}

func ParsePaletteV2Shape(payload []byte) (PaletteV2Shape, error) {
	var pv PaletteV2Shape
	r := newByteReader(payload)
	if err := r.need(4 + 3 + 48); err != nil {
		return pv, err
	}
	u1, _ := r.bytes(4)
	copy(pv.Unknown1[:], u1)
	u2, _ := r.bytes(3)
	copy(pv.Unknown2[:], u2)
	vga, _ := r.bytes(48)
	copy(pv.VGA[:], vga)
	return pv, nil
}

func (pv PaletteV2Shape) Palette() GenericPalette {
	return NewGenericPaletteFromRaw(pv.VGA[:])
}

// ParsePaletteV2Raw builds a GenericPalette straight from a v2
// SVGA/TGA/MULTIPAL entry: raw 0-63 triples, count = size/3, bounded to
// 576.
func ParsePaletteV2Raw(payload []byte) (GenericPalette, Warnings) {
	var warnings Warnings
	if len(payload)/3 > 576 {
		warnings = warnings.add("palette", "v2 raw palette has %d entries, truncating to 576", len(payload)/3)
	}
	return NewGenericPaletteFromRaw(payload), warnings
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
