package popdat

import (
	"fmt"
	"strings"
)

// FrameRecord is one row of a FrameArray.txt source binary: image and
// sword are signed 16-bit indices, dx/dy are signed bytes, and flags is
// a byte of packed bit fields.
type FrameRecord struct {
	Image, Sword int16
	DX, DY       int8
	Flags        byte
}

const frameRecordSize = 7 // image i16 + sword i16 + dx i8 + dy i8 + flags u8

// ParseFrameTable reads a frame-table binary: length divisible by 7,
// each record (i16 image, i16 sword, i8 dx, i8 dy, u8 flags).
func ParseFrameTable(data []byte) ([]FrameRecord, error) {
	if len(data)%frameRecordSize != 0 {
		return nil, fmt.Errorf("popdat: frame table length %d is not divisible by %d", len(data), frameRecordSize)
	}
	r := newByteReader(data)
	n := len(data) / frameRecordSize
	out := make([]FrameRecord, 0, n)
	for i := 0; i < n; i++ {
		image, err := r.i16()
		if err != nil {
			return nil, err
		}
		sword, err := r.i16()
		if err != nil {
			return nil, err
		}
		dx, err := r.i8()
		if err != nil {
			return nil, err
		}
		dy, err := r.i8()
		if err != nil {
			return nil, err
		}
		flags, err := r.u8()
		if err != nil {
			return nil, err
		}
		out = append(out, FrameRecord{Image: image, Sword: sword, DX: dx, DY: dy, Flags: flags})
	}
	return out, nil
}

// FormatFrameTable renders the parsed records as FrameArray.txt's
// printed form: a C array literal, one record per line, with sword
// split into its high flag bits (hex) and low 6-bit value, and flags
// split into its high flag bits (hex) and the low-5-bit weight.
func FormatFrameTable(records []FrameRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pop_frame_type frame_table_kid[%d] = {\r\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "{ %4d, 0x%04X|%2d, %3d, %3d, 0x%02X|%2d},\r\n",
			r.Image, uint16(r.Sword)&^0x3F, r.Sword&0x3F, r.DX, r.DY, r.Flags&^0x1F, r.Flags&0x1F)
	}
	b.WriteString("};")
	return b.String()
}
