package popdat

import "testing"

func TestParseFrameTable(t *testing.T) {
	// Two records: (image=5, sword=-1, dx=3, dy=-4, flags=0x03)
	//              (image=0, sword=0, dx=0, dy=0, flags=0x00)
	data := []byte{
		5, 0, 0xFF, 0xFF, 3, 0xFC, 0x03,
		0, 0, 0, 0, 0, 0, 0x00,
	}
	records, err := ParseFrameTable(data)
	if err != nil {
		t.Fatalf("ParseFrameTable() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	r0 := records[0]
	if r0.Image != 5 || r0.Sword != -1 || r0.DX != 3 || r0.DY != -4 || r0.Flags != 0x03 {
		t.Errorf("record 0 = %+v, want {Image:5 Sword:-1 DX:3 DY:-4 Flags:3}", r0)
	}
}

func TestParseFrameTable_InvalidLength(t *testing.T) {
	if _, err := ParseFrameTable(make([]byte, 10)); err == nil {
		t.Error("ParseFrameTable() expected an error for a length not divisible by 7, got nil")
	}
}

func TestFormatFrameTable(t *testing.T) {
	// sword = -1 (0xFFFF): high flag bits 0xFFC0, low 6-bit value 63.
	// flags = 0xE3: high flag bits 0xE0, weight 3.
	records := []FrameRecord{{Image: 5, Sword: -1, DX: 3, DY: -4, Flags: 0xE3}}
	got := FormatFrameTable(records)
	want := "pop_frame_type frame_table_kid[1] = {\r\n" +
		"{    5, 0xFFC0|63,   3,  -4, 0xE0| 3},\r\n" +
		"};"
	if got != want {
		t.Errorf("FormatFrameTable() = %q, want %q", got, want)
	}
}
