package popdat

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		payload     []byte
		havePalette bool
		want        Kind
	}{
		{
			name:        "valid palette",
			payload:     validVGAPalette100(),
			havePalette: false,
			want:        KindPAL,
		},
		{
			name:        "valid image header",
			payload:     []byte{1, 0, 4, 0, 0x00, 0x00, 0xAA, 0xBB, 0xCC, 0xDD},
			havePalette: true,
			want:        KindIMG,
		},
		{
			name:        "image header without an active palette falls back to BIN",
			payload:     []byte{1, 0, 4, 0, 0x00, 0x00, 0xAA, 0xBB, 0xCC, 0xDD},
			havePalette: false,
			want:        KindBIN,
		},
		{
			name:        "two-layer header is not an IMG candidate",
			payload:     append([]byte{1, 0, 4, 0, 0x01, 0x00}, make([]byte, 4)...),
			havePalette: true,
			want:        KindBIN,
		},
		{
			name:        "short payload",
			payload:     []byte{1, 2, 3},
			havePalette: true,
			want:        KindBIN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(tt.payload, tt.havePalette)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_FormatConfusionPrefersIMG(t *testing.T) {
	// A 100-byte payload that also happens to parse as a plausible
	// single-layer image header (info[0]==0, width/height in range) and
	// whose VGA range is all < 64: both candidates match, so the
	// detector logs "format confusion" and prefers IMG.
	payload := make([]byte, 100)
	payload[0], payload[1] = 1, 0 // height = 1
	payload[2], payload[3] = 4, 0 // width = 4
	payload[4] = 0x00             // info0 = 0 (single layer)
	payload[5] = 0x00

	kind, warnings := Classify(payload, true)
	if kind != KindIMG {
		t.Errorf("Classify() = %v, want IMG", kind)
	}
	if len(warnings) == 0 {
		t.Error("Classify() expected a format-confusion warning, got none")
	}
}
