package globset

import "testing"

func TestMatcher(t *testing.T) {
	m := New([]string{"*.bin", "", "sound/**"})
	tests := []struct {
		path string
		want bool
	}{
		{"res1.bin", true},
		{"res1.png", false},
		{"sound/res2-0-0-0.bin", true},
	}
	for _, tt := range tests {
		if got := m.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMatcher_Empty(t *testing.T) {
	m := New(nil)
	if !m.Empty() {
		t.Error("Empty() = false, want true for no patterns")
	}
	if m.Match("anything") {
		t.Error("Match() = true, want false with no patterns")
	}
}
