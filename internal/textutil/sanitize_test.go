package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Amazing Grace", "Amazing Grace"},
		{"separators", "AC/DC: Back\\in*Black", "AC-DC- Back-in-Black"},
		{"removed", `What "is" <this>?|`, "What is this"},
		{"whitespace", "  How   Great\tThou Art  ", "How Great Thou Art"},
		{"controls", "Line\x00One\x1f", "LineOne"},
		{"dots", "...hidden.", "hidden"},
		{"unicode kept", "Großer Gott", "Großer Gott"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
