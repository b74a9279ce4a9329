package palette

import "testing"

func TestForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Color
	}{
		{"Verse 1", Blue},
		{"VERSE 2", Blue},
		{"Chorus", Pink},
		{"Pre-Chorus", Pink},
		{"Bridge", Purple},
		{"Intro", Green},
		{"Outro", Orange},
		{"Ending", Orange},
		{"Tag", Gray},
		{"", Gray},
		{"Intro Verse", Blue},
		{"Chorus / Bridge", Pink},
	}
	for _, tt := range tests {
		if got := ForLabel(tt.label); got != tt.want {
			t.Errorf("ForLabel(%q) = %s, want %s", tt.label, got.Name, tt.want.Name)
		}
	}
}

func TestForLabelIsStableAcrossCalls(t *testing.T) {
	for i := 0; i < 10; i++ {
		if ForLabel("Verse") != ForLabel("verse") {
			t.Fatal("expected identical colors for labels differing only in case")
		}
	}
}

func TestMatchReportsKeyword(t *testing.T) {
	if _, kw := Match("Final Ending"); kw != "ending" {
		t.Fatalf("expected ending keyword, got %q", kw)
	}
	if c, kw := Match("Interlude"); kw != "" || c != Gray {
		t.Fatalf("expected gray fallback, got %q %s", kw, c.Name)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table()
	table[0].Color = Gray
	if ForLabel("verse") != Blue {
		t.Fatal("mutating the returned table changed the rules")
	}
}
