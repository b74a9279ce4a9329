package lyrics

import (
	"strings"
	"testing"
)

func TestFindRepeats(t *testing.T) {
	song, err := Parse(strings.NewReader(`[Verse 1]
O Lord my God when I in awesome wonder
Consider all the worlds Thy hands have made
[Chorus]
Then sings my soul my Saviour God to Thee
How great Thou art how great Thou art
[Verse 2]
When through the woods and forest glades I wander
And hear the birds sing sweetly in the trees
[Chorus]
Then sings my soul, my Saviour God, to Thee!
How great Thou art, how great Thou art!
[Tag]
[Final Chorus]
THEN SINGS MY SOUL MY SAVIOUR GOD TO THEE
HOW GREAT THOU ART HOW GREAT THOU ART
`))
	if err != nil {
		t.Fatal(err)
	}

	repeats := FindRepeats(song)
	if len(repeats) != 2 {
		t.Fatalf("expected 2 repeats, got %+v", repeats)
	}
	if repeats[0].Section != 3 || repeats[0].Of != 1 {
		t.Fatalf("unexpected first repeat %+v", repeats[0])
	}
	if repeats[1].Section != 5 || repeats[1].Of != 1 {
		t.Fatalf("repeat should point at the first chorus, got %+v", repeats[1])
	}
	if repeats[0].Similarity < RepeatThreshold {
		t.Fatalf("similarity below threshold: %v", repeats[0].Similarity)
	}
}

func TestFindRepeatsNil(t *testing.T) {
	if got := FindRepeats(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
