package prodoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"lyricpro/internal/failure"
)

func samplePresentation() Message {
	info := Message{}.SetMessage(ApplicationInfoApplicationVersion, EncodeVersion(Version{Major: 7, Minor: 16, Build: "118766559"}))
	return Message{}.
		SetMessage(PresentationApplicationInfo, info).
		SetMessage(PresentationUUID, EncodeUUID("PRES-1")).
		SetString(PresentationName, "Template").
		Append(BytesField(PresentationCategory, []byte("Song"))).
		SetMessage(PresentationCueGroups, EncodeCueGroup(CueGroup{
			Group:  Group{UUID: "OLD-GROUP", Name: "Verse"},
			CueIDs: []string{"OLD-CUE"},
		})).
		Append(MessageField(PresentationCues, Message{}.SetMessage(CueUUID, EncodeUUID("OLD-CUE")))).
		Append(BytesField(99, []byte("unknown trailing field")))
}

// PresentationCategory is not used by the converter; tests use it as an
// arbitrary pass-through field.
const PresentationCategory protowire.Number = 6

func TestUnmarshalMarshalPreservesUnknownFields(t *testing.T) {
	raw := samplePresentation().Marshal()
	msg, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !bytes.Equal(msg.Marshal(), raw) {
		t.Fatal("expected identical bytes after decode/encode")
	}
	if got := msg.String(99); got != "unknown trailing field" {
		t.Fatalf("unexpected unknown field value %q", got)
	}
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	raw := samplePresentation().Marshal()
	if _, err := Unmarshal(raw[:len(raw)-3]); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestMutatorsDoNotWriteIntoSourceBuffer(t *testing.T) {
	raw := samplePresentation().Marshal()
	snapshot := append([]byte(nil), raw...)
	msg, err := Unmarshal(raw)
	if err != nil {
		t.Fatal(err)
	}
	_ = msg.SetString(PresentationName, "Changed").Append(BytesField(100, []byte("x")))
	if !bytes.Equal(raw, snapshot) {
		t.Fatal("source buffer was modified")
	}
	if msg.String(PresentationName) != "Template" {
		t.Fatal("receiver was modified")
	}
}

func TestSetKeepsFieldNumberOrder(t *testing.T) {
	m := Message{}.SetString(1, "a").SetString(5, "c").SetString(3, "b")
	var nums []protowire.Number
	for _, f := range m.Fields() {
		nums = append(nums, f.Num)
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 3 || nums[2] != 5 {
		t.Fatalf("unexpected order %v", nums)
	}
	if m.SetVarint(3, 0).Has(3) {
		t.Fatal("expected zero varint to drop the field")
	}
}

func TestWithBodyReplacesOnlyBody(t *testing.T) {
	p, err := ParsePresentation(samplePresentation().Marshal())
	if err != nil {
		t.Fatal(err)
	}
	group := EncodeCueGroup(CueGroup{Group: Group{UUID: "G1", Name: "Chorus"}, CueIDs: []string{"C1"}})
	cue := Message{}.SetMessage(CueUUID, EncodeUUID("C1"))
	out := p.WithBody([]Message{group}, []Message{cue})

	groups, err := out.CueGroups()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].Group.Name != "Chorus" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	cues, err := out.Cues()
	if err != nil {
		t.Fatal(err)
	}
	if len(cues) != 1 || DecodeUUID(cues[0], CueUUID) != "C1" {
		t.Fatalf("unexpected cues")
	}

	before := nonBodyFields(p.Root())
	after := nonBodyFields(out.Root())
	if len(before) != len(after) {
		t.Fatalf("non-body field count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Num != after[i].Num || !bytes.Equal(before[i].Raw, after[i].Raw) {
			t.Fatalf("field %d changed", before[i].Num)
		}
	}
	last := out.Root().Fields()[out.Root().Len()-1]
	if last.Num != 99 {
		t.Fatalf("expected unknown field to stay last, got %d", last.Num)
	}
}

func TestWithBodyInsertsWhenTemplateHasNoBody(t *testing.T) {
	p := Presentation{msg: Message{}.SetMessage(PresentationUUID, EncodeUUID("P")).Append(BytesField(20, []byte("z")))}
	out := p.WithBody(nil, []Message{Message{}.SetMessage(CueUUID, EncodeUUID("C"))})
	fields := out.Root().Fields()
	if len(fields) != 3 || fields[1].Num != PresentationCues || fields[2].Num != 20 {
		t.Fatalf("unexpected layout %v", fields)
	}
}

func nonBodyFields(m Message) []Field {
	var out []Field
	for _, f := range m.Fields() {
		if !isBodyField(f.Num) {
			out = append(out, f)
		}
	}
	return out
}

func TestCueGroupEncodeDecode(t *testing.T) {
	in := CueGroup{
		Group: Group{
			UUID:                 "G",
			Name:                 "Verse 1",
			Color:                Color{Red: 0, Green: 0.466666669, Blue: 0.8, Alpha: 1},
			HasColor:             true,
			ApplicationGroupID:   "APP",
			ApplicationGroupName: "Verse 1",
		},
		CueIDs: []string{"A", "B"},
	}
	out, err := DecodeCueGroup(EncodeCueGroup(in))
	if err != nil {
		t.Fatal(err)
	}
	if out.Group != in.Group || len(out.CueIDs) != 2 || out.CueIDs[1] != "B" {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestValidate(t *testing.T) {
	valid, err := ParsePresentation(samplePresentation().Marshal())
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(valid); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	tests := []struct {
		name string
		doc  Presentation
		want string
	}{
		{
			name: "missing uuid",
			doc:  Presentation{msg: valid.Root().Remove(PresentationUUID)},
			want: "presentation uuid",
		},
		{
			name: "dangling cue reference",
			doc: valid.WithBody([]Message{EncodeCueGroup(CueGroup{
				Group:  Group{UUID: "G", Name: "Verse"},
				CueIDs: []string{"MISSING"},
			})}, nil),
			want: "unknown cue",
		},
		{
			name: "unnamed group",
			doc:  valid.WithBody([]Message{EncodeCueGroup(CueGroup{Group: Group{UUID: "G"}})}, nil),
			want: "has no name",
		},
		{
			name: "cue without uuid",
			doc:  valid.WithBody(nil, []Message{Message{}.SetString(CueName, "x")}),
			want: "has no uuid",
		},
		{
			name: "old application version",
			doc: Presentation{msg: valid.Root().SetMessage(PresentationApplicationInfo,
				Message{}.SetMessage(ApplicationInfoApplicationVersion, EncodeVersion(Version{Major: 6})))},
			want: "older than 7.0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc)
			if !errors.Is(err, failure.ErrSerialization) {
				t.Fatalf("expected serialization error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestRectRoundTripThroughMessages(t *testing.T) {
	r := Rect{Origin: Point{X: 10, Y: 20}, Size: Size{Width: 1920, Height: 540}}
	got, err := DecodeRect(EncodeRect(r))
	if err != nil {
		t.Fatal(err)
	}
	if got != r {
		t.Fatalf("got %+v want %+v", got, r)
	}
}
