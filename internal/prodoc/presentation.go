package prodoc

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Presentation is a decoded rv.data.Presentation document.
type Presentation struct {
	msg Message
}

// ParsePresentation decodes the top level of a presentation document.
func ParsePresentation(b []byte) (Presentation, error) {
	msg, err := Unmarshal(b)
	if err != nil {
		return Presentation{}, fmt.Errorf("decode presentation: %w", err)
	}
	return Presentation{msg: msg}, nil
}

// Root exposes the top-level message.
func (p Presentation) Root() Message {
	return p.msg
}

// Marshal encodes the document.
func (p Presentation) Marshal() []byte {
	return p.msg.Marshal()
}

// Name returns the presentation name.
func (p Presentation) Name() string {
	return p.msg.String(PresentationName)
}

// UUID returns the presentation identifier.
func (p Presentation) UUID() string {
	return DecodeUUID(p.msg, PresentationUUID)
}

// ApplicationVersion returns the version of the application that wrote the
// document, when recorded.
func (p Presentation) ApplicationVersion() (Version, bool, error) {
	info, ok, err := p.msg.Message(PresentationApplicationInfo)
	if err != nil || !ok {
		return Version{}, false, err
	}
	version, ok, err := info.Message(ApplicationInfoApplicationVersion)
	if err != nil || !ok {
		return Version{}, false, err
	}
	return DecodeVersion(version), true, nil
}

// CueGroups decodes the cue group list.
func (p Presentation) CueGroups() ([]CueGroup, error) {
	msgs, err := p.msg.Messages(PresentationCueGroups)
	if err != nil {
		return nil, err
	}
	groups := make([]CueGroup, 0, len(msgs))
	for _, m := range msgs {
		g, err := DecodeCueGroup(m)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Cues decodes the cue list.
func (p Presentation) Cues() ([]Message, error) {
	return p.msg.Messages(PresentationCues)
}

// ReservedIdentifiers lists identifiers outside the body that stay in the
// output document: the presentation itself and its arrangements.
func (p Presentation) ReservedIdentifiers() ([]string, error) {
	var ids []string
	if id := p.UUID(); id != "" {
		ids = append(ids, id)
	}
	if id := DecodeUUID(p.msg, PresentationSelectedArrangement); id != "" {
		ids = append(ids, id)
	}
	arrangements, err := p.msg.Messages(PresentationArrangements)
	if err != nil {
		return nil, err
	}
	for _, a := range arrangements {
		if id := DecodeUUID(a, ArrangementUUID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// WithName returns a copy of p with the name replaced.
func (p Presentation) WithName(name string) Presentation {
	return Presentation{msg: p.msg.SetString(PresentationName, name)}
}

// WithBody returns a copy of p whose cue groups and cues are replaced by the
// given records. Every other field keeps its bytes and relative position; the
// new body is placed where the old one started, or in field-number order when
// the template had none.
func (p Presentation) WithBody(groups, cues []Message) Presentation {
	body := make([]Field, 0, len(groups)+len(cues))
	for _, g := range groups {
		body = append(body, MessageField(PresentationCueGroups, g))
	}
	for _, c := range cues {
		body = append(body, MessageField(PresentationCues, c))
	}

	fields := p.msg.fields
	out := make([]Field, 0, len(fields)+len(body))
	placed := false
	for _, f := range fields {
		if isBodyField(f.Num) {
			if !placed {
				out = append(out, body...)
				placed = true
			}
			continue
		}
		if !placed && f.Num > PresentationCues {
			out = append(out, body...)
			placed = true
		}
		out = append(out, f)
	}
	if !placed {
		out = append(out, body...)
	}
	return Presentation{msg: Message{fields: out}}
}

func isBodyField(num protowire.Number) bool {
	return num == PresentationCueGroups || num == PresentationCues
}

// Group mirrors rv.data.Group.
type Group struct {
	UUID                 string
	Name                 string
	Color                Color
	HasColor             bool
	ApplicationGroupID   string
	ApplicationGroupName string
}

// CueGroup mirrors rv.data.Presentation.CueGroup.
type CueGroup struct {
	Group  Group
	CueIDs []string
}

// EncodeCueGroup builds an rv.data.Presentation.CueGroup message.
func EncodeCueGroup(cg CueGroup) Message {
	g := Message{}.
		SetMessage(GroupUUID, EncodeUUID(cg.Group.UUID)).
		SetString(GroupName, cg.Group.Name)
	if cg.Group.HasColor {
		g = g.SetMessage(GroupColor, EncodeColor(cg.Group.Color))
	}
	if cg.Group.ApplicationGroupID != "" {
		g = g.SetMessage(GroupApplicationGroupIdentifier, EncodeUUID(cg.Group.ApplicationGroupID))
	}
	g = g.SetString(GroupApplicationGroupName, cg.Group.ApplicationGroupName)

	m := Message{}.SetMessage(CueGroupGroup, g)
	for _, id := range cg.CueIDs {
		m = m.Append(MessageField(CueGroupCueIdentifiers, EncodeUUID(id)))
	}
	return m
}

// DecodeCueGroup reads an rv.data.Presentation.CueGroup message.
func DecodeCueGroup(m Message) (CueGroup, error) {
	var cg CueGroup
	g, _, err := m.Message(CueGroupGroup)
	if err != nil {
		return CueGroup{}, fmt.Errorf("cue group: %w", err)
	}
	cg.Group.UUID = DecodeUUID(g, GroupUUID)
	cg.Group.Name = g.String(GroupName)
	color, ok, err := g.Message(GroupColor)
	if err != nil {
		return CueGroup{}, fmt.Errorf("cue group color: %w", err)
	}
	if ok {
		cg.Group.Color = DecodeColor(color)
		cg.Group.HasColor = true
	}
	cg.Group.ApplicationGroupID = DecodeUUID(g, GroupApplicationGroupIdentifier)
	cg.Group.ApplicationGroupName = g.String(GroupApplicationGroupName)

	ids, err := m.Messages(CueGroupCueIdentifiers)
	if err != nil {
		return CueGroup{}, fmt.Errorf("cue identifiers: %w", err)
	}
	for _, id := range ids {
		cg.CueIDs = append(cg.CueIDs, id.String(UUIDString))
	}
	return cg, nil
}
