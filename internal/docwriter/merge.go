package docwriter

import (
	"lyricpro/internal/cuegroups"
	"lyricpro/internal/failure"
	"lyricpro/internal/prodoc"
	"lyricpro/internal/style"
)

// zeroUUID marks an unset completion target, as the application writes it.
const zeroUUID = "00000000-0000-0000-0000-000000000000"

// MergeOptions controls the non-body changes Merge may make.
type MergeOptions struct {
	// Retitle replaces the document name with Title. Off by default so every
	// field outside the body stays byte-identical to the template.
	Retitle bool
	Title   string
}

// prototypes are the decoded template records each generated slide is cloned
// from.
type prototypes struct {
	cue, action, presSlide, slide, slideElement, element prodoc.Message
}

func decodePrototypes(st *style.Template) (prototypes, error) {
	raw := st.Prototypes()
	var p prototypes
	for _, d := range []struct {
		name string
		src  []byte
		dst  *prodoc.Message
	}{
		{"cue", raw.Cue, &p.cue},
		{"action", raw.Action, &p.action},
		{"presentation slide", raw.PresentationSlide, &p.presSlide},
		{"slide", raw.Slide, &p.slide},
		{"slide element", raw.SlideElement, &p.slideElement},
		{"element", raw.Element, &p.element},
	} {
		m, err := prodoc.Unmarshal(d.src)
		if err != nil {
			return prototypes{}, failure.Wrap(failure.ErrSerialization, "merge", "decode prototype", d.name, err)
		}
		*d.dst = m
	}
	return p, nil
}

// Merge returns a copy of tmpl whose cue groups and cues are replaced by
// groups. Generated records are cloned from the template records st was
// extracted from, so styling outside the converter's model carries over.
func Merge(tmpl prodoc.Presentation, st *style.Template, groups []cuegroups.Group, opts MergeOptions) (prodoc.Presentation, error) {
	if st == nil {
		return prodoc.Presentation{}, failure.Wrap(failure.ErrTemplateStyleMissing, "merge", "", "no template style", nil)
	}
	protos, err := decodePrototypes(st)
	if err != nil {
		return prodoc.Presentation{}, err
	}

	groupMsgs := make([]prodoc.Message, 0, len(groups))
	cueMsgs := make([]prodoc.Message, 0, cuegroups.SlideCount(groups))
	for _, g := range groups {
		cg := prodoc.CueGroup{
			Group: prodoc.Group{
				UUID:                 g.ID,
				Name:                 g.Name,
				Color:                prodoc.Color{Red: g.Color.Red, Green: g.Color.Green, Blue: g.Color.Blue, Alpha: g.Color.Alpha},
				HasColor:             true,
				ApplicationGroupID:   g.AppGroupID,
				ApplicationGroupName: g.Name,
			},
			CueIDs: make([]string, 0, len(g.Slides)),
		}
		for _, rec := range g.Slides {
			cue, err := protos.projectCue(rec)
			if err != nil {
				return prodoc.Presentation{}, err
			}
			cueMsgs = append(cueMsgs, cue)
			cg.CueIDs = append(cg.CueIDs, rec.ID)
		}
		groupMsgs = append(groupMsgs, prodoc.EncodeCueGroup(cg))
	}

	out := tmpl.WithBody(groupMsgs, cueMsgs)
	if opts.Retitle && opts.Title != "" {
		out = out.WithName(opts.Title)
	}
	return out, nil
}
