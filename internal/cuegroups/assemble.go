package cuegroups

import (
	"lyricpro/internal/ident"
	"lyricpro/internal/lyrics"
	"lyricpro/internal/palette"
	"lyricpro/internal/slides"
)

// Group is one labelled, colored run of slides.
type Group struct {
	ID         string
	AppGroupID string
	Name       string
	Color      palette.Color
	Slides     []slides.Record
}

// Assemble builds one group per section that has at least one slide, in file
// order. Sections sharing a label stay separate groups with the same color.
func Assemble(song *lyrics.Song, b *slides.Builder, ids *ident.Generator) ([]Group, error) {
	if song == nil {
		return nil, nil
	}
	groups := make([]Group, 0, len(song.Sections))
	for _, sec := range song.Sections {
		if len(sec.Slides) == 0 {
			continue
		}
		id, err := ids.Next()
		if err != nil {
			return nil, err
		}
		appID, err := ids.Next()
		if err != nil {
			return nil, err
		}
		g := Group{
			ID:         id,
			AppGroupID: appID,
			Name:       sec.Label,
			Color:      palette.ForLabel(sec.Label),
			Slides:     make([]slides.Record, 0, len(sec.Slides)),
		}
		for _, s := range sec.Slides {
			rec, err := b.Build(sec.Label, s)
			if err != nil {
				return nil, err
			}
			g.Slides = append(g.Slides, rec)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// SlideCount totals the slides across groups.
func SlideCount(groups []Group) int {
	var n int
	for _, g := range groups {
		n += len(g.Slides)
	}
	return n
}
