package convert

import (
	"context"
	"path/filepath"
	"strings"

	"lyricpro/internal/lyrics"
)

// Preview is the parse-only view of a lyrics file.
type Preview struct {
	Title   string
	Song    *lyrics.Song
	Stats   lyrics.Stats
	Repeats []lyrics.Repeat
}

// PreviewFile parses inputPath without touching any template or output.
func PreviewFile(ctx context.Context, inputPath string) (*Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	song, err := lyrics.ParseFile(inputPath)
	if err != nil {
		return nil, err
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return &Preview{
		Title:   song.DisplayTitle(stem),
		Song:    song,
		Stats:   song.Stats(),
		Repeats: lyrics.FindRepeats(song),
	}, nil
}
