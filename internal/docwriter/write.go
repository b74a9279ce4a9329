package docwriter

import (
	"context"

	"lyricpro/internal/failure"
	"lyricpro/internal/fileutil"
	"lyricpro/internal/prodoc"
)

// outputMode is the permission of written documents.
const outputMode = 0o644

// Serialize validates p and encodes it.
func Serialize(p prodoc.Presentation) ([]byte, error) {
	if err := prodoc.Validate(p); err != nil {
		return nil, err
	}
	data := p.Marshal()
	if _, err := prodoc.ParsePresentation(data); err != nil {
		return nil, failure.Wrap(failure.ErrSerialization, "serialize", "re-read output", "", err)
	}
	return data, nil
}

// Write stores data at path atomically. Concurrent writers targeting the same
// path, in this process or another, take turns through a lock file in lockDir
// (fileutil.DefaultLockDir when empty). On failure nothing is left at path
// beyond what was there before.
func Write(ctx context.Context, path string, data []byte, lockDir string) error {
	err := fileutil.WithLock(ctx, lockDir, path, func() error {
		return fileutil.WriteFileAtomic(path, data, outputMode)
	})
	if err != nil {
		return failure.Wrap(failure.ErrOutputWrite, "write", "write output", path, err)
	}
	return nil
}
