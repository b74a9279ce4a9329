package prodoc

import (
	"fmt"
	"strings"

	"lyricpro/internal/failure"
)

// Validate checks the fields the presentation application requires before it
// will open a document. Any violation is reported as failure.ErrSerialization.
func Validate(p Presentation) error {
	if strings.TrimSpace(p.UUID()) == "" {
		return invalid("presentation uuid is missing")
	}

	version, ok, err := p.ApplicationVersion()
	if err != nil {
		return failure.Wrap(failure.ErrSerialization, "serialize", "validate", "application info", err)
	}
	if ok && version.Major != 0 && version.Major < MinimumMajorVersion {
		return invalid(fmt.Sprintf("application version %s is older than %d.0", version, MinimumMajorVersion))
	}

	cues, err := p.Cues()
	if err != nil {
		return failure.Wrap(failure.ErrSerialization, "serialize", "validate", "cues", err)
	}
	cueIDs := make(map[string]struct{}, len(cues))
	for i, cue := range cues {
		id := strings.ToUpper(DecodeUUID(cue, CueUUID))
		if id == "" {
			return invalid(fmt.Sprintf("cue %d has no uuid", i))
		}
		if _, dup := cueIDs[id]; dup {
			return invalid(fmt.Sprintf("cue %d reuses uuid %s", i, id))
		}
		cueIDs[id] = struct{}{}
	}

	groups, err := p.CueGroups()
	if err != nil {
		return failure.Wrap(failure.ErrSerialization, "serialize", "validate", "cue groups", err)
	}
	for i, g := range groups {
		if strings.TrimSpace(g.Group.UUID) == "" {
			return invalid(fmt.Sprintf("cue group %d has no uuid", i))
		}
		if strings.TrimSpace(g.Group.Name) == "" {
			return invalid(fmt.Sprintf("cue group %d has no name", i))
		}
		for _, ref := range g.CueIDs {
			if _, ok := cueIDs[strings.ToUpper(ref)]; !ok {
				return invalid(fmt.Sprintf("cue group %q references unknown cue %s", g.Group.Name, ref))
			}
		}
	}
	return nil
}

func invalid(message string) error {
	return failure.Wrap(failure.ErrSerialization, "serialize", "validate", message, nil)
}
