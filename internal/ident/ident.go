package ident

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"lyricpro/internal/failure"
)

// Source produces candidate identifiers. Sources need not guarantee
// uniqueness; the Generator enforces it.
type Source func() (string, error)

// Generator hands out identifiers that are unique within one conversion run.
// It is not safe for concurrent use; each run owns its own generator.
type Generator struct {
	source Source
	seen   map[string]struct{}
	issued int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSource replaces the default random UUID source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// New returns a generator backed by random (version 4) UUIDs.
func New(opts ...Option) *Generator {
	g := &Generator{
		source: Random,
		seen:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Random returns an upper-case version 4 UUID, the form the presentation
// application writes itself.
func Random() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(id.String()), nil
}

// Seeded returns a deterministic source: the n-th identifier is the SHA-1
// name-based UUID of seed and n. Identical seeds yield identical sequences.
func Seeded(seed string) Source {
	namespace := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	var n int
	return func() (string, error) {
		n++
		return strings.ToUpper(uuid.NewSHA1(namespace, []byte(strconv.Itoa(n))).String()), nil
	}
}

// Reserve marks identifiers already present in the document so freshly
// generated ones can never equal them. Reserving the same value twice is
// allowed; blank values are ignored.
func (g *Generator) Reserve(ids ...string) {
	for _, id := range ids {
		id = normalize(id)
		if id == "" {
			continue
		}
		g.seen[id] = struct{}{}
	}
}

// Next returns a new identifier. A value equal to any previously issued or
// reserved identifier is reported as failure.ErrIdentifierCollision.
func (g *Generator) Next() (string, error) {
	id, err := g.source()
	if err != nil {
		return "", failure.Wrap(failure.ErrIdentifierCollision, "ident", "generate", "", err)
	}
	key := normalize(id)
	if key == "" {
		return "", failure.Wrap(failure.ErrIdentifierCollision, "ident", "generate", "source returned an empty identifier", nil)
	}
	if _, dup := g.seen[key]; dup {
		return "", failure.Wrap(failure.ErrIdentifierCollision, "ident", "generate", "identifier "+id+" already in use", nil)
	}
	g.seen[key] = struct{}{}
	g.issued++
	return id, nil
}

// Issued reports how many identifiers Next has handed out.
func (g *Generator) Issued() int {
	return g.issued
}

// UUIDs compare case-insensitively.
func normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
