package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"

	"lyricpro/internal/failure"
	"lyricpro/internal/prodoc"
	"lyricpro/internal/style"
)

const (
	templateCacheTTL     = 30 * time.Minute
	templateCacheCleanup = time.Hour
)

type cachedTemplate struct {
	doc  prodoc.Presentation
	tmpl *style.Template
}

// TemplateCache keeps decoded templates so a batch reads each template file
// once. Entries are keyed by absolute path, size, and modification time, so
// an edited template is decoded again. Cached values are never mutated.
type TemplateCache struct {
	items *cache.Cache
}

// NewTemplateCache returns an empty cache.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{items: cache.New(templateCacheTTL, templateCacheCleanup)}
}

// Load returns the decoded template at path, decoding it on a miss.
func (c *TemplateCache) Load(path string) (prodoc.Presentation, *style.Template, error) {
	info, err := os.Stat(path)
	if err != nil {
		return prodoc.Presentation{}, nil, failure.Wrap(failure.ErrInputAccess, "template", "stat template", path, err)
	}
	key := templateKey(path, info)
	if v, ok := c.items.Get(key); ok {
		entry := v.(cachedTemplate)
		return entry.doc, entry.tmpl, nil
	}
	doc, tmpl, err := style.LoadFile(path)
	if err != nil {
		return prodoc.Presentation{}, nil, err
	}
	c.items.SetDefault(key, cachedTemplate{doc: doc, tmpl: tmpl})
	return doc, tmpl, nil
}

// Len reports how many templates are cached.
func (c *TemplateCache) Len() int {
	return c.items.ItemCount()
}

func templateKey(path string, info os.FileInfo) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())
}
