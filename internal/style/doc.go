// Package style extracts reusable text styling from a template document.
//
// The first slide text element with a font, a size, a text fill, and bounds
// defines the style for every generated slide. A template without one is a
// hard failure (failure.ErrTemplateStyleMissing): substituting guessed fonts
// or colors would defeat the purpose of using a template.
package style
