// Package palette assigns cue group colors from section labels.
package palette
