// Package textutil provides text helpers for file naming and lyric
// comparison.
//
// SanitizeFileName derives safe output file names from song titles.
// A Fingerprint counts the case-folded words of some lyric lines;
// Fingerprint.Similarity is how repeated sections are spotted in a parsed
// song.
package textutil
