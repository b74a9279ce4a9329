// Package lyrics parses plain-text lyric sheets into sections and slides.
//
// Text is kept exactly as written apart from trimming the ends of each line;
// nothing in the package changes case. Structural problems are reported as
// *failure.MalformedInputError with the offending line number.
package lyrics
