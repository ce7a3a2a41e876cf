package doi

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// head matches the fixed part of a DOI, "10." plus 4 to 9 decimal digits and
// a slash. The boundaries and the suffix are checked rune by rune in next so
// that they follow Unicode word and white-space rules. It is compiled once
// and shared read-only by every caller.
var head = regexp.MustCompile(`10\.\p{Nd}{4,9}/`)

// next returns the byte span of the leftmost DOI at or after off, or -1, -1.
// A DOI starts at a word boundary and its suffix is the longest non-empty
// run of non-space runes that ends at a word boundary.
func next(text string, off int) (start, end int) {
	for off < len(text) {
		loc := head.FindStringIndex(text[off:])
		if loc == nil {
			return -1, -1
		}
		start, body := off+loc[0], off+loc[1]
		if startsWord(text, start) {
			if end := suffixEnd(text, body); end > body {
				return start, end
			}
		}
		// "1" is one byte, so the next candidate can begin right after it.
		off = start + 1
	}
	return -1, -1
}

// startsWord reports whether the rune before i is not a word rune.
func startsWord(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

// suffixEnd returns the end of the suffix that begins at i: the position just
// after the last word rune before the next white space. It returns i when
// the run holds no word rune.
func suffixEnd(text string, i int) int {
	end := i
	for j := i; j < len(text); {
		r, size := utf8.DecodeRuneInString(text[j:])
		if unicode.Is(unicode.White_Space, r) {
			break
		}
		j += size
		if isWordRune(r) {
			end = j
		}
	}
	return end
}

// isWordRune uses the Unicode definition of a word character: alphabetic,
// marks, decimal digits, connector punctuation and the joiners.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Nl, unicode.Other_Alphabetic, unicode.Pc, unicode.Join_Control)
}
