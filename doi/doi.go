// Package doi recognizes Digital Object Identifiers in free-form text.
//
// A DOI, for the purposes of this package, is any substring matching
// `\b10\.\d{4,9}/\S+\b`: the directory indicator "10.", a registrant code of
// 4 to 9 digits, a slash, and a suffix with no embedded whitespace.
//
// Single values are constructed with Parse:
//
//	d, err := doi.Parse("10.1234/foobar")
//
// All DOIs in a block of text are found with Extract:
//
//	dois := doi.Extract("I like 10.1234/foobar and 10.1234/bazquux")
//
// Word boundaries, digits and whitespace follow Unicode: "10.1234/café" and
// "10.1234/αβγ" are whole DOIs, Arabic-Indic registrant digits are accepted,
// and a suffix stops at any Unicode white space, no-break space included.
// A letter directly before "10." means there is no DOI there. Trailing
// punctuation before whitespace is not part of the match.
//
// Both functions are safe for concurrent use.
package doi

import (
	"strings"
)

// DOI is a single Digital Object Identifier. It always holds exactly the
// matched substring, without surrounding context. DOIs are comparable with ==.
type DOI struct {
	value string
}

// Parse returns the first DOI found anywhere in text. The input does not need
// to be an exact DOI: surrounding text is tolerated and discarded.
//
// If text contains no DOI, Parse returns an *InvalidError carrying text.
func Parse(text string) (DOI, error) {
	start, end := next(text, 0)
	if start < 0 {
		return DOI{}, &InvalidError{Text: text}
	}
	return DOI{value: text[start:end]}, nil
}

// MustParse is like Parse but panics if text contains no DOI.
func MustParse(text string) DOI {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Extract returns every non-overlapping DOI in text, in order of appearance.
// The suffix is matched greedily up to the last word boundary before
// whitespace, so punctuation followed by a word character is kept
// ("10.1234/a,b") while trailing punctuation is not ("(10.1234/a).").
//
// Extract never fails; text without DOIs yields an empty slice.
func Extract(text string) []DOI {
	dois := make([]DOI, 0)
	for off := 0; ; {
		start, end := next(text, off)
		if start < 0 {
			return dois
		}
		dois = append(dois, DOI{value: text[start:end]})
		off = end
	}
}

// String returns the DOI exactly as it was matched.
func (d DOI) String() string {
	return d.value
}

// IsZero reports whether d is the zero DOI, which Parse and Extract never return.
func (d DOI) IsZero() bool {
	return d.value == ""
}

// Prefix returns the directory indicator and registrant code, e.g. "10.1038".
func (d DOI) Prefix() string {
	prefix, _, _ := strings.Cut(d.value, "/")
	return prefix
}

// Suffix returns the registrant-chosen part after the first slash.
func (d DOI) Suffix() string {
	_, suffix, _ := strings.Cut(d.value, "/")
	return suffix
}

// MarshalText implements encoding.TextMarshaler.
func (d DOI) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same rules as Parse.
func (d *DOI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
