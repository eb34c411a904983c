package ideachords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate is a (key, degree) pair whose realized chord matched a lookup
type Candidate struct {
	Key    Key    `json:"key"`
	Degree Degree `json:"degree"`
}

var accidentalReplacer = strings.NewReplacer("♭", "b", "♯", "#")

// NormalizeChord maps a user-typed chord name onto the form used for matching:
// surrounding space trimmed, unicode accidentals replaced, the note letter
// uppercased and a trailing m/M rewritten as "m". Empty input stays empty.
func NormalizeChord(s string) string {
	root, minor := splitChord(s)
	if root == "" {
		return ""
	}
	if minor {
		return root + minorSuffix
	}
	return root
}

// splitChord returns the normalized root and whether a minor marker was found.
// A lone "m" has no root, so it is not read as a minor marker.
func splitChord(s string) (string, bool) {
	t := accidentalReplacer.Replace(strings.TrimSpace(s))
	if t == "" {
		return "", false
	}

	minor := false
	if last := t[len(t)-1]; (last == 'm' || last == 'M') && len(t) > 1 {
		minor = true
		t = t[:len(t)-1]
	}

	first, size := utf8.DecodeRuneInString(t)
	return string(unicode.ToUpper(first)) + t[size:], minor
}

// FindCandidateKeysForChord returns every supported (key, degree) pair whose
// chord normalizes to the same name as chord. The result is in key display
// order, then canonical degree order, and is empty when nothing matches.
func FindCandidateKeysForChord(chord string) []Candidate {
	want := NormalizeChord(chord)
	if want == "" {
		return nil
	}

	var matches []Candidate
	for _, k := range supportedKeys {
		chords := ChordsForKey(k)
		for _, d := range degrees {
			if NormalizeChord(chords[d]) == want {
				matches = append(matches, Candidate{Key: k, Degree: d})
			}
		}
	}
	return matches
}
