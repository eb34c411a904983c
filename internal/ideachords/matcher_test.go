package ideachords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeChord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Fm", want: "Fm"},
		{input: "fm", want: "Fm"},
		{input: "FM", want: "Fm"},
		{input: "  bb ", want: "Bb"},
		{input: "B♭", want: "Bb"},
		{input: "b♭m", want: "Bbm"},
		{input: "c#m", want: "C#m"},
		{input: "F♯", want: "F#"},
		{input: "Ab", want: "Ab"},
		{input: "", want: ""},
		{input: "   ", want: ""},
		// a lone marker has no root to attach to
		{input: "m", want: "M"},
		{input: "M", want: "M"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeChord(tt.input))
		})
	}
}

func TestNormalizeChord_Idempotent(t *testing.T) {
	for _, k := range SupportedKeys() {
		for _, name := range ChordsForKey(k) {
			once := NormalizeChord(name)
			assert.Equal(t, name, once)
			assert.Equal(t, once, NormalizeChord(once))
		}
	}
}

func TestFindCandidateKeysForChord(t *testing.T) {
	assert.Contains(t, FindCandidateKeysForChord("Fm"), Candidate{Key: KeyEb, Degree: DegreeII})
	assert.Contains(t, FindCandidateKeysForChord("Ab"), Candidate{Key: KeyEb, Degree: DegreeIV})

	// Fm is ii of Eb and vi of Ab
	assert.Equal(t, []Candidate{
		{Key: KeyEb, Degree: DegreeII},
		{Key: KeyAb, Degree: DegreeVI},
	}, FindCandidateKeysForChord("fm"))
}

func TestFindCandidateKeysForChord_RoundTrip(t *testing.T) {
	for _, k := range SupportedKeys() {
		for d, name := range ChordsForKey(k) {
			assert.Contains(t, FindCandidateKeysForChord(NormalizeChord(name)), Candidate{Key: k, Degree: d},
				"%s (%s) in %s", name, d, k)
		}
	}
}

func TestFindCandidateKeysForChord_NoMatch(t *testing.T) {
	for _, input := range []string{"", "  ", "Zx", "m", "M", "C#m7", "Cbm"} {
		assert.Empty(t, FindCandidateKeysForChord(input), "input %q", input)
	}
}

func TestFindCandidateKeysForChord_MajorAndMinorDiffer(t *testing.T) {
	for _, c := range FindCandidateKeysForChord("D") {
		assert.False(t, c.Degree.Minor(), "D matched %s of %s", c.Degree, c.Key)
	}
	for _, c := range FindCandidateKeysForChord("Dm") {
		assert.True(t, c.Degree.Minor(), "Dm matched %s of %s", c.Degree, c.Key)
	}
}
