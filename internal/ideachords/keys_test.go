package ideachords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedKeys(t *testing.T) {
	keys := SupportedKeys()
	require.Len(t, keys, 13)
	assert.Equal(t, []Key{"C", "G", "D", "A", "E", "B", "F#", "F", "Bb", "Eb", "Ab", "Db", "Gb"}, keys)

	// callers get their own copy
	keys[0] = "X"
	assert.Equal(t, KeyC, SupportedKeys()[0])
}

func TestScaleFor(t *testing.T) {
	for _, k := range SupportedKeys() {
		scale := ScaleFor(k)
		assert.Equal(t, string(k), scale[0], "tonic of %s", k)
		for i, note := range scale {
			assert.NotContains(t, note, "##", "%s degree %d", k, i+1)
			assert.NotContains(t, note[1:], "bb", "%s degree %d", k, i+1)
		}
	}

	assert.Equal(t, "E#", ScaleFor(KeyFSharp)[6])
	assert.Equal(t, "Cb", ScaleFor(KeyGb)[3])
	assert.Equal(t, Scale{"Eb", "F", "G", "Ab", "Bb", "C", "D"}, ScaleFor(KeyEb))
}

func TestScaleFor_SpellingMatchesKeySignature(t *testing.T) {
	sharpKeys := []Key{KeyG, KeyD, KeyA, KeyE, KeyB, KeyFSharp}
	flatKeys := []Key{KeyF, KeyBb, KeyEb, KeyAb, KeyDb, KeyGb}

	for _, k := range sharpKeys {
		for _, note := range ScaleFor(k) {
			assert.NotContains(t, note[1:], "b", "sharp key %s spells %s", k, note)
		}
	}
	for _, k := range flatKeys {
		for _, note := range ScaleFor(k) {
			assert.NotContains(t, note, "#", "flat key %s spells %s", k, note)
		}
	}
}

func TestScaleFor_PanicsOnUnsupportedKey(t *testing.T) {
	assert.Panics(t, func() { ScaleFor("C#") })
	assert.False(t, Key("Cb").Valid())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "canonical", input: "Eb", want: KeyEb},
		{name: "lowercase letter", input: "eb", want: KeyEb},
		{name: "unicode flat", input: "E♭", want: KeyEb},
		{name: "sharp", input: "f#", want: KeyFSharp},
		{name: "unicode sharp", input: "F♯", want: KeyFSharp},
		{name: "padded", input: "  G ", want: KeyG},
		{name: "empty", input: "", wantErr: true},
		{name: "minor chord", input: "Am", wantErr: true},
		{name: "unsupported spelling", input: "C#", wantErr: true},
		{name: "nonsense", input: "Zx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
