package ideachords

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a string names none of the supported keys
var ErrUnknownKey = errors.New("unknown major key")

// Key is the tonic of one of the supported major keys
type Key string

const (
	KeyC      Key = "C"
	KeyG      Key = "G"
	KeyD      Key = "D"
	KeyA      Key = "A"
	KeyE      Key = "E"
	KeyB      Key = "B"
	KeyFSharp Key = "F#"
	KeyF      Key = "F"
	KeyBb     Key = "Bb"
	KeyEb     Key = "Eb"
	KeyAb     Key = "Ab"
	KeyDb     Key = "Db"
	KeyGb     Key = "Gb"
)

const scaleLength = 7

// Scale holds the note names of scale degrees 1..7, index 0 is the tonic
type Scale [scaleLength]string

// supportedKeys is the display order: sharp keys first, then flat keys
var supportedKeys = [...]Key{
	KeyC, KeyG, KeyD, KeyA, KeyE, KeyB, KeyFSharp,
	KeyF, KeyBb, KeyEb, KeyAb, KeyDb, KeyGb,
}

// Spellings avoid C# and Cb major. F# major keeps E# as its 7th.
var majorScales = map[Key]Scale{
	KeyC:      {"C", "D", "E", "F", "G", "A", "B"},
	KeyG:      {"G", "A", "B", "C", "D", "E", "F#"},
	KeyD:      {"D", "E", "F#", "G", "A", "B", "C#"},
	KeyA:      {"A", "B", "C#", "D", "E", "F#", "G#"},
	KeyE:      {"E", "F#", "G#", "A", "B", "C#", "D#"},
	KeyB:      {"B", "C#", "D#", "E", "F#", "G#", "A#"},
	KeyFSharp: {"F#", "G#", "A#", "B", "C#", "D#", "E#"},

	KeyF:  {"F", "G", "A", "Bb", "C", "D", "E"},
	KeyBb: {"Bb", "C", "D", "Eb", "F", "G", "A"},
	KeyEb: {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	KeyAb: {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	KeyDb: {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	KeyGb: {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
}

// SupportedKeys returns the 13 supported keys in a stable display order
func SupportedKeys() []Key {
	keys := make([]Key, len(supportedKeys))
	copy(keys, supportedKeys[:])
	return keys
}

// Valid reports whether k is one of the supported keys
func (k Key) Valid() bool {
	_, ok := majorScales[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}

// ScaleFor returns the scale of a supported key.
// Passing an unsupported key is a programming error and panics.
func ScaleFor(k Key) Scale {
	scale, ok := majorScales[k]
	if !ok {
		panic(fmt.Sprintf("ideachords: unsupported key %q", string(k)))
	}
	return scale
}

// ParseKey resolves a key name such as "eb", "E♭" or "F#" to a supported key.
// The root is normalized the same way chord names are.
func ParseKey(s string) (Key, error) {
	root, minor := splitChord(s)
	if root == "" || minor {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	k := Key(root)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}
