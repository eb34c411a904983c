package ideachords

import (
	"errors"
	"fmt"
)

// ErrUnknownDegree is returned when a string names none of the supported degrees
var ErrUnknownDegree = errors.New("unknown scale degree")

// Degree is a Roman numeral scale degree. The tonic is never one of them.
type Degree string

const (
	DegreeII Degree = "ii"
	DegreeIV Degree = "IV"
	DegreeVI Degree = "vi"
	DegreeV  Degree = "V"
)

const minorSuffix = "m"

// degrees lists the four supported degrees in canonical order
var degrees = [...]Degree{DegreeII, DegreeIV, DegreeVI, DegreeV}

// degreeIndex maps a degree to its 0-based position in a Scale
var degreeIndex = map[Degree]int{
	DegreeII: 1,
	DegreeIV: 3,
	DegreeV:  4,
	DegreeVI: 5,
}

// Degrees returns the supported degrees in canonical order
func Degrees() []Degree {
	out := make([]Degree, len(degrees))
	copy(out, degrees[:])
	return out
}

// Valid reports whether d is one of the supported degrees
func (d Degree) Valid() bool {
	_, ok := degreeIndex[d]
	return ok
}

// Minor reports whether the chord built on d has minor quality
func (d Degree) Minor() bool {
	return d == DegreeII || d == DegreeVI
}

func (d Degree) String() string {
	return string(d)
}

// ParseDegree resolves a Roman numeral. Case matters: "v" is not "V".
func ParseDegree(s string) (Degree, error) {
	d := Degree(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDegree, s)
	}
	return d, nil
}

// ChordToken is one realized chord of a progression
type ChordToken struct {
	Degree Degree `json:"degree"`
	Name   string `json:"name"`
}

// Progression is an ordered list of chords in playing order
type Progression []ChordToken

// ChordsForKey realizes every supported degree of k into a chord name
func ChordsForKey(k Key) map[Degree]string {
	scale := ScaleFor(k)
	chords := make(map[Degree]string, len(degrees))
	for _, d := range degrees {
		chords[d] = chordName(scale, d)
	}
	return chords
}

// RealizeProgression names each degree in k, keeping the given order
func RealizeProgression(k Key, seq []Degree) Progression {
	chords := ChordsForKey(k)
	prog := make(Progression, 0, len(seq))
	for _, d := range seq {
		name, ok := chords[d]
		if !ok {
			panic(fmt.Sprintf("ideachords: unsupported degree %q", string(d)))
		}
		prog = append(prog, ChordToken{Degree: d, Name: name})
	}
	return prog
}

func chordName(scale Scale, d Degree) string {
	root := scale[degreeIndex[d]]
	if d.Minor() {
		return root + minorSuffix
	}
	return root
}
