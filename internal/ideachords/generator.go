package ideachords

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrChordNotFound is returned when a chord name matches no key and degree
var ErrChordNotFound = errors.New("chord not found")

const progressionSeparator = "  ·  "

// startWeights biases the opening chord toward ii and IV, in Degrees order
var startWeights = [...]float64{
	2, // ii
	2, // IV
	1, // vi
	1, // V
}

// Result is one generated progression and the key it was realized in
type Result struct {
	Key         Key         `json:"key"`
	Progression Progression `json:"progression"`
	// Enforced is the starting degree pinned by chord mode, empty otherwise
	Enforced Degree `json:"enforced,omitempty"`
}

// CopyText renders the result the way it is copied to the clipboard
func (r Result) CopyText() string {
	return string(r.Key) + ": " + FormatProgression(r.Progression)
}

// Generator draws keys, degree orders and matcher candidates.
// The zero value uses the process-wide math/rand/v2 source and is safe for
// concurrent use. A seeded generator serializes access to its own source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator backed by the global random source
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSeededGenerator returns a generator whose draws are reproducible for a seed
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// DegreeSequence returns a permutation of the four supported degrees.
// When start is empty the first degree is drawn with startWeights, otherwise
// start opens the sequence. The rest are drawn uniformly without replacement.
func (g *Generator) DegreeSequence(start Degree) []Degree {
	defer g.lock()()
	return g.degreeSequence(start)
}

// RandomKey picks one of the supported keys uniformly
func (g *Generator) RandomKey() Key {
	defer g.lock()()
	return g.randomKey()
}

// Random generates a progression in a random key
func (g *Generator) Random() Result {
	defer g.lock()()
	k := g.randomKey()
	return Result{Key: k, Progression: RealizeProgression(k, g.degreeSequence(""))}
}

// InKey generates a progression in k
func (g *Generator) InKey(k Key) Result {
	defer g.lock()()
	return Result{Key: k, Progression: RealizeProgression(k, g.degreeSequence(""))}
}

// StartingOnChord generates a progression whose first chord is chord.
// When several keys contain the chord one of them is picked uniformly.
// ErrChordNotFound is returned when no supported key contains it.
func (g *Generator) StartingOnChord(chord string) (Result, error) {
	candidates := FindCandidateKeysForChord(chord)
	if len(candidates) == 0 {
		return Result{}, ErrChordNotFound
	}

	defer g.lock()()
	pick := candidates[g.intn(len(candidates))]
	return Result{
		Key:         pick.Key,
		Progression: RealizeProgression(pick.Key, g.degreeSequence(pick.Degree)),
		Enforced:    pick.Degree,
	}, nil
}

func (g *Generator) degreeSequence(start Degree) []Degree {
	if start != "" && !start.Valid() {
		panic("ideachords: unsupported start degree " + string(start))
	}
	pool := sampleuv.NewWeighted(startWeights[:], g.source())

	first := start
	if first == "" {
		idx, _ := pool.Take()
		first = degrees[idx]
	}

	rest := make([]float64, len(degrees))
	for i, d := range degrees {
		if d != first {
			rest[i] = 1
		}
	}
	pool.ReweightAll(rest)

	seq := make([]Degree, 0, len(degrees))
	seq = append(seq, first)
	for {
		idx, ok := pool.Take()
		if !ok {
			break
		}
		seq = append(seq, degrees[idx])
	}
	return seq
}

func (g *Generator) randomKey() Key {
	return supportedKeys[g.intn(len(supportedKeys))]
}

func (g *Generator) lock() func() {
	if g.rnd == nil {
		return func() {}
	}
	g.mu.Lock()
	return g.mu.Unlock
}

func (g *Generator) intn(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}
	return g.rnd.IntN(n)
}

// source keeps a nil *rand.Rand from turning into a non-nil rand.Source
func (g *Generator) source() rand.Source {
	if g.rnd == nil {
		return nil
	}
	return g.rnd
}

// FormatProgression renders "<name> (<degree>)" entries joined by a middle dot
func FormatProgression(p Progression) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.Name + " (" + string(c.Degree) + ")"
	}
	return strings.Join(parts, progressionSeparator)
}

var defaultGenerator = NewGenerator()

// GenerateRandomProgression generates a progression in a random key
func GenerateRandomProgression() Result {
	return defaultGenerator.Random()
}

// GenerateProgressionInKey generates a progression in k
func GenerateProgressionInKey(k Key) Result {
	return defaultGenerator.InKey(k)
}

// GenerateProgressionStartingOnChord generates a progression opening on chord
func GenerateProgressionStartingOnChord(chord string) (Result, error) {
	return defaultGenerator.StartingOnChord(chord)
}

// GenerateDegreeSequence draws a degree order, optionally pinned to start
func GenerateDegreeSequence(start Degree) []Degree {
	return defaultGenerator.DegreeSequence(start)
}
