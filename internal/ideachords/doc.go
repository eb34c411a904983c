// Package ideachords builds four-chord progressions from the ii, IV, vi and V
// degrees of a major key. The tonic is never used, which keeps the
// progressions unresolved.
//
// Thirteen major keys are supported, each with one fixed spelling. Chords can
// be generated in a random key, in a chosen key, or starting on a given chord
// name, in which case every key containing that chord is a candidate.
package ideachords
