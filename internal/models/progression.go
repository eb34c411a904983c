package models

import "github.com/Conceptual-Machines/ideachords-api/internal/ideachords"

// Generation modes accepted by POST /api/v1/progressions
const (
	ModeRandom = "random"
	ModeKey    = "key"
	ModeStart  = "start"
)

// ProgressionRequest selects a generation mode and its parameters
type ProgressionRequest struct {
	Mode  string  `json:"mode" binding:"required,oneof=random key start"`
	Key   string  `json:"key,omitempty"`   // Required for mode "key", e.g. "Eb"
	Chord string  `json:"chord,omitempty"` // Required for mode "start", e.g. "Fm"
	Seed  *uint64 `json:"seed,omitempty"`  // Optional seed for reproducibility
}

// ProgressionResponse is a generated progression plus its rendered forms
type ProgressionResponse struct {
	Key       ideachords.Key          `json:"key"`
	Chords    []ideachords.ChordToken `json:"chords"`
	Formatted string                  `json:"formatted"`
	CopyText  string                  `json:"copy_text"`
	Enforced  ideachords.Degree       `json:"enforced,omitempty"` // Starting degree pinned by mode "start"
}

// NewProgressionResponse renders a generation result
func NewProgressionResponse(r ideachords.Result) ProgressionResponse {
	return ProgressionResponse{
		Key:       r.Key,
		Chords:    r.Progression,
		Formatted: ideachords.FormatProgression(r.Progression),
		CopyText:  r.CopyText(),
		Enforced:  r.Enforced,
	}
}

// KeyChordsResponse lists the four usable chords of a key
type KeyChordsResponse struct {
	Key    ideachords.Key          `json:"key"`
	Scale  ideachords.Scale        `json:"scale"`
	Chords []ideachords.ChordToken `json:"chords"`
}

// CandidatesResponse lists every key and degree a chord name belongs to
type CandidatesResponse struct {
	Chord      string                 `json:"chord"`
	Normalized string                 `json:"normalized"`
	Candidates []ideachords.Candidate `json:"candidates"`
}
