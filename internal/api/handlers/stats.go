package handlers

import (
	"sync/atomic"

	"github.com/Conceptual-Machines/ideachords-api/internal/models"
)

// GenerationStats counts generated progressions since startup
type GenerationStats struct {
	random   atomic.Int64
	inKey    atomic.Int64
	start    atomic.Int64
	notFound atomic.Int64
}

// NewGenerationStats returns zeroed counters
func NewGenerationStats() *GenerationStats {
	return &GenerationStats{}
}

func (s *GenerationStats) record(mode string, found bool) {
	if !found {
		s.notFound.Add(1)
		return
	}
	switch mode {
	case models.ModeRandom:
		s.random.Add(1)
	case models.ModeKey:
		s.inKey.Add(1)
	case models.ModeStart:
		s.start.Add(1)
	}
}

// Snapshot returns the current counters keyed by mode
func (s *GenerationStats) Snapshot() map[string]int64 {
	return map[string]int64{
		models.ModeRandom: s.random.Load(),
		models.ModeKey:    s.inKey.Load(),
		models.ModeStart:  s.start.Load(),
		"not_found":       s.notFound.Load(),
	}
}
