package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/Conceptual-Machines/ideachords-api/internal/logger"
	"github.com/Conceptual-Machines/ideachords-api/internal/metrics"
	"github.com/Conceptual-Machines/ideachords-api/internal/models"
	"github.com/gin-gonic/gin"
)

type ProgressionHandler struct {
	generator     *ideachords.Generator
	stats         *GenerationStats
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewProgressionHandler(generator *ideachords.Generator, stats *GenerationStats, cw *metrics.Client) *ProgressionHandler {
	return &ProgressionHandler{
		generator:     generator,
		stats:         stats,
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// Generate handles POST /api/v1/progressions
func (h *ProgressionHandler) Generate(c *gin.Context) {
	var req models.ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen := h.generator
	if req.Seed != nil {
		gen = ideachords.NewSeededGenerator(*req.Seed)
	}

	start := time.Now()
	var (
		result ideachords.Result
		err    error
	)

	switch req.Mode {
	case models.ModeRandom:
		result = gen.Random()
	case models.ModeKey:
		if req.Key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingKey})
			return
		}
		key, parseErr := ideachords.ParseKey(req.Key)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownKey, "key": req.Key})
			return
		}
		result = gen.InKey(key)
	case models.ModeStart:
		if req.Chord == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingChord})
			return
		}
		result, err = gen.StartingOnChord(req.Chord)
	}
	duration := time.Since(start)

	fields := logger.WithContext(c)

	found := !errors.Is(err, ideachords.ErrChordNotFound)
	h.stats.record(req.Mode, found)
	h.sentryMetrics.RecordGeneration(c.Request.Context(), req.Mode, string(result.Key), duration, found)
	h.cloudwatch.RecordGeneration(req.Mode, string(result.Key), found)

	if !found {
		fields["chord"] = req.Chord
		logger.Warn("Chord not found in any supported key", fields)
		c.JSON(http.StatusNotFound, gin.H{"error": errChordNotFound, "chord": req.Chord})
		return
	}

	logger.LogGenerationRequest(c.Request.Context(), req.Mode, string(result.Key), duration, fields)
	c.JSON(http.StatusOK, models.NewProgressionResponse(result))
}

// ListKeys handles GET /api/v1/keys
func (h *ProgressionHandler) ListKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keys": ideachords.SupportedKeys()})
}

// KeyChords handles GET /api/v1/keys/:key/chords
func (h *ProgressionHandler) KeyChords(c *gin.Context) {
	key, err := ideachords.ParseKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUnknownKey, "key": c.Param("key")})
		return
	}

	c.JSON(http.StatusOK, models.KeyChordsResponse{
		Key:    key,
		Scale:  ideachords.ScaleFor(key),
		Chords: ideachords.RealizeProgression(key, ideachords.Degrees()),
	})
}

// Candidates handles GET /api/v1/chords/:chord/candidates
func (h *ProgressionHandler) Candidates(c *gin.Context) {
	chord := c.Param("chord")
	candidates := ideachords.FindCandidateKeysForChord(chord)

	fields := logger.WithContext(c)
	fields["chord"] = chord
	fields["matches"] = len(candidates)
	logger.Debug("Chord candidates resolved", fields)

	if candidates == nil {
		candidates = []ideachords.Candidate{}
	}

	c.JSON(http.StatusOK, models.CandidatesResponse{
		Chord:      chord,
		Normalized: ideachords.NormalizeChord(chord),
		Candidates: candidates,
	})
}
