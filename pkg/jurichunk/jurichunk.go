// Package jurichunk is the main chunking engine facade. It wires the
// normalizer, structure classifier, chunk builder, enrichment stages and
// document metadata extractor into a single Process call.
//
// Processing is synchronous and stateless across requests: apart from the
// immutable registry, every call works on call-local state, so one Engine
// may serve concurrent requests.
package jurichunk

import (
	"crypto/rand"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/jurichunk/pkg/jurichunk/chunker"
	"github.com/cognicore/jurichunk/pkg/jurichunk/classify"
	"github.com/cognicore/jurichunk/pkg/jurichunk/docmeta"
	"github.com/cognicore/jurichunk/pkg/jurichunk/entities"
	"github.com/cognicore/jurichunk/pkg/jurichunk/internalerr"
	"github.com/cognicore/jurichunk/pkg/jurichunk/quality"
	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
	"github.com/cognicore/jurichunk/pkg/jurichunk/structure"
	"github.com/cognicore/jurichunk/pkg/jurichunk/textnorm"
)

// Version reported in processing info.
const Version = "1.0.0"

// Default chunking parameters, applied when the request leaves them unset.
const (
	DefaultTargetSize = 60
	DefaultOverlap    = 15
)

// Quality distribution thresholds.
const (
	highQualityFloor   = 0.8
	mediumQualityFloor = 0.5
)

// Engine is the chunking engine facade.
type Engine struct {
	reg       *registry.Registry
	structure *structure.Classifier
	builder   *chunker.Builder
	meta      *docmeta.Extractor

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// Options configures an Engine.
type Options struct {
	// Registry overrides the built-in heuristics; nil keeps the defaults.
	Registry *registry.Registry
	// Weights overrides the quality factor weights; zero keeps the
	// calibrated defaults.
	Weights quality.Weights
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	weights := opts.Weights
	if weights == (quality.Weights{}) {
		weights = quality.DefaultWeights()
	}

	norm := textnorm.New(reg)
	ents := entities.NewExtractor(reg)
	cls := classify.NewClassifier(reg)
	qual := quality.NewScorer(reg, weights)

	return &Engine{
		reg:       reg,
		structure: structure.NewClassifier(reg),
		builder:   chunker.NewBuilder(reg, norm, ents, cls, qual),
		meta:      docmeta.NewExtractor(reg),
		entropy:   ulid.Monotonic(rand.Reader, 0),
		now:       time.Now,
	}
}

// Minimum accepted document length in runes. Shorter inputs carry too
// little signal for the heuristics. Enforced by ValidateRequest, not by
// Process.
const minTextRunes = 100

// Accepted parameter ranges for ValidateRequest. Zero values are
// substituted with defaults before the check.
const (
	minTargetSize = 20
	maxTargetSize = 200
	maxOverlap    = 50
)

// ValidateRequest checks the transport-level preconditions: usable text
// and in-range parameters. Process itself never rejects input, so callers
// exposing the engine should validate first. Violations are reported as
// internalerr sentinels.
func ValidateRequest(req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return internalerr.ErrEmptyText
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < minTextRunes {
		return fmt.Errorf("%w: need at least %d characters", internalerr.ErrTextTooShort, minTextRunes)
	}
	if req.TargetSize != 0 && (req.TargetSize < minTargetSize || req.TargetSize > maxTargetSize) {
		return fmt.Errorf("%w: target size %d outside [%d, %d]", internalerr.ErrInvalidOption, req.TargetSize, minTargetSize, maxTargetSize)
	}
	if req.Overlap < 0 || req.Overlap > maxOverlap {
		return fmt.Errorf("%w: overlap %d outside [0, %d]", internalerr.ErrInvalidOption, req.Overlap, maxOverlap)
	}
	return nil
}

// Request carries one document through the pipeline. A zero TargetSize
// means DefaultTargetSize; a negative Overlap means DefaultOverlap, so an
// explicit zero disables overlap.
type Request struct {
	Text            string
	TargetSize      int
	Overlap         int
	UserID          string
	ProjectID       string
	IncludeMetadata bool
	StripHTML       bool
}

// Distribution buckets chunks by quality band.
type Distribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Stats summarizes one processed document.
type Stats struct {
	DocumentType        registry.DocType `json:"document_type"`
	TotalChunks         int              `json:"total_chunks"`
	AvgChunkQuality     float64          `json:"avg_chunk_quality"`
	QualityDistribution Distribution     `json:"quality_distribution"`
	TextLength          int              `json:"text_length"`
	AvgChunkSize        float64          `json:"avg_chunk_size"`
	ProcessingTimeMS    int64            `json:"processing_time_ms"`
}

// Validation carries result-level recommendations.
type Validation struct {
	Recommendations []string `json:"recommendations"`
}

// ProcessingInfo identifies one engine invocation.
type ProcessingInfo struct {
	RequestID           string `json:"request_id"`
	Timestamp           string `json:"timestamp"`
	Version             string `json:"version"`
	TargetChunkSize     int    `json:"target_chunk_size"`
	EffectiveTargetSize int    `json:"effective_target_size"`
	OverlapSize         int    `json:"overlap_size"`
}

// Result is the full engine output for one document.
type Result struct {
	Chunks           []chunker.Chunk  `json:"chunks"`
	DocumentMetadata docmeta.Metadata `json:"document_metadata"`
	Stats            Stats            `json:"document_stats"`
	Validation       Validation       `json:"validation_results"`
	Processing       ProcessingInfo   `json:"processing_info"`
}

// Process runs the whole pipeline over one document. It is total over any
// input: out-of-range parameters are the caller's responsibility (see
// ValidateRequest), unset ones get the defaults.
func (e *Engine) Process(req Request) Result {
	start := e.now()

	text := req.Text
	if req.StripHTML {
		text = textnorm.StripHTML(text)
	}
	if req.TargetSize <= 0 {
		req.TargetSize = DefaultTargetSize
	}
	if req.Overlap < 0 {
		req.Overlap = DefaultOverlap
	}

	meta := e.meta.Extract(text)
	effTarget := e.structure.AdaptiveTargetSize(text, req.TargetSize)

	var chunks []chunker.Chunk
	if e.structure.HasTables(text) {
		chunks = e.builder.BuildTableAware(text, effTarget, req.Overlap, 1)
	} else {
		chunks = e.builder.Build(text, effTarget, req.Overlap, 1)
	}

	for i := range chunks {
		chunks[i].UserID = req.UserID
		chunks[i].ProjectID = req.ProjectID
		if req.IncludeMetadata {
			chunks[i].DocumentID = meta.ID
		}
	}

	stats := e.buildStats(text, meta.Type, chunks)
	stats.ProcessingTimeMS = e.now().Sub(start).Milliseconds()

	return Result{
		Chunks:           chunks,
		DocumentMetadata: meta,
		Stats:            stats,
		Validation:       buildValidation(stats),
		Processing: ProcessingInfo{
			RequestID:           e.newRequestID(start),
			Timestamp:           start.UTC().Format(time.RFC3339),
			Version:             Version,
			TargetChunkSize:     req.TargetSize,
			EffectiveTargetSize: effTarget,
			OverlapSize:         req.Overlap,
		},
	}
}

func (e *Engine) buildStats(text string, docType registry.DocType, chunks []chunker.Chunk) Stats {
	stats := Stats{
		DocumentType: docType,
		TotalChunks:  len(chunks),
		TextLength:   utf8.RuneCountInString(text),
	}

	if len(chunks) == 0 {
		return stats
	}

	totalQuality := 0.0
	totalWords := 0
	for _, c := range chunks {
		totalQuality += c.QualityScore
		totalWords += c.WordCount
		switch {
		case c.QualityScore >= highQualityFloor:
			stats.QualityDistribution.High++
		case c.QualityScore >= mediumQualityFloor:
			stats.QualityDistribution.Medium++
		default:
			stats.QualityDistribution.Low++
		}
	}
	stats.AvgChunkQuality = round3(totalQuality / float64(len(chunks)))
	stats.AvgChunkSize = round3(float64(totalWords) / float64(len(chunks)))
	return stats
}

func buildValidation(stats Stats) Validation {
	v := Validation{Recommendations: []string{}}
	if stats.TotalChunks == 0 {
		return v
	}
	lowRate := float64(stats.QualityDistribution.Low) / float64(stats.TotalChunks) * 100
	if lowRate > 30 {
		v.Recommendations = append(v.Recommendations,
			"Taux élevé de chunks de basse qualité - considérer l'augmentation de target_chunk_size")
	}
	return v
}

func (e *Engine) newRequestID(now time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), e.entropy).String()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
