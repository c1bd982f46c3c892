// Package quality scores chunks on six bounded factors combined by fixed
// weights. Scores are deterministic and explainable; the Breakdown carries
// the weighted contribution of each factor.
package quality

import (
	"math"
	"strings"

	"github.com/cognicore/jurichunk/pkg/jurichunk/entities"
	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// Weights defines the factor weights. They sum to 1.0.
type Weights struct {
	Length      float64
	Keyword     float64
	Entity      float64
	Structure   float64
	Coherence   float64
	Specificity float64
}

// DefaultWeights returns the calibrated production weights.
func DefaultWeights() Weights {
	return Weights{
		Length:      0.25,
		Keyword:     0.20,
		Entity:      0.25,
		Structure:   0.15,
		Coherence:   0.10,
		Specificity: 0.05,
	}
}

const (
	optimalWordCount = 55.0
	lengthVariance   = 25.0
	lengthFloor      = 0.3

	// Keyword scores normalize against 20% of the theoretical maximum
	// (every word at the top tier).
	keywordNormShare = 0.2
	topKeywordTier   = 3.0
)

// Scorer computes quality scores against a shared registry.
type Scorer struct {
	reg        *registry.Registry
	weights    Weights
	tierByWord map[string]int
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(reg *registry.Registry, w Weights) *Scorer {
	tiers := make(map[string]int, len(reg.QualityKeywords))
	for _, kt := range reg.QualityKeywords {
		tiers[kt.Word] = kt.Tier
	}
	return &Scorer{reg: reg, weights: w, tierByWord: tiers}
}

// Breakdown carries the weighted contribution of each factor. Total is the
// clamped, 3-decimal-rounded final score.
type Breakdown struct {
	Length      float64 `json:"length"`
	Keyword     float64 `json:"keyword"`
	Entity      float64 `json:"entity"`
	Structure   float64 `json:"structure"`
	Coherence   float64 `json:"coherence"`
	Specificity float64 `json:"specificity"`
	Total       float64 `json:"total"`
}

// Score returns the final quality score in [0,1], rounded to 3 decimals.
func (s *Scorer) Score(content string, ents entities.Set) float64 {
	return s.ScoreWithBreakdown(content, ents).Total
}

// ScoreWithBreakdown computes the score with per-factor detail.
func (s *Scorer) ScoreWithBreakdown(content string, ents entities.Set) Breakdown {
	words := strings.Fields(content)

	b := Breakdown{
		Length:      s.weights.Length * lengthFactor(len(words)),
		Keyword:     s.weights.Keyword * s.keywordFactor(words),
		Entity:      s.weights.Entity * entityFactor(ents),
		Structure:   s.weights.Structure * structureFactor(content),
		Coherence:   s.weights.Coherence * s.coherenceFactor(content, words),
		Specificity: s.weights.Specificity * s.specificityFactor(content),
	}
	total := b.Length + b.Keyword + b.Entity + b.Structure + b.Coherence + b.Specificity
	b.Total = round3(clamp01(total))
	return b
}

// lengthFactor falls off quadratically around the optimal word count and
// never drops below the floor.
func lengthFactor(wordCount int) float64 {
	d := float64(wordCount) - optimalWordCount
	f := 1.0 - d*d/(2*lengthVariance*lengthVariance)
	return math.Max(lengthFloor, f)
}

func (s *Scorer) keywordFactor(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	score := 0.0
	for _, w := range words {
		score += float64(s.tierByWord[normalizeWord(w)])
	}
	maxPossible := float64(len(words)) * topKeywordTier
	return math.Min(1.0, score/math.Max(maxPossible*keywordNormShare, 1))
}

func normalizeWord(w string) string {
	return strings.Trim(strings.ToLower(w), ".,;:!?()«»\"'")
}

// entityFactor starts from a 0.4 base and adds per-family bonuses. The
// additive sum can exceed 1.0 internally; the cap applies afterwards.
func entityFactor(ents entities.Set) float64 {
	f := 0.4
	if len(ents.Dates) > 0 {
		f += 0.15
	}
	if len(ents.Deadlines) > 0 {
		f += 0.10
	}
	if len(ents.MonetaryAmounts) > 0 {
		f += 0.20
	}
	if len(ents.LegalReferences) > 0 {
		f += 0.15
	}
	if len(ents.Measurements) > 0 || len(ents.TechnicalSpecs) > 0 {
		f += 0.10
	}
	if len(ents.RealEstateActors) > 0 || len(ents.InsuranceTerms) > 0 {
		f += 0.10
	}
	if len(ents.NormsStandards) > 0 {
		f += 0.10
	}
	return math.Min(1.0, f)
}

func structureFactor(content string) float64 {
	punct := strings.Count(content, ".") + strings.Count(content, "!") + strings.Count(content, "?")
	f := math.Min(float64(punct), 2) * 0.35
	if strings.HasSuffix(strings.TrimSpace(content), ";") ||
		strings.HasSuffix(strings.TrimSpace(content), ":") ||
		strings.Contains(content, ";\n") || strings.Contains(content, ":\n") {
		f += 0.1
	}
	if strings.ContainsRune(content, '\n') {
		f += 0.1
	}
	if punct > 0 {
		f += 0.1
	}
	return math.Min(1.0, f)
}

// coherenceFactor averages lexical variety, connector density and theme
// consistency. Chunks under 10 words short-circuit to a neutral 0.5.
func (s *Scorer) coherenceFactor(content string, words []string) float64 {
	if len(words) < 10 {
		return 0.5
	}

	repetition := repetitionFactor(words)
	connector := s.connectorFactor(content, len(words))
	theme := s.themeConsistency(content)

	return (repetition + connector + theme) / 3.0
}

// repetitionFactor rewards lexical variety among words longer than three
// runes.
func repetitionFactor(words []string) float64 {
	seen := make(map[string]struct{})
	long := 0
	for _, w := range words {
		w = normalizeWord(w)
		if len([]rune(w)) <= 3 {
			continue
		}
		long++
		seen[w] = struct{}{}
	}
	if long == 0 {
		return 0.5
	}
	return math.Min(1.0, float64(len(seen))/float64(long)*2)
}

func (s *Scorer) connectorFactor(content string, wordCount int) float64 {
	lower := strings.ToLower(content)
	count := 0
	for _, conn := range s.reg.LogicalConnectors {
		count += strings.Count(lower, " "+conn+" ")
	}
	return math.Min(1.0, 0.6+float64(count)/float64(wordCount)*4)
}

// themeConsistency scores the five thematic groups. Mild dominance of one
// theme (share of hits in [0.3,0.7]) is rewarded by proximity to 0.5;
// outside the band the same proximity is penalized.
func (s *Scorer) themeConsistency(content string) float64 {
	lower := strings.ToLower(content)
	total := 0
	max := 0
	for _, group := range s.reg.ThemeGroups {
		hits := 0
		for _, kw := range group.Keywords {
			hits += strings.Count(lower, kw)
		}
		total += hits
		if hits > max {
			max = hits
		}
	}
	if total == 0 {
		return 0.5
	}
	share := float64(max) / float64(total)
	dist := math.Abs(share - 0.5)
	if share >= 0.3 && share <= 0.7 {
		return 1.0 - 2*dist
	}
	return 0.6 - (dist - 0.2)
}

func (s *Scorer) specificityFactor(content string) float64 {
	lower := strings.ToLower(content)
	present := 0
	for _, term := range s.reg.SpecificityTerms {
		if strings.Contains(lower, term) {
			present++
		}
	}
	fraction := float64(present) / float64(len(s.reg.SpecificityTerms))
	return 0.7 + 0.3*fraction
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
