// Package classify assigns a content category to a chunk and computes the
// transparency score vector attached alongside the winning label.
package classify

import (
	"strings"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// Classifier scores chunk text against the registry's weighted category
// definitions.
type Classifier struct {
	reg *registry.Registry
}

// NewClassifier creates a Classifier over the given registry.
func NewClassifier(reg *registry.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Classify returns the winning category label. Per category the score is
// (keyword_hits + 1.5*pattern_hits) * weight; the winner must reach the
// registry confidence floor or the label falls back to general. Ties go to
// the first category in registry order, which is fixed.
func (c *Classifier) Classify(text string) registry.Category {
	lower := strings.ToLower(text)

	best := registry.CategoryGeneral
	bestScore := 0.0
	for _, def := range c.reg.Categories {
		score := c.categoryScore(text, lower, def)
		if score > bestScore {
			best = def.Name
			bestScore = score
		}
	}
	if bestScore < c.reg.MinCategoryConfidence {
		return registry.CategoryGeneral
	}
	return best
}

func (c *Classifier) categoryScore(text, lower string, def registry.CategoryDef) float64 {
	keywordHits := 0
	for _, kw := range def.Keywords {
		if strings.Contains(lower, kw) {
			keywordHits++
		}
	}
	patternHits := 0
	for _, pat := range def.Patterns {
		patternHits += len(pat.FindAllStringIndex(text, -1))
	}
	if keywordHits == 0 && patternHits == 0 {
		return 0
	}
	return (float64(keywordHits) + 1.5*float64(patternHits)) * def.Weight
}

// Scores computes the secondary keyword-only score vector over the
// 11-category transparency set. Every category is present, zero when
// nothing matched.
func (c *Classifier) Scores(text string) map[string]int {
	lower := strings.ToLower(text)
	scores := make(map[string]int, len(c.reg.ScoreCategories))
	for _, def := range c.reg.ScoreCategories {
		hits := 0
		for _, kw := range def.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		scores[def.Name] = hits
	}
	return scores
}
