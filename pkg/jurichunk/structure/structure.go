// Package structure detects document-wide signals used to pick a chunking
// strategy and an adaptive target size. Both decisions are total functions
// of the input text.
package structure

import (
	"strings"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// Classifier inspects whole documents before chunking.
type Classifier struct {
	reg *registry.Registry
}

// NewClassifier creates a Classifier over the given registry.
func NewClassifier(reg *registry.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// HasTables reports whether the text carries tabular content: a pipe
// character anywhere, or one of the known table header phrases.
func (c *Classifier) HasTables(text string) bool {
	if strings.ContainsRune(text, '|') {
		return true
	}
	lower := strings.ToLower(text)
	for _, phrase := range c.reg.TableHeaderPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// DominantGroup returns the adaptive group with the most keyword
// occurrences in the text, or "" when nothing matched. Registry order
// breaks ties.
func (c *Classifier) DominantGroup(text string) string {
	lower := strings.ToLower(text)
	best := ""
	bestCount := 0
	for _, group := range c.reg.AdaptiveGroups {
		count := 0
		for _, kw := range group.Keywords {
			count += strings.Count(lower, kw)
		}
		if count > bestCount {
			best = group.Name
			bestCount = count
		}
	}
	return best
}

// AdaptiveTargetSize applies the dominant group's additive adjustment to
// the caller-supplied base target word count. Range validation of the
// result belongs to the caller.
func (c *Classifier) AdaptiveTargetSize(text string, base int) int {
	dominant := c.DominantGroup(text)
	for _, group := range c.reg.AdaptiveGroups {
		if group.Name == dominant {
			return base + group.Delta
		}
	}
	return base
}
