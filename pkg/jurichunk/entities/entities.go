// Package entities applies the registry's extraction patterns to a text
// span. Extraction is a pure function: same text, same Set, independent of
// any other chunk.
package entities

import (
	"strings"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// Set holds the matches per entity kind. Duplicates are preserved and
// order is pattern application order, then match order within the text.
type Set struct {
	Dates            []string `json:"dates"`
	MonetaryAmounts  []string `json:"monetary_amounts"`
	LegalReferences  []string `json:"legal_references"`
	Measurements     []string `json:"measurements"`
	NormsStandards   []string `json:"norms_standards"`
	Materials        []string `json:"materials"`
	TechnicalSpecs   []string `json:"technical_specs"`
	RealEstateActors []string `json:"real_estate_actors"`
	InsuranceTerms   []string `json:"insurance_terms"`
	Deadlines        []string `json:"deadlines"`
	Penalties        []string `json:"penalties"`
}

// ByKind returns the match list for one kind.
func (s *Set) ByKind(kind registry.EntityKind) []string {
	return *s.slot(kind)
}

// Total counts all matches across kinds.
func (s *Set) Total() int {
	total := 0
	for _, kind := range kinds {
		total += len(*s.slot(kind))
	}
	return total
}

var kinds = []registry.EntityKind{
	registry.EntityDates,
	registry.EntityMonetaryAmounts,
	registry.EntityLegalReferences,
	registry.EntityMeasurements,
	registry.EntityNormsStandards,
	registry.EntityMaterials,
	registry.EntityTechnicalSpecs,
	registry.EntityRealEstateActors,
	registry.EntityInsuranceTerms,
	registry.EntityDeadlines,
	registry.EntityPenalties,
}

func (s *Set) slot(kind registry.EntityKind) *[]string {
	switch kind {
	case registry.EntityDates:
		return &s.Dates
	case registry.EntityMonetaryAmounts:
		return &s.MonetaryAmounts
	case registry.EntityLegalReferences:
		return &s.LegalReferences
	case registry.EntityMeasurements:
		return &s.Measurements
	case registry.EntityNormsStandards:
		return &s.NormsStandards
	case registry.EntityMaterials:
		return &s.Materials
	case registry.EntityTechnicalSpecs:
		return &s.TechnicalSpecs
	case registry.EntityRealEstateActors:
		return &s.RealEstateActors
	case registry.EntityInsuranceTerms:
		return &s.InsuranceTerms
	case registry.EntityDeadlines:
		return &s.Deadlines
	case registry.EntityPenalties:
		return &s.Penalties
	}
	panic("unknown entity kind: " + string(kind))
}

// Extractor matches registry entity definitions against text spans.
type Extractor struct {
	reg *registry.Registry
}

// NewExtractor creates an Extractor over the given registry.
func NewExtractor(reg *registry.Registry) *Extractor {
	return &Extractor{reg: reg}
}

// Extract runs every entity definition against the text. Regex patterns
// collect all matches in order; keyword definitions match by literal
// containment on the lowercased text and record the keyword itself.
func (e *Extractor) Extract(text string) Set {
	var set Set
	lower := strings.ToLower(text)

	// Absent kinds serialize as empty lists, not null.
	for _, kind := range kinds {
		*set.slot(kind) = []string{}
	}

	for _, def := range e.reg.Entities {
		slot := set.slot(def.Kind)
		for _, pat := range def.Patterns {
			matches := pat.FindAllString(text, -1)
			*slot = append(*slot, matches...)
		}
		for _, kw := range def.Keywords {
			if strings.Contains(lower, kw) {
				*slot = append(*slot, kw)
			}
		}
	}
	return set
}
