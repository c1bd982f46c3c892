package entities

import (
	"testing"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

func TestExtractMonetaryAndDates(t *testing.T) {
	e := NewExtractor(registry.Default())
	set := e.Extract("Le prix de 245 000 euros sera payé avant le 31 décembre 2013.")

	if !contains(set.MonetaryAmounts, "245 000 euros") {
		t.Errorf("monetary amount not extracted: %q", set.MonetaryAmounts)
	}
	if !contains(set.Dates, "31 décembre 2013") {
		t.Errorf("date not extracted: %q", set.Dates)
	}
	if set.Total() == 0 {
		t.Error("expected a non-zero total")
	}
}

func TestExtractLegalReferences(t *testing.T) {
	e := NewExtractor(registry.Default())
	set := e.Extract("Conformément à l'article 1601-1 du code civil et au décret n° 67-1166.")

	if len(set.LegalReferences) < 2 {
		t.Fatalf("expected at least 2 legal references, got %q", set.LegalReferences)
	}
}

func TestExtractKeywordEntities(t *testing.T) {
	e := NewExtractor(registry.Default())
	set := e.Extract("Le béton et l'acier sont posés sous contrôle du promoteur.")

	if !contains(set.Materials, "béton") || !contains(set.Materials, "acier") {
		t.Errorf("materials not extracted: %q", set.Materials)
	}
	if !contains(set.RealEstateActors, "promoteur") {
		t.Errorf("actor not extracted: %q", set.RealEstateActors)
	}
}

func TestExtractEmptyListsNotNil(t *testing.T) {
	e := NewExtractor(registry.Default())
	set := e.Extract("rien d'intéressant ici")

	for _, kind := range kinds {
		if set.ByKind(kind) == nil {
			t.Errorf("kind %q is nil, want empty list", kind)
		}
	}
	if set.Total() != 0 {
		t.Errorf("expected empty set, got total %d", set.Total())
	}
}

func TestByKindMatchesFields(t *testing.T) {
	set := Set{Dates: []string{"01/01/2024"}, Penalties: []string{"pénalités de retard"}}
	if got := set.ByKind(registry.EntityDates); len(got) != 1 {
		t.Errorf("dates slot mismatch: %q", got)
	}
	if got := set.ByKind(registry.EntityPenalties); len(got) != 1 {
		t.Errorf("penalties slot mismatch: %q", got)
	}
	if set.Total() != 2 {
		t.Errorf("expected total 2, got %d", set.Total())
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
