package docmeta

import (
	"strings"
	"testing"
	"time"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

func newFixedExtractor() *Extractor {
	e := NewExtractor(registry.Default())
	e.now = func() time.Time {
		return time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)
	}
	return e
}

const vefaSample = `Contrat de réservation - VEFA
Programme immobilier « Les Jardins d'Élise »

Entre la société dénommée IMMOBILIER DES LILAS au capital de 100 000 euros,
le réservant, et le futur acquéreur du logement.

Le bien est situé à SCI DU PARC, sur la commune de Nanterre.
Fait à Paris, le 15 mars 2024.`

func TestGenerateIDDeterministic(t *testing.T) {
	e := newFixedExtractor()

	first := e.GenerateID("texte du contrat", "TITRE", "15/03/2024")
	second := e.GenerateID("texte du contrat", "TITRE", "15/03/2024")
	if first != second {
		t.Fatalf("id not deterministic: %q vs %q", first, second)
	}
	if len(first) != 17 {
		t.Fatalf("expected 17 characters, got %d (%q)", len(first), first)
	}
	if !strings.HasPrefix(first, "20240315120000") {
		t.Fatalf("timestamp prefix should use the document date at noon: %q", first)
	}

	other := e.GenerateID("texte différent", "TITRE", "15/03/2024")
	if other == first {
		t.Fatal("different text should change the hash suffix")
	}
	if other[:14] != first[:14] {
		t.Fatal("same date should keep the same timestamp prefix")
	}
}

func TestGenerateIDFallsBackToNow(t *testing.T) {
	e := newFixedExtractor()
	id := e.GenerateID("texte", "TITRE", "date illisible")
	if !strings.HasPrefix(id, "20240601093000") {
		t.Fatalf("expected current-time prefix, got %q", id)
	}
}

func TestExtractDate(t *testing.T) {
	e := newFixedExtractor()

	cases := []struct {
		name   string
		sample string
		want   string
	}{
		{"french textual", "Fait à Paris, le 15 mars 2024.", "15/03/2024"},
		{"numeric short year", "Le présent acte est signé le 3/1/24 par les parties.", "03/01/2024"},
		{"bare date fallback", "Une visite est prévue pour le 07-11-2023 sur le chantier.", "07/11/2023"},
		{"no date at all", "Aucune mention temporelle dans ce texte.", "01/06/2024"},
	}
	for _, tc := range cases {
		if got := e.extractDate(tc.sample); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"31 décembre 2013", "31/12/2013", true},
		{"1 janvier 99", "01/01/1999", true},
		{"15/03/2024", "15/03/2024", true},
		{"99/99/2024", "", false},
		{"pas une date", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeDate(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeDate(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDetectTypeVEFA(t *testing.T) {
	e := newFixedExtractor()
	if got := e.detectType(vefaSample); got != registry.DocContratReservationVEFA {
		t.Fatalf("expected VEFA contract, got %q", got)
	}
}

func TestDetectTypeFallback(t *testing.T) {
	e := newFixedExtractor()
	if got := e.detectType("Un texte quelconque sans signature documentaire."); got != registry.DocContratGeneral {
		t.Fatalf("expected contrat_general, got %q", got)
	}
}

func TestExtractPartiesVEFA(t *testing.T) {
	e := newFixedExtractor()
	parties := e.extractParties(vefaSample, registry.DocContratReservationVEFA)

	if got := parties["reservant"]; got != "IMMOBILIER DES LILAS" {
		t.Errorf("reservant: %q", got)
	}
	if got := parties["reservataire"]; got != "[Réservataire]" {
		t.Errorf("missing reservataire placeholder: %q", got)
	}
}

func TestExtractLocationSkipsCompanyForms(t *testing.T) {
	e := newFixedExtractor()
	if got := e.extractLocation(vefaSample); got != "Nanterre" {
		t.Fatalf("expected Nanterre, got %q", got)
	}
}

func TestExtractProject(t *testing.T) {
	e := newFixedExtractor()
	if got := e.extractProject(vefaSample); got != "Les Jardins d'Élise" {
		t.Fatalf("expected project name, got %q", got)
	}
}

func TestExtractTitleGenericAllCapsLine(t *testing.T) {
	e := newFixedExtractor()
	sample := "Préambule du document.\nCONVENTION DE PARTENARIAT COMMERCIAL\nLes parties conviennent de ce qui suit."
	got := e.extractTitle(sample, registry.DocContratGeneral)
	if got != "CONVENTION DE PARTENARIAT COMMERCIAL" {
		t.Fatalf("expected the all-caps line, got %q", got)
	}
}

func TestExtractFullDocument(t *testing.T) {
	e := newFixedExtractor()
	meta := e.Extract(vefaSample)

	if meta.Type != registry.DocContratReservationVEFA {
		t.Errorf("type: %q", meta.Type)
	}
	if !strings.Contains(meta.Title, "RÉSERVATION") {
		t.Errorf("title not uppercased from the heading line: %q", meta.Title)
	}
	if meta.Date != "15/03/2024" {
		t.Errorf("date: %q", meta.Date)
	}
	if len(meta.ID) != 17 {
		t.Errorf("id length: %q", meta.ID)
	}
	if meta.Location != "Nanterre" {
		t.Errorf("location: %q", meta.Location)
	}
}
