package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cognicore/jurichunk/pkg/jurichunk/classify"
	"github.com/cognicore/jurichunk/pkg/jurichunk/entities"
	"github.com/cognicore/jurichunk/pkg/jurichunk/quality"
	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
	"github.com/cognicore/jurichunk/pkg/jurichunk/textnorm"
)

func newTestBuilder() *Builder {
	reg := registry.Default()
	return NewBuilder(
		reg,
		textnorm.New(reg),
		entities.NewExtractor(reg),
		classify.NewClassifier(reg),
		quality.NewScorer(reg, quality.DefaultWeights()),
	)
}

const proseText = "Le promoteur construit la résidence au centre de la ville nouvelle. " +
	"La livraison du bâtiment interviendra au cours du printemps prochain. " +
	"Le notaire établit ensuite la liste complète des documents requis. " +
	"Les acquéreurs signent le contrat définitif devant le notaire choisi. " +
	"Le paiement du solde intervient après la remise des clés. " +
	"La garantie couvre les défauts pendant une période de dix ans."

func TestBuildMonotonicIDs(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build(proseText, 25, 0, 1)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		want := fmt.Sprintf("chunk_%03d", i+1)
		if c.ID != want {
			t.Errorf("chunk %d: id %q, want %q", i, c.ID, want)
		}
		if c.Position != i+1 {
			t.Errorf("chunk %d: position %d, want %d", i, c.Position, i+1)
		}
		if c.WordCount == 0 || c.CharCount == 0 {
			t.Errorf("chunk %d: empty counts", i)
		}
	}
}

func TestBuildStartID(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build(proseText, 25, 0, 7)
	if chunks[0].ID != "chunk_007" {
		t.Fatalf("expected chunk_007, got %q", chunks[0].ID)
	}
}

func TestBuildReconstructionWithoutOverlap(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build(proseText, 25, 0, 1)

	var parts []string
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	if got := strings.Join(parts, " "); got != textnorm.Normalize(proseText) {
		t.Fatalf("chunks do not reconstruct input:\nwant %q\ngot  %q", textnorm.Normalize(proseText), got)
	}
}

func TestBuildConnectorBlocksSplit(t *testing.T) {
	b := newTestBuilder()

	blocked := b.Build("Le promoteur livre le bâtiment au printemps. Cependant le calendrier peut changer.", 5, 0, 1)
	if len(blocked) != 1 {
		t.Fatalf("connector start should block the split, got %d chunks", len(blocked))
	}

	allowed := b.Build("Le promoteur livre le bâtiment au printemps. Ensuite le calendrier peut changer.", 5, 0, 1)
	if len(allowed) != 2 {
		t.Fatalf("neutral start should allow the split, got %d chunks", len(allowed))
	}
}

func TestBuildSemicolonBlocksSplit(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build("Le lot comprend ; les taxes et frais divers restent dus. La suite arrive bientôt dans ce document.", 8, 0, 1)
	if len(chunks) != 1 {
		t.Fatalf("running enumeration should block the split, got %d chunks", len(chunks))
	}
}

func TestBuildColonBlocksSplit(t *testing.T) {
	b := newTestBuilder()
	// The colon sits mid-sentence, inside the trailing window but not on
	// the final word; it must still block the split like a semicolon.
	chunks := b.Build("Le lot comprend : les taxes et frais divers restent dus. La suite arrive bientôt dans ce document.", 8, 0, 1)
	if len(chunks) != 1 {
		t.Fatalf("running enumeration should block the split, got %d chunks", len(chunks))
	}
}

func TestBuildOverlapCarriesTrailingSentence(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build(proseText, 25, 15, 1)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// The first chunk ends with the second sentence; with a 15-word budget
	// that whole trailing sentence is carried into the next chunk.
	if !strings.HasSuffix(chunks[0].Content, "printemps prochain.") {
		t.Fatalf("unexpected first chunk tail: %q", chunks[0].Content)
	}
	if !strings.HasPrefix(chunks[1].Content, "La livraison du bâtiment") {
		t.Fatalf("second chunk does not open with the overlap: %q", chunks[1].Content)
	}
}

func TestBuildProtectedReferencesStayIntact(t *testing.T) {
	b := newTestBuilder()
	text := "Conformément à l'article 12.3 du contrat le prix est fixé. Le solde de 250 000 euros est versé à la livraison du bien immobilier."
	chunks := b.Build(text, 60, 0, 1)

	joined := ""
	for _, c := range chunks {
		joined += c.Content + " "
	}
	if !strings.Contains(joined, "article 12.3") {
		t.Errorf("article reference damaged: %q", joined)
	}
	if !strings.Contains(joined, "250 000 euros") {
		t.Errorf("monetary amount damaged: %q", joined)
	}
}

const tableText = "| Désignation | Quantité | Prix unitaire |\n" +
	"|---|---|---|\n" +
	"| Lot 1 | 2 | 1 000 euros |\n" +
	"| Lot 2 | 1 | 2 500 euros |\n" +
	"| Lot 3 | 4 | 800 euros |\n" +
	"| Lot 4 | 3 | 1 200 euros |\n" +
	"| Lot 5 | 2 | 950 euros |\n" +
	"| Lot 6 | 1 | 3 100 euros |\n" +
	"| Lot 7 | 5 | 640 euros |"

func TestBuildTableAwareGroupsRowsUnderHeader(t *testing.T) {
	b := newTestBuilder()
	chunks := b.BuildTableAware(tableText, 60, 0, 1)

	if len(chunks) != 2 {
		t.Fatalf("7 data rows should yield 2 chunks, got %d", len(chunks))
	}
	header := "| Désignation | Quantité | Prix unitaire |"
	for i, c := range chunks {
		lines := strings.Split(c.Content, "\n")
		if lines[0] != header {
			t.Errorf("chunk %d does not start with the header: %q", i, lines[0])
		}
	}
	if got := strings.Count(chunks[0].Content, "\n"); got != 4 {
		t.Errorf("first chunk should carry header plus 4 rows, got %d newlines", got)
	}
	if !strings.Contains(chunks[1].Content, "Lot 7") {
		t.Errorf("trailing rows missing from second chunk: %q", chunks[1].Content)
	}
}

func TestBuildTableAwareMixedSections(t *testing.T) {
	b := newTestBuilder()
	text := "Le devis détaille les lots suivants pour la construction.\n" + tableText +
		"\nLe montant total reste soumis à la validation du promoteur."
	chunks := b.BuildTableAware(text, 60, 0, 1)

	if len(chunks) < 4 {
		t.Fatalf("expected prose and table chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		want := fmt.Sprintf("chunk_%03d", i+1)
		if c.ID != want {
			t.Errorf("chunk %d: id %q, want %q", i, c.ID, want)
		}
	}
	if strings.Contains(chunks[0].Content, "|") {
		t.Errorf("leading prose chunk contains table rows: %q", chunks[0].Content)
	}
}

func TestChunkTitleFromArticleHeading(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build("Article 7 - Garanties financières. Le réservant fournit une garantie financière d'achèvement au réservataire.", 60, 0, 1)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.HasPrefix(chunks[0].HierarchicalTitle, "Article 7") {
		t.Errorf("unexpected title %q", chunks[0].HierarchicalTitle)
	}
}

func TestChunkKeyElementsCapped(t *testing.T) {
	b := newTestBuilder()
	text := "Le contrat fixe le prix, le délai et la garantie. L'obligation couvre chaque clause, chaque article et les conditions de paiement, de livraison et de responsabilité selon les modalités d'assurance."
	chunks := b.Build(text, 80, 0, 1)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	key := chunks[0].KeyElements
	if len(key) != 5 {
		t.Fatalf("expected 5 key elements, got %q", key)
	}
	if key[0] != "contrat" {
		t.Errorf("highest tier word should come first, got %q", key)
	}
}

func TestChunkFlags(t *testing.T) {
	b := newTestBuilder()
	chunks := b.Build("Selon l'article 1601-1 le prix de 245 000 euros sera payé le 31 décembre 2013 sans autre condition particulière.", 60, 0, 1)
	c := chunks[0]
	if !c.HasLegalReferences || !c.HasFinancialInfo || !c.HasDates {
		t.Fatalf("expected all flags set: %+v", c)
	}
}
