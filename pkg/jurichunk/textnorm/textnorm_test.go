package textnorm

import (
	"strings"
	"testing"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  Le \t prix \n\n est   fixé. ")
	want := "Le prix est fixé."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeZeroWidthRunes(t *testing.T) {
	got := Normalize("prix\u200Bde\u200C vente\uFEFF")
	want := "prix de vente"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Le  délai   court. ",
		"déjà normalisé",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestSplitSentencesBasic(t *testing.T) {
	n := New(registry.Default())
	got := n.SplitSentences("Premier point. Deuxième point ! Est-ce fini ?")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %q", len(got), got)
	}
	if got[0] != "Premier point." {
		t.Errorf("unexpected first sentence: %q", got[0])
	}
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	n := New(registry.Default())
	got := n.SplitSentences("L'art. 12 du code s'applique. Le délai court.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if !strings.Contains(got[0], "art. 12") {
		t.Errorf("abbreviation period not restored: %q", got[0])
	}
}

func TestSplitSentencesJoinReconstruction(t *testing.T) {
	n := New(registry.Default())
	text := Normalize("Le notaire établit l'acte. Les parties signent ensuite. Le solde est versé à la livraison.")
	sentences := n.SplitSentences(text)
	if joined := strings.Join(sentences, " "); joined != text {
		t.Fatalf("join does not reproduce input:\nwant %q\ngot  %q", text, joined)
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	n := New(registry.Default())
	if got := n.SplitSentences(""); len(got) != 0 {
		t.Fatalf("expected no sentences, got %q", got)
	}
}

func TestProtectRoundtrip(t *testing.T) {
	n := New(registry.Default())
	text := "Conformément à l'article 12.3 le prix de 250 000 euros est dû."

	protected := n.Protect(text)
	if protected == text {
		t.Fatal("expected protection markers to be inserted")
	}
	if again := n.Protect(protected); again != protected {
		t.Fatal("Protect is not idempotent")
	}
	if got := Unprotect(protected); got != text {
		t.Fatalf("Unprotect did not restore input:\nwant %q\ngot  %q", text, got)
	}
}

func TestStripHTML(t *testing.T) {
	got := StripHTML("<p>Bonjour <b>le</b> monde</p>")
	if strings.ContainsRune(got, '<') {
		t.Fatalf("markup left in output: %q", got)
	}
	for _, word := range []string{"Bonjour", "le", "monde"} {
		if !strings.Contains(got, word) {
			t.Errorf("missing text %q in %q", word, got)
		}
	}
}

func TestStripHTMLPlainTextPassthrough(t *testing.T) {
	in := "Texte sans balisage."
	if got := StripHTML(in); got != in {
		t.Fatalf("plain text altered: %q", got)
	}
}
