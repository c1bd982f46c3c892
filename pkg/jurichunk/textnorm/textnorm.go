// Package textnorm cleans raw extracted text and segments it into
// sentences. Every function here is total over any string: empty input
// yields empty output, never an error.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
)

// protectionMark is the invisible marker appended after protected tokens
// (article references, monetary amounts) so downstream splitting on '.'
// cannot sever them. U+2060 WORD JOINER renders as nothing.
const protectionMark = '\u2060'

// abbrevSentinel temporarily replaces the period of a known abbreviation
// during sentence splitting. Private-use rune, never present in real text.
const abbrevSentinel = '\uE000'

// Normalizer performs normalization and segmentation against a shared
// registry.
type Normalizer struct {
	reg *registry.Registry
}

// New creates a Normalizer backed by the given registry.
func New(reg *registry.Registry) *Normalizer {
	return &Normalizer{reg: reg}
}

// Normalize collapses all runs of whitespace, including non-breaking and
// zero-width unicode spaces, into single ASCII spaces and trims both ends.
// Normalizing already-normalized text is a no-op.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpaceRune(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSpaceRune(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\uFEFF':
		// Zero-width runes are not in unicode.White_Space.
		return true
	}
	return unicode.IsSpace(r)
}

// Protect inserts the protection marker after each protected token (article
// references and monetary amounts). Idempotent: tokens already followed by
// a marker are left alone.
func (n *Normalizer) Protect(s string) string {
	for _, pat := range n.reg.ProtectedPatterns {
		locs := pat.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			continue
		}
		var b strings.Builder
		b.Grow(len(s) + len(locs)*3)
		prev := 0
		for _, loc := range locs {
			b.WriteString(s[prev:loc[1]])
			if !strings.HasPrefix(s[loc[1]:], string(protectionMark)) {
				b.WriteRune(protectionMark)
			}
			prev = loc[1]
		}
		b.WriteString(s[prev:])
		s = b.String()
	}
	return s
}

// Unprotect removes all protection markers.
func Unprotect(s string) string {
	return strings.ReplaceAll(s, string(protectionMark), "")
}

// SplitSentences splits normalized text into an ordered list of sentence
// strings. Periods belonging to known abbreviations never produce a
// boundary. Joining the result with single spaces reproduces the input
// modulo whitespace normalization. Empty sentences are filtered.
func (n *Normalizer) SplitSentences(text string) []string {
	guarded := text
	for _, abbrev := range n.reg.Abbreviations {
		if !strings.Contains(guarded, abbrev) {
			continue
		}
		sentinel := abbrev[:len(abbrev)-1] + string(abbrevSentinel)
		guarded = strings.ReplaceAll(guarded, abbrev, sentinel)
	}

	var sentences []string
	start := 0
	runes := []rune(guarded)
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Consume a run of terminal punctuation, then require whitespace.
		j := i
		for j+1 < len(runes) && isTerminal(runes[j+1]) {
			j++
		}
		if j+1 < len(runes) && !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}
		sentences = appendSentence(sentences, runes[start:j+1])
		i = j + 1
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
		i--
	}
	if start < len(runes) {
		sentences = appendSentence(sentences, runes[start:])
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func appendSentence(dst []string, runes []rune) []string {
	s := strings.TrimSpace(string(runes))
	if s == "" {
		return dst
	}
	return append(dst, strings.ReplaceAll(s, string(abbrevSentinel), "."))
}
