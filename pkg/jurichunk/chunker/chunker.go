// Package chunker implements the segmentation algorithm: greedy sentence
// windowing with cohesion-preserving split decisions and semantic overlap,
// plus a table-aware variant that keeps tabular rows under their header.
package chunker

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/jurichunk/pkg/jurichunk/classify"
	"github.com/cognicore/jurichunk/pkg/jurichunk/entities"
	"github.com/cognicore/jurichunk/pkg/jurichunk/quality"
	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
	"github.com/cognicore/jurichunk/pkg/jurichunk/textnorm"
)

// Chunk is one contiguous, word-aligned excerpt of a document with its
// attached analysis. Created once by the builder; the facade may stamp
// document identity fields, after which it is never mutated.
type Chunk struct {
	ID                   string            `json:"chunk_id"`
	Content              string            `json:"content"`
	HierarchicalTitle    string            `json:"hierarchical_title"`
	ContentType          registry.Category `json:"content_type"`
	QualityScore         float64           `json:"quality_score"`
	QualityBreakdown     quality.Breakdown `json:"quality_breakdown"`
	Entities             entities.Set      `json:"entities"`
	ClassificationScores map[string]int    `json:"classification_scores"`
	KeyElements          []string          `json:"key_elements"`
	WordCount            int               `json:"word_count"`
	CharCount            int               `json:"char_count"`
	Position             int               `json:"position"`
	HasLegalReferences   bool              `json:"has_legal_references"`
	HasFinancialInfo     bool              `json:"has_financial_info"`
	HasDates             bool              `json:"has_dates"`
	UserID               string            `json:"userId,omitempty"`
	ProjectID            string            `json:"projectId,omitempty"`
	DocumentID           string            `json:"document_id,omitempty"`
}

// Builder turns text into enriched chunks.
type Builder struct {
	reg  *registry.Registry
	norm *textnorm.Normalizer
	ents *entities.Extractor
	cls  *classify.Classifier
	qual *quality.Scorer
}

// NewBuilder wires the builder with its collaborators.
func NewBuilder(reg *registry.Registry, norm *textnorm.Normalizer, ents *entities.Extractor, cls *classify.Classifier, qual *quality.Scorer) *Builder {
	return &Builder{reg: reg, norm: norm, ents: ents, cls: cls, qual: qual}
}

// Build runs the standard path: normalize, protect references, split into
// sentences and accumulate greedy windows of roughly targetSize words.
// Chunk ids start at startID and increase strictly. The size target is
// soft; cohesion rules are hard, so chunks may exceed targetSize.
func (b *Builder) Build(text string, targetSize, overlap, startID int) []Chunk {
	text = b.norm.Protect(textnorm.Normalize(text))
	sentences := b.norm.SplitSentences(text)

	var chunks []Chunk
	var current []string
	id := startID

	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) == 0 {
			continue
		}
		if len(current)+len(words) > targetSize && len(current) > 0 && b.canSplitBefore(current, words) {
			chunks = append(chunks, b.makeChunk(current, id))
			id++
			seed := overlapSeed(current, overlap)
			current = append(append([]string(nil), seed...), words...)
		} else {
			current = append(current, words...)
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, b.makeChunk(current, id))
	}
	return chunks
}

// canSplitBefore is the cohesion check: refuse a split that would orphan a
// connective from its clause or cut a running enumeration.
func (b *Builder) canSplitBefore(current, next []string) bool {
	first := strings.ToLower(strings.Trim(next[0], ".,;:!?«»\"'"))
	for _, conn := range b.reg.Connectors {
		if first == conn {
			return false
		}
	}
	tail := current
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	for _, w := range tail {
		if strings.HasSuffix(w, ";") || strings.HasSuffix(w, ":") {
			return false
		}
	}
	return true
}

// overlapSeed selects the words carried into the next chunk. The trailing
// complete sentence is preferred when it fits the budget; otherwise the
// literal trailing budget words.
func overlapSeed(words []string, budget int) []string {
	if budget <= 0 || len(words) == 0 {
		return nil
	}
	if tail := trailingSentence(words); len(tail) > 0 && len(tail) <= budget {
		return append([]string(nil), tail...)
	}
	if len(words) <= budget {
		return append([]string(nil), words...)
	}
	return append([]string(nil), words[len(words)-budget:]...)
}

// trailingSentence returns the words after the last sentence boundary
// inside the list, or nil when the list is a single sentence.
func trailingSentence(words []string) []string {
	for i := len(words) - 2; i >= 0; i-- {
		w := words[i]
		if strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") || strings.HasSuffix(w, "?") {
			return words[i+1:]
		}
	}
	return nil
}

var (
	tableRulePattern = regexp.MustCompile(`^[\s|:\-]+$`)
	articleTitle     = regexp.MustCompile(`(?i)article\s+\d+[^.\n]*`)
	clauseTitle      = regexp.MustCompile(`(?i)clause\s+[^.\n]*`)
)

func isRuleLine(line string) bool {
	return strings.Contains(line, "-") && strings.Contains(line, "|") && tableRulePattern.MatchString(line)
}

func isTableRow(line string) bool {
	return strings.Contains(line, "|") && !isRuleLine(line)
}

// BuildTableAware splits the text into alternating table and prose
// sections. Prose sections go through the standard path; table sections
// are grouped so every emitted chunk starts with the table header. The id
// counter is shared across all sections.
func (b *Builder) BuildTableAware(text string, targetSize, overlap, startID int) []Chunk {
	lines := strings.Split(text, "\n")

	var chunks []Chunk
	id := startID
	var prose []string

	flushProse := func() {
		if len(prose) == 0 {
			return
		}
		section := strings.Join(prose, "\n")
		prose = nil
		if strings.TrimSpace(section) == "" {
			return
		}
		built := b.Build(section, targetSize, overlap, id)
		chunks = append(chunks, built...)
		id += len(built)
	}

	for i := 0; i < len(lines); {
		if !isTableRow(lines[i]) {
			prose = append(prose, lines[i])
			i++
			continue
		}
		flushProse()
		j := i
		for j < len(lines) && (isTableRow(lines[j]) || isRuleLine(lines[j])) {
			j++
		}
		var built []Chunk
		built, id = b.buildTableChunks(lines[i:j], id)
		chunks = append(chunks, built...)
		i = j
	}
	flushProse()
	return chunks
}

// buildTableChunks groups a table region: the first data line is retained
// as header, then every 4 buffered rows become a chunk carrying the
// header. A trailing group of more than just the header is flushed too.
func (b *Builder) buildTableChunks(region []string, id int) ([]Chunk, int) {
	var chunks []Chunk
	header := ""
	var buf []string

	for _, line := range region {
		if isRuleLine(line) {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if header == "" {
			header = line
			buf = []string{header}
			continue
		}
		buf = append(buf, line)
		if len(buf) == 5 {
			chunks = append(chunks, b.makeTableChunk(buf, id))
			id++
			buf = []string{header}
		}
	}
	if len(buf) > 1 {
		chunks = append(chunks, b.makeTableChunk(buf, id))
		id++
	}
	return chunks, id
}

func (b *Builder) makeChunk(words []string, id int) Chunk {
	content := textnorm.Unprotect(strings.Join(words, " "))
	return b.enrich(content, len(words), id)
}

func (b *Builder) makeTableChunk(lines []string, id int) Chunk {
	content := strings.Join(lines, "\n")
	return b.enrich(content, len(strings.Fields(content)), id)
}

func (b *Builder) enrich(content string, wordCount, id int) Chunk {
	ents := b.ents.Extract(content)
	qb := b.qual.ScoreWithBreakdown(content, ents)

	return Chunk{
		ID:                   fmt.Sprintf("chunk_%03d", id),
		Content:              content,
		HierarchicalTitle:    b.title(content),
		ContentType:          b.cls.Classify(content),
		QualityScore:         qb.Total,
		QualityBreakdown:     qb,
		Entities:             ents,
		ClassificationScores: b.cls.Scores(content),
		KeyElements:          b.keyElements(content),
		WordCount:            wordCount,
		CharCount:            utf8.RuneCountInString(content),
		Position:             id,
		HasLegalReferences:   len(ents.LegalReferences) > 0,
		HasFinancialInfo:     len(ents.MonetaryAmounts) > 0,
		HasDates:             len(ents.Dates) > 0,
	}
}

// title derives a heading for the chunk: a numbered article, a clause, a
// short opening sentence, then the literal fallback.
func (b *Builder) title(content string) string {
	if m := articleTitle.FindString(content); m != "" {
		return strings.TrimSpace(m)
	}
	if m := clauseTitle.FindString(content); m != "" {
		return strings.TrimSpace(m)
	}
	first := content
	if idx := strings.IndexAny(content, ".!?"); idx >= 0 {
		first = content[:idx]
	}
	first = strings.TrimSpace(first)
	if first != "" && utf8.RuneCountInString(first) < 80 {
		return first
	}
	return "Clause contractuelle"
}

// keyElements picks up to five priority keywords present in the chunk,
// highest tier first; ties keep registry order.
func (b *Builder) keyElements(content string) []string {
	lower := strings.ToLower(content)

	found := make([]registry.KeywordTier, 0, 5)
	for _, kt := range b.reg.PriorityWords {
		if strings.Contains(lower, kt.Word) {
			found = append(found, kt)
		}
	}
	// Stable selection sort by tier keeps registry order within a tier.
	elements := make([]string, 0, 5)
	for tier := 3; tier >= 1 && len(elements) < 5; tier-- {
		for _, kt := range found {
			if kt.Tier == tier {
				elements = append(elements, kt.Word)
				if len(elements) == 5 {
					break
				}
			}
		}
	}
	return elements
}
