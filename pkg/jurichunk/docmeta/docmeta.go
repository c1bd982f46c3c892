// Package docmeta extracts document-level bibliographic metadata: type,
// title, date, parties, location, project name and a deterministic
// document id. It operates once per document, independently of chunking.
package docmeta

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cognicore/jurichunk/pkg/jurichunk/registry"
	"github.com/cognicore/jurichunk/pkg/jurichunk/textnorm"
)

// sampleRunes is how much of the document head the extractor inspects.
const sampleRunes = 5000

// FallbackTitle is used when no title heuristic matched.
const FallbackTitle = "DOCUMENT JURIDIQUE"

// Metadata is the document-level identity block.
type Metadata struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Date     string            `json:"date"`
	Type     registry.DocType  `json:"type"`
	Parties  map[string]string `json:"parties"`
	Location string            `json:"location"`
	Project  string            `json:"project"`
}

// Extractor derives Metadata from raw document text.
type Extractor struct {
	reg *registry.Registry
	now func() time.Time
}

// NewExtractor creates an Extractor over the given registry.
func NewExtractor(reg *registry.Registry) *Extractor {
	return &Extractor{reg: reg, now: time.Now}
}

// Extract runs all metadata heuristics over the head of the document.
func (e *Extractor) Extract(text string) Metadata {
	sample := headSample(text)

	docType := e.detectType(sample)
	title := e.extractTitle(sample, docType)
	date := e.extractDate(sample)

	return Metadata{
		ID:       e.GenerateID(text, title, date),
		Title:    title,
		Date:     date,
		Type:     docType,
		Parties:  e.extractParties(sample, docType),
		Location: e.extractLocation(sample),
		Project:  e.extractProject(sample),
	}
}

func headSample(text string) string {
	if utf8.RuneCountInString(text) <= sampleRunes {
		return text
	}
	return string([]rune(text)[:sampleRunes])
}

// detectType scores every document type signature: title pattern hits
// weigh x3, any matching party pattern adds 2. Highest score wins;
// contrat_general when nothing scored.
func (e *Extractor) detectType(sample string) registry.DocType {
	best := registry.DocContratGeneral
	bestScore := 0
	for _, def := range e.reg.DocTypes {
		score := 0
		for _, pat := range def.TitlePatterns {
			if pat.MatchString(sample) {
				score += 3
			}
		}
		for _, party := range def.Parties {
			matched := false
			for _, pat := range party.Patterns {
				if pat.MatchString(sample) {
					matched = true
					break
				}
			}
			if matched {
				score += 2
				break
			}
		}
		if score > bestScore {
			best = def.Type
			bestScore = score
		}
	}
	return best
}

// extractTitle takes the full line around the first type-specific title
// match, uppercased and whitespace-normalized; else the first all-caps
// line; else the literal fallback.
func (e *Extractor) extractTitle(sample string, docType registry.DocType) string {
	for _, def := range e.reg.DocTypes {
		if def.Type != docType {
			continue
		}
		for _, pat := range def.TitlePatterns {
			loc := pat.FindStringIndex(sample)
			if loc == nil {
				continue
			}
			line := lineAround(sample, loc[0])
			if line != "" {
				return truncateRunes(strings.ToUpper(textnorm.Normalize(line)), 100)
			}
		}
	}
	if m := e.reg.GenericTitlePattern.FindStringSubmatch(sample); m != nil {
		return truncateRunes(textnorm.Normalize(m[1]), 100)
	}
	return FallbackTitle
}

func lineAround(s string, pos int) string {
	start := strings.LastIndexByte(s[:pos], '\n') + 1
	end := strings.IndexByte(s[pos:], '\n')
	if end < 0 {
		end = len(s)
	} else {
		end += pos
	}
	return strings.TrimSpace(s[start:end])
}

// extractDate tries the contextual "signed/dated" patterns in priority
// order, then the first bare date anywhere in the sample, and finally
// falls back to the current date. Lossy recovery is deliberate: a
// malformed date never propagates an error.
func (e *Extractor) extractDate(sample string) string {
	for _, pat := range e.reg.ContextDatePatterns {
		if m := pat.FindStringSubmatch(sample); m != nil {
			if date, ok := normalizeDate(m[1]); ok {
				return date
			}
		}
	}
	for _, pat := range e.reg.BareDatePatterns {
		if m := pat.FindString(sample); m != "" {
			if date, ok := normalizeDate(m); ok {
				return date
			}
		}
	}
	return e.now().Format("02/01/2006")
}

var frenchMonths = map[string]int{
	"janvier": 1, "février": 2, "mars": 3, "avril": 4,
	"mai": 5, "juin": 6, "juillet": 7, "août": 8,
	"septembre": 9, "octobre": 10, "novembre": 11, "décembre": 12,
}

// normalizeDate turns a French textual or numeric date into DD/MM/YYYY.
func normalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.ContainsAny(s, "/-.") {
		parts := strings.FieldsFunc(s, func(r rune) bool {
			return r == '/' || r == '-' || r == '.'
		})
		if len(parts) != 3 {
			return "", false
		}
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return "", false
		}
		return formatDate(day, month, expandYear(year))
	}

	parts := strings.Fields(s)
	if len(parts) != 3 {
		return "", false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, ok := frenchMonths[parts[1]]
	if !ok {
		return "", false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}
	return formatDate(day, month, expandYear(year))
}

// expandYear resolves two-digit years: below 50 is 20xx, else 19xx.
func expandYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < 50 {
		return 2000 + year
	}
	return 1900 + year
}

func formatDate(day, month, year int) (string, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year), true
}

// extractParties applies the type-specific role patterns, first match per
// role. Values are trimmed to 80 runes with trailing punctuation removed.
// VEFA contracts default an absent reservataire to the placeholder; when
// no role matched at all a generic two-role pattern is tried.
func (e *Extractor) extractParties(sample string, docType registry.DocType) map[string]string {
	parties := make(map[string]string)
	for _, def := range e.reg.DocTypes {
		if def.Type != docType {
			continue
		}
		for _, party := range def.Parties {
			for _, pat := range party.Patterns {
				if m := pat.FindStringSubmatch(sample); m != nil {
					parties[party.Role] = cleanParty(m[1])
					break
				}
			}
		}
	}
	if docType == registry.DocContratReservationVEFA {
		if _, ok := parties["reservataire"]; !ok {
			parties["reservataire"] = "[Réservataire]"
		}
	}
	if len(parties) == 0 {
		if m := e.reg.GenericParties.FindStringSubmatch(sample); m != nil {
			parties["partie_1"] = cleanParty(m[1])
			parties["partie_2"] = cleanParty(m[2])
		}
	}
	return parties
}

func cleanParty(s string) string {
	s = strings.TrimSpace(s)
	s = truncateRunes(s, 80)
	return strings.TrimRight(s, " .,;:-")
}

// extractLocation returns the first locality match that is not a company
// form prefix.
func (e *Extractor) extractLocation(sample string) string {
	for _, pat := range e.reg.LocationPatterns {
		for _, m := range pat.FindAllStringSubmatch(sample, -1) {
			candidate := strings.TrimSpace(m[1])
			if candidate == "" || isCompanyForm(candidate, e.reg.CompanyForms) {
				continue
			}
			return candidate
		}
	}
	return ""
}

func isCompanyForm(s string, forms []string) bool {
	first := strings.ToUpper(strings.Fields(s)[0])
	for _, form := range forms {
		if first == form {
			return true
		}
	}
	return false
}

// extractProject returns the first guillemet-quoted phrase following a
// project keyword.
func (e *Extractor) extractProject(sample string) string {
	if m := e.reg.ProjectPattern.FindStringSubmatch(sample); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// GenerateID synthesizes the 17-character document id: a 14-digit
// timestamp from the document's own date at noon (current time when the
// date does not parse) plus a 3-character uppercase hash of text+title.
// The id is a pure function of (text, title, date).
func (e *Extractor) GenerateID(text, title, date string) string {
	stamp := e.now()
	if day, month, year, ok := splitDate(date); ok {
		stamp = time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	}
	sum := md5.Sum([]byte(text + title))
	hash := strings.ToUpper(fmt.Sprintf("%x", sum))[:3]
	return stamp.Format("20060102150405") + hash
}

func splitDate(date string) (day, month, year int, ok bool) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
