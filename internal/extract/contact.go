// Package extract contains the field extractors that turn raw spans of
// resume or job description text into typed records. Every extractor is
// total: unmatched input yields a zero value, never an error. Absent fields
// are penalized downstream by the format scorer instead of failing here.
package extract

import (
	"regexp"
	"strings"

	"resumatch/internal/textutil"
	"resumatch/internal/types"
)

var locationFallbackRes = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z][a-z]+)`),
	regexp.MustCompile(`([A-Z]{2},\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

var nonNameWords = []string{"resume", "cv", "curriculum", "vitae"}

// ContactExtractor mines contact details out of resume text.
type ContactExtractor struct {
	tagger Tagger
}

func NewContactExtractor(tagger Tagger) *ContactExtractor {
	return &ContactExtractor{tagger: tagger}
}

// Extract pulls email, phone, links, name and location from the full text.
// Email and phone are pure regex; name and location use entity recognition
// with capitalized-token fallbacks.
func (e *ContactExtractor) Extract(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:    textutil.ExtractEmail(text),
		Phone:    textutil.ExtractPhone(text),
		Links:    textutil.ExtractLinks(text),
		Name:     e.extractName(text),
		Location: e.extractLocation(text),
	}
}

// extractName scans the first five lines for a PERSON entity, then falls back
// to the first pair of consecutive capitalized words on the first line.
func (e *ContactExtractor) extractName(text string) string {
	lines := strings.Split(text, "\n")
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		for _, ent := range e.tagger.Entities(line) {
			if ent.Label == "PERSON" {
				return ent.Text
			}
		}
	}

	words := strings.Fields(lines[0])
	for i := 0; i+1 < len(words); i++ {
		if startsUpper(words[i]) && startsUpper(words[i+1]) {
			name := words[i] + " " + words[i+1]
			if !containsAny(strings.ToLower(name), nonNameWords) {
				return name
			}
		}
	}
	return ""
}

// extractLocation takes the first GPE entity in the text, falling back to
// City-State shaped patterns.
func (e *ContactExtractor) extractLocation(text string) string {
	for _, ent := range e.tagger.Entities(text) {
		if ent.Label == "GPE" {
			return ent.Text
		}
	}
	for _, re := range locationFallbackRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func startsUpper(w string) bool {
	return w != "" && w[0] >= 'A' && w[0] <= 'Z'
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
