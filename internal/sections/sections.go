// Package sections locates named sections inside raw document text.
//
// The positional strategy implemented here is deliberately naive: the first
// occurrence of a header pattern anywhere in the text starts that section,
// whether or not it is a true structural heading. Callers that need stronger
// segmentation can substitute another Segmenter without touching extractors.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// HeaderPattern names one section and the pattern that opens it.
// Patterns are kept in a slice, not a map: when two headers match at the same
// position, the one declared first wins.
type HeaderPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Segmenter splits document text into named section spans.
type Segmenter interface {
	Segment(text string, patterns []HeaderPattern) map[string]string
}

// Positional is the first-occurrence, position-ordered Segmenter.
type Positional struct{}

// NewPositional returns the default segmentation strategy.
func NewPositional() *Positional {
	return &Positional{}
}

type located struct {
	name  string
	start int
	order int
	re    *regexp.Regexp
}

// Segment finds the first match of each header pattern, orders the discovered
// sections by match position, and assigns each section the half-open span from
// its header to the next discovered header (or end of text). The header phrase
// itself is stripped from the returned content. Sections whose pattern never
// matches are absent from the result.
func (p *Positional) Segment(text string, patterns []HeaderPattern) map[string]string {
	var found []located
	for i, hp := range patterns {
		if loc := hp.Pattern.FindStringIndex(text); loc != nil {
			found = append(found, located{name: hp.Name, start: loc[0], order: i, re: hp.Pattern})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].order < found[j].order
	})

	result := make(map[string]string, len(found))
	for i, sec := range found {
		end := len(text)
		if i < len(found)-1 {
			end = found[i+1].start
		}
		content := strings.TrimSpace(text[sec.start:end])
		content = strings.TrimSpace(sec.re.ReplaceAllString(content, ""))
		result[sec.name] = content
	}
	return result
}

// ResumeHeaders are the section patterns recognized in resume text.
var ResumeHeaders = []HeaderPattern{
	{"skills", regexp.MustCompile(`(?i)(skills|technical skills|core competencies|expertise|proficiencies|technologies|tools|languages|certifications)`)},
	{"experience", regexp.MustCompile(`(?i)(work experience|professional experience|employment history|work history|career|experience|work)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic background|qualifications|academic qualifications|education background|academic)`)},
	{"summary", regexp.MustCompile(`(?i)(summary|professional summary|career summary|about me|profile|objective|personal statement)`)},
	{"contact", regexp.MustCompile(`(?i)(contact|contact information|contact details|personal details|personal information)`)},
}

// JobHeaders are the section patterns recognized in job description text.
var JobHeaders = []HeaderPattern{
	{"responsibilities", regexp.MustCompile(`(?i)(responsibilities|duties|what you'll do|role|job duties|key responsibilities)`)},
	{"qualifications", regexp.MustCompile(`(?i)(qualifications|requirements|what we're looking for|skills required|candidate profile)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|work experience|professional experience|required experience)`)},
	{"education", regexp.MustCompile(`(?i)(education|educational requirements|academic|degree|qualification)`)},
	{"skills", regexp.MustCompile(`(?i)(skills|technical skills|required skills|preferred skills|technologies)`)},
}

// HeaderSynonyms builds one whole-word pattern per synonym, used by the
// job-description extractors that segment by role-specific phrase sets. Each
// synonym is its own section so a later synonym terminates the span opened by
// an earlier one.
func HeaderSynonyms(synonyms []string) []HeaderPattern {
	patterns := make([]HeaderPattern, len(synonyms))
	for i, s := range synonyms {
		patterns[i] = HeaderPattern{
			Name:    s,
			Pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`),
		}
	}
	return patterns
}

// FirstSpan returns the span opened by whichever synonym occurs earliest in
// the text, or "" and false when none of the synonyms occur at all.
func FirstSpan(seg Segmenter, text string, synonyms []string) (string, bool) {
	patterns := HeaderSynonyms(synonyms)
	spans := seg.Segment(text, patterns)

	earliest, pos := "", -1
	for _, hp := range patterns {
		if loc := hp.Pattern.FindStringIndex(text); loc != nil && (pos == -1 || loc[0] < pos) {
			earliest, pos = hp.Name, loc[0]
		}
	}
	if pos == -1 {
		return "", false
	}
	return spans[earliest], true
}
