package extract

import (
	"regexp"
	"strconv"
	"strings"

	"resumatch/internal/sections"
	"resumatch/internal/types"
)

var companyIndicators = []string{"company:", "organization:", "at", "with", "join"}

var nonCompanyWords = []string{"job description", "position", "role", "title"}

var experienceTokenWords = []string{"experience", "work", "project", "role"}

// fieldIndicatorRe is case-sensitive on the captured words so the field stops
// at the first lowercase word instead of swallowing the rest of the sentence.
var fieldIndicatorRe = regexp.MustCompile(`(?:in|of|related to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

var educationLevels = []string{"High School", "Associate", "Bachelor", "Master", "PhD", "Doctorate"}

var sentenceSplitRe = regexp.MustCompile(`\.\s+`)

// JobExtractor mines a structured job description out of posting text. The
// skills, responsibilities and qualifications extractors route their input
// through the section segmenter using role-specific header synonym sets.
type JobExtractor struct {
	tagger Tagger
	seg    sections.Segmenter
	skills *SkillExtractor
}

func NewJobExtractor(tagger Tagger, seg sections.Segmenter) *JobExtractor {
	return &JobExtractor{tagger: tagger, seg: seg, skills: NewSkillExtractor()}
}

// Title scans the first five lines for a capitalized noun on a line carrying
// a common title word, then falls back to the regex templates.
func (e *JobExtractor) Title(text string) string {
	lines := strings.Split(text, "\n")
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		lower := strings.ToLower(line)
		if !containsAny(lower, titleWords) {
			continue
		}
		for _, tok := range e.tagger.Tokens(line) {
			if strings.HasPrefix(tok.Tag, "NN") && startsUpper(tok.Text) {
				return strings.TrimSpace(line)
			}
		}
	}
	for _, re := range jobTitleFallbackRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[len(m)-1])
		}
	}
	return ""
}

// Company tries indicator phrases, then a consecutive-capitalized-words scan
// over the first three lines.
func (e *JobExtractor) Company(text string) string {
	for _, ind := range companyIndicators {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(ind) + `\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	for _, line := range lines {
		words := strings.Fields(line)
		for i := 0; i+1 < len(words); i++ {
			if startsUpper(words[i]) && startsUpper(words[i+1]) {
				candidate := words[i] + " " + words[i+1]
				if !containsAny(strings.ToLower(candidate), nonCompanyWords) {
					return candidate
				}
			}
		}
	}
	return ""
}

// Industry votes the text against the keyword table. The first industry in
// declaration order with any keyword hit wins; no hit yields "default".
// Keywords match verbatim against the lowercased text, so an uppercase
// entry like "IT" never fires on lowercase prose.
func (e *JobExtractor) Industry(text string) string {
	lower := strings.ToLower(text)
	for _, industry := range industryOrder {
		for _, kw := range industryKeywords[industry] {
			if strings.Contains(lower, kw) {
				return industry
			}
		}
	}
	return "default"
}

// RequiredSkills extracts skills from the required-skills section, or scans
// the whole text against the catalog when no such section exists.
func (e *JobExtractor) RequiredSkills(text string) []string {
	if span, ok := sections.FirstSpan(e.seg, text, requiredSkillHeaders); ok {
		return e.skills.Extract(span)
	}
	var out []string
	for i, re := range skillCatalogRes {
		if re.MatchString(text) {
			out = append(out, skillCatalog[i])
		}
	}
	return out
}

// PreferredSkills extracts skills from the preferred-skills section; absent
// section means no preferred skills.
func (e *JobExtractor) PreferredSkills(text string) []string {
	if span, ok := sections.FirstSpan(e.seg, text, preferredSkillHeaders); ok {
		return e.skills.Extract(span)
	}
	return nil
}

// ExperienceRequirements parses the first "N years" token and collects
// capitalized experience-related noun tokens as keywords.
func (e *JobExtractor) ExperienceRequirements(text string) types.ExperienceRequirements {
	req := types.ExperienceRequirements{Keywords: []string{}}
	if m := yearsRequiredRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.Years = n
		}
	}
	for _, tok := range e.tagger.Tokens(text) {
		if strings.HasPrefix(tok.Tag, "NN") && startsUpper(tok.Text) &&
			containsAny(strings.ToLower(tok.Text), experienceTokenWords) {
			req.Keywords = append(req.Keywords, tok.Text)
		}
	}
	return req
}

// EducationRequirements reports the highest degree level mentioned plus any
// "in/of X" fields of study.
func (e *JobExtractor) EducationRequirements(text string) types.EducationRequirements {
	req := types.EducationRequirements{Fields: []string{}}

	mentions := educationLevelRe.FindAllString(text, -1)
	if len(mentions) > 0 {
	levels:
		for i := len(educationLevels) - 1; i >= 0; i-- {
			for _, m := range mentions {
				if strings.Contains(strings.ToLower(m), strings.ToLower(educationLevels[i])) {
					req.Level = educationLevels[i]
					break levels
				}
			}
		}
	}

	seen := make(map[string]bool)
	for _, m := range fieldIndicatorRe.FindAllStringSubmatch(text, -1) {
		field := strings.TrimSpace(m[1])
		if field != "" && !seen[field] {
			seen[field] = true
			req.Fields = append(req.Fields, field)
		}
	}
	return req
}

// Responsibilities pulls bullet items out of the responsibilities section,
// falling back to sentence splitting when the section has no bullets.
func (e *JobExtractor) Responsibilities(text string) []string {
	return e.listSection(text, responsibilityHeaders)
}

// Qualifications pulls bullet items out of the qualifications section,
// falling back to sentence splitting when the section has no bullets.
func (e *JobExtractor) Qualifications(text string) []string {
	return e.listSection(text, qualificationHeaders)
}

func (e *JobExtractor) listSection(text string, headers []string) []string {
	span, ok := sections.FirstSpan(e.seg, text, headers)
	if !ok {
		return nil
	}

	var items []string
	for _, re := range bulletRes {
		for _, m := range re.FindAllStringSubmatch(span, -1) {
			if item := strings.TrimSpace(m[1]); len(item) > 10 {
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, s := range sentenceSplitRe.Split(span, -1) {
		if s = strings.TrimSpace(s); len(s) > 10 {
			items = append(items, s)
		}
	}
	return items
}
