// Package textutil provides text canonicalization and small regex extractors
// shared by every stage of the analysis pipeline. All functions are pure and
// total: bad input degrades to an empty result, never an error.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	disallowedRe      = regexp.MustCompile(`[^\w\s.,!?;:\-()\[\]{}'"@/#$%^&*+=~` + "`" + `<>\x{2022}]`)
	bulletGlyphRe     = regexp.MustCompile(`[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}]`)
	singleQuoteRe     = regexp.MustCompile(`[\x{2018}\x{2019}]`)
	doubleQuoteRe     = regexp.MustCompile(`[\x{201C}\x{201D}]`)
	dashRe            = regexp.MustCompile(`[\x{2013}\x{2014}]`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}`)
	urlRe   = regexp.MustCompile(`https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+[/\w.-]*\??[/\w.\-=&%]*`)
)

// datePatterns are the recognized date shapes for duration mining.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`\d{2,4}[/-]\d{1,2}[/-]\d{1,2}`),
	regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),
	regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`),
}

// Normalize canonicalizes raw document text: Unicode NFKD decomposition,
// horizontal whitespace collapsed to single spaces, characters outside the
// punctuation allow-list stripped, bullet glyphs rewritten to the canonical
// marker, curly quotes and long dashes replaced with ASCII, blank lines
// dropped. Newlines are preserved so line-oriented extractors keep working.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := norm.NFKD.String(raw)
	text = bulletGlyphRe.ReplaceAllString(text, "•")
	text = singleQuoteRe.ReplaceAllString(text, "'")
	text = doubleQuoteRe.ReplaceAllString(text, `"`)
	text = dashRe.ReplaceAllString(text, "-")
	text = disallowedRe.ReplaceAllString(text, "")
	text = horizontalSpaceRe.ReplaceAllString(text, " ")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// ExtractEmail returns the first email address in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number in text, or "".
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}

// ExtractLinks returns every URL in text.
func ExtractLinks(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// ExtractDates returns every date-shaped substring in text, grouped by pattern.
func ExtractDates(text string) []string {
	var dates []string
	for _, re := range datePatterns {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	return dates
}

var (
	skillSuffixRe  = regexp.MustCompile(`\s+(programming|language|development|software|framework|library)$`)
	nonWordRe      = regexp.MustCompile(`[^\w\s]`)
	multiSpaceRe   = regexp.MustCompile(`\s+`)
	skillShorthand = map[string]string{
		"js":  "javascript",
		"ts":  "typescript",
		"py":  "python",
		"rb":  "ruby",
		"cs":  "c#",
		"cpp": "c++",
		"db":  "database",
		"ui":  "user interface",
		"ux":  "user experience",
		"ml":  "machine learning",
		"ai":  "artificial intelligence",
		"nlp": "natural language processing",
		"cv":  "computer vision",
	}
)

// NormalizeSkillName lowercases a skill, drops generic suffixes, expands the
// common abbreviations, and strips punctuation so variants match each other.
func NormalizeSkillName(skill string) string {
	s := strings.ToLower(skill)
	s = skillSuffixRe.ReplaceAllString(s, "")
	if full, ok := skillShorthand[s]; ok {
		s = full
	}
	s = nonWordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
