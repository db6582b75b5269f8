package extract

import "strings"

// SkillExtractor mines skill mentions from a span of text. Three passes feed
// the result: the fixed catalog (guaranteed recall on known terms), generic
// capitalized 2-4 word phrase mining, and bullet-point line contents. The
// phrase and bullet passes trade precision for recall on terms outside the
// catalog.
type SkillExtractor struct{}

func NewSkillExtractor() *SkillExtractor {
	return &SkillExtractor{}
}

// Extract returns the mined skills deduplicated case-insensitively, in
// first-seen order with the first-seen casing kept.
func (e *SkillExtractor) Extract(text string) []string {
	var skills []string
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, s)
	}

	for i, re := range skillCatalogRes {
		if re.MatchString(text) {
			add(skillCatalog[i])
		}
	}

	for _, phrase := range phraseRe.FindAllString(text, -1) {
		n := len(strings.Fields(phrase))
		if n >= 2 && n <= 4 {
			add(phrase)
		}
	}

	for _, re := range bulletRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	return skills
}
