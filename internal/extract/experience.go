package extract

import (
	"strings"

	"resumatch/internal/textutil"
	"resumatch/internal/types"
)

var nonTitleWords = map[string]bool{
	"responsibilities": true,
	"duties":           true,
	"achievements":     true,
	"accomplishments":  true,
}

// ExperienceExtractor splits an experience section into entries. A line
// matching the job-title heuristic opens a new entry; following lines
// accumulate into its description until the next title line. Company and
// duration are then mined from each accumulated description.
type ExperienceExtractor struct{}

func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

func (e *ExperienceExtractor) Extract(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry
	var descLines []string

	flush := func() {
		if len(descLines) == 0 {
			return
		}
		if current == nil {
			current = &types.ExperienceEntry{}
		}
		current.Description = strings.Join(descLines, " ")
		entries = append(entries, *current)
		descLines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isJobTitle(line) {
			flush()
			current = &types.ExperienceEntry{Title: line}
		} else {
			descLines = append(descLines, line)
		}
	}
	flush()

	for i := range entries {
		desc := entries[i].Description
		entries[i].Company = extractCompany(desc)
		entries[i].Duration = extractDuration(desc)
	}
	return entries
}

// isJobTitle reports whether a line opens a new experience entry: either a
// curated title pattern matches, or the line is a short phrase of capitalized
// words that is not a known sub-heading.
func isJobTitle(line string) bool {
	for _, re := range jobTitleRes {
		if re.MatchString(line) {
			return true
		}
	}
	words := strings.Fields(line)
	if len(words) >= 1 && len(words) <= 5 && allStartUpper(words) {
		for _, w := range words {
			if nonTitleWords[strings.ToLower(w)] {
				return false
			}
		}
		return true
	}
	return false
}

func allStartUpper(words []string) bool {
	for _, w := range words {
		if !startsUpper(w) {
			return false
		}
	}
	return true
}

// extractCompany tries the "at X" / "with X" / "X Inc" / "X," patterns in
// order and strips any corporate suffix from the hit.
func extractCompany(desc string) string {
	for _, re := range companyRes {
		if m := re.FindStringSubmatch(desc); m != nil {
			return strings.TrimSpace(companySuffixRe.ReplaceAllString(m[1], ""))
		}
	}
	return ""
}

// extractDuration joins the first two date-shaped substrings with a dash, or
// returns a single date verbatim.
func extractDuration(desc string) string {
	dates := textutil.ExtractDates(desc)
	switch {
	case len(dates) >= 2:
		return dates[0] + " - " + dates[1]
	case len(dates) == 1:
		return dates[0]
	}
	return ""
}
