package extract

import (
	"strings"

	"resumatch/internal/types"
)

// EducationExtractor splits an education section into entries, mirroring the
// experience extractor with an institution-line heuristic in place of the
// job-title one. Degree, field of study, and duration are mined from each
// entry's accumulated description.
type EducationExtractor struct{}

func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

func (e *EducationExtractor) Extract(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	var current *types.EducationEntry
	var descLines []string

	flush := func() {
		if len(descLines) == 0 {
			return
		}
		if current == nil {
			current = &types.EducationEntry{}
		}
		desc := strings.Join(descLines, " ")
		current.Degree = extractDegree(desc)
		current.Field = extractField(desc)
		current.Duration = extractDuration(desc)
		entries = append(entries, *current)
		descLines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isInstitution(line) {
			flush()
			current = &types.EducationEntry{Institution: line}
		} else {
			descLines = append(descLines, line)
		}
	}
	flush()
	return entries
}

// isInstitution reports whether a line opens a new education entry.
func isInstitution(line string) bool {
	for _, re := range institutionRes {
		if re.MatchString(line) {
			return true
		}
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 6 && allStartUpper(words)
}

func extractDegree(desc string) string {
	for _, re := range degreeRes {
		if m := re.FindString(desc); m != "" {
			return m
		}
	}
	return ""
}

func extractField(desc string) string {
	for _, re := range fieldRes {
		if m := re.FindStringSubmatch(desc); m != nil {
			return m[1]
		}
	}
	return ""
}
