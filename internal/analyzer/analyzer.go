// Package analyzer composes the normalizer, segmenter and field extractors
// into the two document structurers, and runs the full scoring pipeline. Each
// call builds fresh output records; the analyzers themselves hold only
// read-only configuration and are safe for concurrent use.
package analyzer

import (
	"regexp"
	"strings"

	"resumatch/internal/benchmark"
	"resumatch/internal/extract"
	"resumatch/internal/recommend"
	"resumatch/internal/scorer"
	"resumatch/internal/sections"
	"resumatch/internal/textutil"
	"resumatch/internal/types"
)

var summaryHeaderRe = regexp.MustCompile(`(?i)(summary|professional summary|career summary|about me|profile|objective|personal statement)\s*:?\s*`)

// ResumeAnalyzer structures raw resume text.
type ResumeAnalyzer struct {
	seg        sections.Segmenter
	contact    *extract.ContactExtractor
	skills     *extract.SkillExtractor
	experience *extract.ExperienceExtractor
	education  *extract.EducationExtractor
}

func NewResumeAnalyzer(tagger extract.Tagger, seg sections.Segmenter) *ResumeAnalyzer {
	return &ResumeAnalyzer{
		seg:        seg,
		contact:    extract.NewContactExtractor(tagger),
		skills:     extract.NewSkillExtractor(),
		experience: extract.NewExperienceExtractor(),
		education:  extract.NewEducationExtractor(),
	}
}

// Process normalizes the raw text, segments it, and runs every field
// extractor over its section. Skills are mined from the skills, experience
// and summary sections combined.
func (a *ResumeAnalyzer) Process(raw string) types.StructuredResume {
	cleaned := textutil.Normalize(raw)
	secs := a.seg.Segment(cleaned, sections.ResumeHeaders)

	skillsText := strings.Join([]string{secs["skills"], secs["experience"], secs["summary"]}, " ")

	summary := stripSummaryHeader(secs["summary"])
	if summary == "" {
		summary = a.summaryFromBeginning(cleaned)
	}

	return types.StructuredResume{
		Contact:    a.contact.Extract(cleaned),
		Skills:     dedupeNormalized(a.skills.Extract(skillsText)),
		Experience: a.experience.Extract(secs["experience"]),
		Education:  a.education.Extract(secs["education"]),
		Summary:    summary,
		Sections:   secs,
		RawText:    cleaned,
	}
}

func stripSummaryHeader(text string) string {
	return strings.TrimSpace(summaryHeaderRe.ReplaceAllString(text, ""))
}

// summaryFromBeginning collects up to five leading lines, stopping at the
// first recognizable section header, for resumes without a summary section.
func (a *ResumeAnalyzer) summaryFromBeginning(cleaned string) string {
	var collected []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		collected = append(collected, line)
		if len(collected) >= 5 {
			break
		}
	}
	return strings.Join(collected, " ")
}

func isSectionHeader(line string) bool {
	for _, hp := range sections.ResumeHeaders {
		if hp.Pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// dedupeNormalized collapses skill variants that normalize to the same name,
// keeping the first-seen surface form.
func dedupeNormalized(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := textutil.NormalizeSkillName(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// JobAnalyzer structures raw job description text.
type JobAnalyzer struct {
	ex *extract.JobExtractor
}

func NewJobAnalyzer(tagger extract.Tagger, seg sections.Segmenter) *JobAnalyzer {
	return &JobAnalyzer{ex: extract.NewJobExtractor(tagger, seg)}
}

func (a *JobAnalyzer) Analyze(raw string) types.StructuredJobDescription {
	cleaned := textutil.Normalize(raw)

	return types.StructuredJobDescription{
		JobTitle:         a.ex.Title(cleaned),
		Company:          a.ex.Company(cleaned),
		Industry:         a.ex.Industry(cleaned),
		RequiredSkills:   a.ex.RequiredSkills(cleaned),
		PreferredSkills:  a.ex.PreferredSkills(cleaned),
		Experience:       a.ex.ExperienceRequirements(cleaned),
		Education:        a.ex.EducationRequirements(cleaned),
		Responsibilities: a.ex.Responsibilities(cleaned),
		Qualifications:   a.ex.Qualifications(cleaned),
		RawText:          cleaned,
	}
}

// Service runs the end-to-end pipeline: structure both documents, score the
// pair, and generate recommendations.
type Service struct {
	Resumes *ResumeAnalyzer
	Jobs    *JobAnalyzer
	scorer  *scorer.Scorer
	recs    *recommend.Generator
}

// NewService wires the full pipeline. A nil tagger selects the prose NLP
// tagger; a nil provider selects the static benchmark tables.
func NewService(tagger extract.Tagger, bench benchmark.Provider) *Service {
	if tagger == nil {
		tagger = extract.NewProseTagger()
	}
	seg := sections.NewPositional()
	return &Service{
		Resumes: NewResumeAnalyzer(tagger, seg),
		Jobs:    NewJobAnalyzer(tagger, seg),
		scorer:  scorer.New(bench),
		recs:    recommend.New(),
	}
}

func (s *Service) Analyze(resumeText, jobText string) types.AnalysisResult {
	resume := s.Resumes.Process(resumeText)
	jd := s.Jobs.Analyze(jobText)
	scores := s.scorer.Score(resume, jd)

	return types.AnalysisResult{
		Resume:          resume,
		JobDescription:  jd,
		Scores:          scores,
		Recommendations: s.recs.Generate(resume, jd, scores),
	}
}
