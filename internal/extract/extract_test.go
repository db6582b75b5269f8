package extract

import (
	"strings"
	"testing"

	"resumatch/internal/sections"
)

// nullTagger finds nothing, forcing every extractor onto its fallback path.
type nullTagger struct{}

func (nullTagger) Entities(string) []Entity { return nil }
func (nullTagger) Tokens(string) []Token    { return nil }

func TestContactExtract(t *testing.T) {
	text := "John Smith\njohn.smith@example.com\nAustin, TX\n+1 512-555-1234"
	got := NewContactExtractor(NewHeuristicTagger()).Extract(text)

	if got.Name != "John Smith" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Email != "john.smith@example.com" {
		t.Errorf("email = %q", got.Email)
	}
	if got.Phone != "+1 512-555-1234" {
		t.Errorf("phone = %q", got.Phone)
	}
	if got.Location != "Austin, TX" {
		t.Errorf("location = %q", got.Location)
	}
}

func TestContactExtractNameFallback(t *testing.T) {
	// With no entities the first pair of capitalized words on the first line
	// wins, unless it looks like a document label.
	e := NewContactExtractor(nullTagger{})

	got := e.Extract("Jane Doe\njane@example.com")
	if got.Name != "Jane Doe" {
		t.Errorf("name = %q", got.Name)
	}

	got = e.Extract("Curriculum Vitae\njane@example.com")
	if got.Name != "" {
		t.Errorf("expected no name, got %q", got.Name)
	}
}

func TestContactExtractEmpty(t *testing.T) {
	got := NewContactExtractor(nullTagger{}).Extract("")
	if got.Email != "" || got.Phone != "" || got.Name != "" || got.Location != "" {
		t.Errorf("expected zero contact info, got %+v", got)
	}
}

func TestSkillExtract(t *testing.T) {
	text := "Skills: Python, Go, and React\n• Team Leadership\n- Docker orchestration"
	got := NewSkillExtractor().Extract(text)

	for _, want := range []string{"Python", "Go", "React", "Docker", "Team Leadership"} {
		if !containsSkill(got, want) {
			t.Errorf("missing skill %q in %v", want, got)
		}
	}

	// Case-insensitive dedup: the catalog hit and the bullet item collapse.
	count := 0
	for _, s := range got {
		if strings.EqualFold(s, "team leadership") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one team leadership entry, got %d in %v", count, got)
	}
}

func TestSkillExtractEmpty(t *testing.T) {
	if got := NewSkillExtractor().Extract(""); len(got) != 0 {
		t.Errorf("expected no skills, got %v", got)
	}
}

func TestExperienceExtract(t *testing.T) {
	text := "Senior Software Engineer\n" +
		"Worked at Acme Corp. Jan 2020 - Mar 2023\n" +
		"Built scalable services\n" +
		"Data Analyst\n" +
		"Worked with Initech, June 2015 - May 2018"
	got := NewExperienceExtractor().Extract(text)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
	}
	if got[0].Title != "Senior Software Engineer" {
		t.Errorf("title = %q", got[0].Title)
	}
	if got[0].Company != "Acme" {
		t.Errorf("company = %q", got[0].Company)
	}
	if got[0].Duration != "Jan 2020 - Mar 2023" {
		t.Errorf("duration = %q", got[0].Duration)
	}
	if got[1].Title != "Data Analyst" {
		t.Errorf("title = %q", got[1].Title)
	}
	if got[1].Company != "Initech" {
		t.Errorf("company = %q", got[1].Company)
	}
	if got[1].Duration != "June 2015 - May 2018" {
		t.Errorf("duration = %q", got[1].Duration)
	}
}

func TestExperienceExtractTitleWithoutBody(t *testing.T) {
	// A trailing title line with no description never becomes an entry.
	got := NewExperienceExtractor().Extract("Software Engineer")
	if len(got) != 0 {
		t.Errorf("expected no entries, got %+v", got)
	}
}

func TestEducationExtract(t *testing.T) {
	text := "State University\n" +
		"Bachelor of Science in Computer Science, Jan 2014 - May 2018"
	got := NewEducationExtractor().Extract(text)

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	if got[0].Institution != "State University" {
		t.Errorf("institution = %q", got[0].Institution)
	}
	if got[0].Degree != "Bachelor" {
		t.Errorf("degree = %q", got[0].Degree)
	}
	if got[0].Field != "Computer Science" {
		t.Errorf("field = %q", got[0].Field)
	}
	if got[0].Duration != "Jan 2014 - May 2018" {
		t.Errorf("duration = %q", got[0].Duration)
	}
}

func newJobExtractor() *JobExtractor {
	return NewJobExtractor(NewHeuristicTagger(), sections.NewPositional())
}

func TestJobTitle(t *testing.T) {
	got := newJobExtractor().Title("Senior Backend Engineer\nAcme Corp is hiring.")
	if got != "Senior Backend Engineer" {
		t.Errorf("title = %q", got)
	}
}

func TestJobTitleRegexFallback(t *testing.T) {
	// Lines without title words skip the tagger path entirely.
	got := newJobExtractor().Title("Open opportunity\nApply today\nRemote work\nGreat team\nCompetitive pay\nJob Title: Staff Engineer")
	if got != "Staff Engineer" {
		t.Errorf("title = %q", got)
	}
}

func TestJobCompany(t *testing.T) {
	got := newJobExtractor().Company("Company: Initech Systems.\nWe build software.")
	if got != "Initech Systems" {
		t.Errorf("company = %q", got)
	}
}

func TestJobIndustry(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"We need a software developer for our cloud team", "technology"},
		{"Clinical nurse position at a patient care facility", "healthcare"},
		{"Investment banking analyst for fintech products", "finance"},
		{"General position with no domain hints", "default"},
		// "posITion"/"wITh" must not trigger the uppercase "IT" keyword.
		{"Transition role working with competitive positioning", "default"},
	}
	e := newJobExtractor()
	for _, tt := range tests {
		if got := e.Industry(tt.text); got != tt.want {
			t.Errorf("Industry(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestJobSkills(t *testing.T) {
	text := "Requirements: strong Go and Docker background\nNice to have: Kubernetes"
	e := newJobExtractor()

	required := e.RequiredSkills(text)
	for _, want := range []string{"Go", "Docker"} {
		if !containsSkill(required, want) {
			t.Errorf("missing required skill %q in %v", want, required)
		}
	}

	preferred := e.PreferredSkills(text)
	if !containsSkill(preferred, "Kubernetes") {
		t.Errorf("missing preferred skill in %v", preferred)
	}
}

func TestJobSkillsNoSections(t *testing.T) {
	// Without any recognizable section, required skills come from a whole-text
	// catalog scan and preferred skills stay empty.
	e := newJobExtractor()
	text := "We want Python and AWS people"

	required := e.RequiredSkills(text)
	for _, want := range []string{"Python", "AWS"} {
		if !containsSkill(required, want) {
			t.Errorf("missing %q in %v", want, required)
		}
	}
	if got := e.PreferredSkills(text); len(got) != 0 {
		t.Errorf("expected no preferred skills, got %v", got)
	}
}

func TestJobExperienceRequirements(t *testing.T) {
	got := newJobExtractor().ExperienceRequirements("5+ years of Project work required")
	if got.Years != 5 {
		t.Errorf("years = %d", got.Years)
	}
	if !containsSkill(got.Keywords, "Project") {
		t.Errorf("keywords = %v", got.Keywords)
	}
}

func TestJobEducationRequirements(t *testing.T) {
	got := newJobExtractor().EducationRequirements("Bachelor's degree in Computer Science required; Master preferred")
	if got.Level != "Master" {
		t.Errorf("level = %q", got.Level)
	}
	if len(got.Fields) != 1 || got.Fields[0] != "Computer Science" {
		t.Errorf("fields = %v", got.Fields)
	}
}

func TestJobEducationRequirementsAbsent(t *testing.T) {
	got := newJobExtractor().EducationRequirements("No formal study needed")
	if got.Level != "" || len(got.Fields) != 0 {
		t.Errorf("expected empty requirements, got %+v", got)
	}
}

func TestJobListSections(t *testing.T) {
	text := "Responsibilities:\n" +
		"• Build APIs that scale well\n" +
		"• Mentor junior engineers\n" +
		"Qualifications:\n" +
		"- 5 years experience in Go development"
	e := newJobExtractor()

	resp := e.Responsibilities(text)
	if len(resp) < 2 || resp[0] != "Build APIs that scale well" || resp[1] != "Mentor junior engineers" {
		t.Errorf("responsibilities = %v", resp)
	}

	qual := e.Qualifications(text)
	if len(qual) != 1 || qual[0] != "5 years experience in Go development" {
		t.Errorf("qualifications = %v", qual)
	}
}

func TestJobListSectionSentenceFallback(t *testing.T) {
	text := "Responsibilities: You will design distributed systems. You will review code daily."
	got := newJobExtractor().Responsibilities(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %v", got)
	}
	if got[0] != ": You will design distributed systems" {
		t.Errorf("first item = %q", got[0])
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
