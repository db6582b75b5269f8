package analyzer

import (
	"strings"
	"testing"

	"resumatch/internal/extract"
)

const sampleResume = "John Smith\n" +
	"john.smith@example.com\n" +
	"555-123-4567\n" +
	"Summary\n" +
	"Seasoned Go developer building backend systems\n" +
	"Skills\n" +
	"Python, Go, Docker\n" +
	"Experience\n" +
	"Senior Software Engineer\n" +
	"Worked at Acme Corp. Jan 2020 - Mar 2023\n" +
	"Education\n" +
	"State University\n" +
	"Bachelor of Science in Computer Science"

const sampleJob = "Senior Go Developer\n" +
	"Company: Initech Systems.\n" +
	"We need a software engineer.\n" +
	"Requirements: 3+ years of Go and Docker experience\n" +
	"Nice to have: Kubernetes"

func newTestService() *Service {
	return NewService(extract.NewHeuristicTagger(), nil)
}

func TestResumeProcess(t *testing.T) {
	resume := newTestService().Resumes.Process(sampleResume)

	if resume.Contact.Name != "John Smith" {
		t.Errorf("name = %q", resume.Contact.Name)
	}
	if resume.Contact.Email != "john.smith@example.com" {
		t.Errorf("email = %q", resume.Contact.Email)
	}
	if resume.Summary != "Seasoned Go developer building backend systems" {
		t.Errorf("summary = %q", resume.Summary)
	}

	for _, want := range []string{"Python", "Go", "Docker"} {
		found := false
		for _, s := range resume.Skills {
			if strings.EqualFold(s, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing skill %q in %v", want, resume.Skills)
		}
	}

	if len(resume.Experience) != 1 {
		t.Fatalf("experience = %+v", resume.Experience)
	}
	if resume.Experience[0].Title != "Senior Software Engineer" {
		t.Errorf("title = %q", resume.Experience[0].Title)
	}
	if resume.Experience[0].Duration != "Jan 2020 - Mar 2023" {
		t.Errorf("duration = %q", resume.Experience[0].Duration)
	}

	if len(resume.Education) != 1 || resume.Education[0].Institution != "State University" {
		t.Fatalf("education = %+v", resume.Education)
	}
	if resume.Education[0].Degree != "Bachelor" {
		t.Errorf("degree = %q", resume.Education[0].Degree)
	}

	for _, name := range []string{"summary", "skills", "experience", "education"} {
		if _, ok := resume.Sections[name]; !ok {
			t.Errorf("missing section %q in %v", name, resume.Sections)
		}
	}
}

func TestResumeSummaryFromBeginning(t *testing.T) {
	// Without a summary section the leading lines up to the first header
	// serve as the summary.
	text := "Jane Doe\nBuilds distributed systems in Go\nSkills\nGo"
	resume := newTestService().Resumes.Process(text)

	if resume.Summary != "Jane Doe Builds distributed systems in Go" {
		t.Errorf("summary = %q", resume.Summary)
	}
}

func TestDedupeNormalized(t *testing.T) {
	got := dedupeNormalized([]string{"JS", "JavaScript", "Go", "Go Programming"})
	want := []string{"JS", "Go"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestJobAnalyze(t *testing.T) {
	jd := newTestService().Jobs.Analyze(sampleJob)

	if jd.JobTitle != "Senior Go Developer" {
		t.Errorf("title = %q", jd.JobTitle)
	}
	if jd.Company != "Initech Systems" {
		t.Errorf("company = %q", jd.Company)
	}
	if jd.Industry != "technology" {
		t.Errorf("industry = %q", jd.Industry)
	}
	if jd.Experience.Years != 3 {
		t.Errorf("years = %d", jd.Experience.Years)
	}

	found := false
	for _, s := range jd.RequiredSkills {
		if strings.EqualFold(s, "Go") {
			found = true
		}
	}
	if !found {
		t.Errorf("required skills = %v", jd.RequiredSkills)
	}
}

func TestServiceAnalyze(t *testing.T) {
	result := newTestService().Analyze(sampleResume, sampleJob)

	if result.Scores.OverallScore <= 0 || result.Scores.OverallScore > 100 {
		t.Errorf("overall = %v", result.Scores.OverallScore)
	}
	if result.Scores.Industry != "technology" {
		t.Errorf("industry = %q", result.Scores.Industry)
	}
	if len(result.Scores.Categories) != 4 {
		t.Errorf("categories = %v", result.Scores.Categories)
	}
	for i := 1; i < len(result.Recommendations); i++ {
		if result.Recommendations[i].Priority < result.Recommendations[i-1].Priority {
			t.Errorf("recommendations out of order: %+v", result.Recommendations)
		}
	}
}

func TestServiceAnalyzeEmptyInput(t *testing.T) {
	// The pipeline is total: empty documents produce a zero-ish result, not a
	// failure.
	result := newTestService().Analyze("", "")
	if result.Scores.OverallScore < 0 || result.Scores.OverallScore > 100 {
		t.Errorf("overall = %v", result.Scores.OverallScore)
	}
	if result.Scores.Industry != "default" {
		t.Errorf("industry = %q", result.Scores.Industry)
	}
}
