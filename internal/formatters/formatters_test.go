package formatters

import (
	"strings"
	"testing"

	"resumatch/internal/types"
)

func sampleAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		Scores: types.ScoreBreakdown{
			OverallScore: 72.5,
			Industry:     "technology",
			Categories: map[string]types.CategoryScore{
				"skills":     {Score: 80, Weight: 0.45},
				"experience": {Score: 70, Weight: 0.35},
				"education":  {Score: 60, Weight: 0.15},
				"format":     {Score: 90, Weight: 0.05},
			},
			ConfidenceInterval: types.ConfidenceInterval{Lower: 65, Upper: 80},
			Benchmark:          types.Benchmark{Industry: "technology", Average: 75, Top: 90, Percentile: 45},
		},
		Recommendations: []types.Recommendation{
			{Title: "Add Missing Required Skills", Description: "Your resume is missing key skills.",
				Suggestions: []string{"Add go to your skills section"}, Priority: 1, Category: "skills_gap"},
		},
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "json")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}
	if !strings.Contains(out, `"overallScore": 72.5`) {
		t.Errorf("json output missing overall score:\n%s", out)
	}
}

func TestAnalysisTextFormat(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "text")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}
	for _, want := range []string{
		"Overall Score: 72.5/100",
		"Industry: technology",
		"skills",
		"Add Missing Required Skills",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}

	// Categories render in the fixed order.
	if strings.Index(out, "skills") > strings.Index(out, "education") {
		t.Error("categories out of order")
	}
}

func TestAnalysisMarkdownFormat(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleAnalysis(), "markdown")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}
	for _, want := range []string{
		"# ATS Compatibility Score",
		"| skills | 80.0 | 45% |",
		"### 1. Add Missing Required Skills",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestResumeFormatters(t *testing.T) {
	resume := types.StructuredResume{
		Contact: types.ContactInfo{Name: "John Smith", Email: "john@example.com"},
		Skills:  []string{"Go", "Docker"},
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Duration: "2020 - 2023"},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "Bachelor", Field: "Computer Science"},
		},
	}

	text, err := GlobalRegistry.Format(resume, "text")
	if err != nil {
		t.Fatalf("Format(text) = %v", err)
	}
	if !strings.Contains(text, "Engineer at Acme (2020 - 2023)") {
		t.Errorf("text output missing experience line:\n%s", text)
	}

	md, err := GlobalRegistry.Format(resume, "markdown")
	if err != nil {
		t.Fatalf("Format(markdown) = %v", err)
	}
	if !strings.Contains(md, "### State University") {
		t.Errorf("markdown output missing education heading:\n%s", md)
	}
}

func TestJobFormatters(t *testing.T) {
	jd := types.StructuredJobDescription{
		JobTitle:       "Backend Engineer",
		Industry:       "technology",
		RequiredSkills: []string{"Go"},
		Experience:     types.ExperienceRequirements{Years: 5},
		Education:      types.EducationRequirements{Level: "Bachelor"},
	}

	text, err := GlobalRegistry.Format(jd, "text")
	if err != nil {
		t.Fatalf("Format(text) = %v", err)
	}
	for _, want := range []string{"Title: Backend Engineer", "Required Experience: 5 years", "Level: Bachelor"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleAnalysis(), "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
