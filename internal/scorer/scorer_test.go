package scorer

import (
	"math"
	"testing"

	"resumatch/internal/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDurationYears(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2 years", 2},
		{"6 months", 0.5},
		{"3 yrs 6 months", 3},
		{"18 Months", 1.5},
		{"5 YRS", 5},
		{"Jan 2020 - Mar 2023", 0},
		{"for a while", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := DurationYears(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("DurationYears(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelSufficient(t *testing.T) {
	tests := []struct {
		candidate string
		required  string
		want      bool
	}{
		{"master", "bachelor", true},
		{"bachelor", "master", false},
		{"bachelor", "bachelor", true},
		{"doctorate", "high school", true},
		{"", "bachelor", false},
		{"bachelor", "", false},
		{"wizard", "bachelor", false},
		{"bachelor", "wizard", false},
	}
	for _, tt := range tests {
		if got := levelSufficient(tt.candidate, tt.required); got != tt.want {
			t.Errorf("levelSufficient(%q, %q) = %v, want %v", tt.candidate, tt.required, got, tt.want)
		}
	}
}

func TestDegreeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bachelor", "bachelor"},
		{"B.S.", "bachelor"},
		{"BSc", "bachelor"},
		{"Master", "master"},
		{"M.S.", "master"},
		{"PhD", "phd"},
		{"Doctorate", "doctorate"},
		{"Associate", "associate"},
		{"High School Diploma", "high school"},
		{"Certificate", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DegreeLevel(tt.in); got != tt.want {
			t.Errorf("DegreeLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSkillsScoreInvariantToOrderAndCase(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{Skills: []string{"Go", "Docker", "Kubernetes"}}

	a := s.scoreSkills(resume, types.StructuredJobDescription{
		RequiredSkills: []string{"go", "docker"},
	})
	b := s.scoreSkills(resume, types.StructuredJobDescription{
		RequiredSkills: []string{"DOCKER", "Go"},
	})
	if !almostEqual(a, b) {
		t.Errorf("skills score changed with ordering and case: %v vs %v", a, b)
	}
	if !almostEqual(a, 1.0) {
		t.Errorf("expected full skills score, got %v", a)
	}
}

func TestSkillsScoreEmptyRequirements(t *testing.T) {
	s := New(nil)
	got := s.scoreSkills(types.StructuredResume{}, types.StructuredJobDescription{})
	if !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0 with no requirements, got %v", got)
	}
}

func TestSkillsScorePartialMatch(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{Skills: []string{"Go"}}
	jd := types.StructuredJobDescription{
		RequiredSkills:  []string{"Go", "Rust"},
		PreferredSkills: []string{"Docker"},
	}
	// 0.7 * 1/2 + 0.3 * 0
	if got := s.scoreSkills(resume, jd); !almostEqual(got, 0.35) {
		t.Errorf("skills score = %v, want 0.35", got)
	}
}

func TestExperienceScore(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Duration: "3 years", Description: "project work"},
			{Title: "Clerk", Duration: "1 year", Description: "filing"},
		},
	}
	jd := types.StructuredJobDescription{
		Experience: types.ExperienceRequirements{Years: 4, Keywords: []string{"Project"}},
	}
	// years: 4/4 -> 1.0, relevance: 1 of 2 entries
	if got := s.scoreExperience(resume, jd); !almostEqual(got, 0.6+0.4*0.5) {
		t.Errorf("experience score = %v", got)
	}
}

func TestExperienceScoreNoEntries(t *testing.T) {
	s := New(nil)
	jd := types.StructuredJobDescription{
		Experience: types.ExperienceRequirements{Years: 0, Keywords: []string{"project"}},
	}
	// years score 1.0 with zero required, relevance 0 without entries
	if got := s.scoreExperience(types.StructuredResume{}, jd); !almostEqual(got, 0.6) {
		t.Errorf("experience score = %v, want 0.6", got)
	}
}

func TestEducationScore(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "Master", Field: "Computer Science"},
		},
	}

	t.Run("no requirements", func(t *testing.T) {
		if got := s.scoreEducation(resume, types.StructuredJobDescription{}); !almostEqual(got, 1.0) {
			t.Errorf("score = %v", got)
		}
	})

	t.Run("level and field met", func(t *testing.T) {
		jd := types.StructuredJobDescription{
			Education: types.EducationRequirements{Level: "Bachelor", Fields: []string{"Computer Science"}},
		}
		if got := s.scoreEducation(resume, jd); !almostEqual(got, 1.0) {
			t.Errorf("score = %v", got)
		}
	})

	t.Run("level not met", func(t *testing.T) {
		jd := types.StructuredJobDescription{
			Education: types.EducationRequirements{Level: "PhD", Fields: []string{"Computer Science"}},
		}
		if got := s.scoreEducation(resume, jd); !almostEqual(got, 0.3) {
			t.Errorf("score = %v", got)
		}
	})
}

func TestFormatScorePerfect(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{
		Contact: types.ContactInfo{Name: "John Smith", Email: "j@example.com", Phone: "555-123-4567"},
		Sections: map[string]string{
			"contact": "", "summary": "", "experience": "", "education": "", "skills": "",
		},
		RawText: "Skills\nJan 2020 - Mar 2023",
	}
	if got := s.scoreFormat(resume); !almostEqual(got, 1.0) {
		t.Errorf("format score = %v, want 1.0", got)
	}
}

func TestFormatScoreEmptyResume(t *testing.T) {
	s := New(nil)
	if got := s.scoreFormat(types.StructuredResume{}); !almostEqual(got, 0) {
		t.Errorf("format score = %v, want 0", got)
	}
}

func TestBenchmarkPercentile(t *testing.T) {
	s := New(nil)
	tests := []struct {
		score float64
		want  float64
	}{
		{90, 90},   // at top
		{95, 90},   // above top
		{75, 50},   // at average
		{82.5, 70}, // midpoint between average and top
		{37.5, 25}, // half of average
		{0, 0},
	}
	for _, tt := range tests {
		got := s.benchmarkComparison(tt.score, "technology")
		if !almostEqual(got.Percentile, tt.want) {
			t.Errorf("percentile(%v) = %v, want %v", tt.score, got.Percentile, tt.want)
		}
		if got.Industry != "technology" || got.Average != 75 || got.Top != 90 {
			t.Errorf("benchmark = %+v", got)
		}
	}
}

func TestConfidenceInterval(t *testing.T) {
	uniform := map[string]types.CategoryScore{
		"skills":     {Score: 80, Weight: 0.4},
		"experience": {Score: 80, Weight: 0.3},
		"education":  {Score: 80, Weight: 0.2},
		"format":     {Score: 80, Weight: 0.1},
	}
	got := confidenceInterval(uniform)
	if !almostEqual(got.Lower, 80) || !almostEqual(got.Upper, 80) {
		t.Errorf("uniform scores should give zero-width interval, got %+v", got)
	}

	spread := map[string]types.CategoryScore{
		"skills":     {Score: 100, Weight: 0.4},
		"experience": {Score: 0, Weight: 0.3},
		"education":  {Score: 100, Weight: 0.2},
		"format":     {Score: 0, Weight: 0.1},
	}
	got = confidenceInterval(spread)
	if got.Lower < 0 || got.Upper > 100 || got.Lower > got.Upper {
		t.Errorf("interval out of bounds: %+v", got)
	}
	if almostEqual(got.Lower, got.Upper) {
		t.Error("spread scores should give a non-trivial interval")
	}
}

func TestScoreIndustryFallback(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{Skills: []string{"Go"}}

	got := s.Score(resume, types.StructuredJobDescription{Industry: "Technology"})
	if got.Industry != "technology" {
		t.Errorf("industry = %q", got.Industry)
	}
	if !almostEqual(got.Weights["skills"], 0.45) {
		t.Errorf("weights = %v", got.Weights)
	}

	got = s.Score(resume, types.StructuredJobDescription{Industry: "retail"})
	if got.Industry != "default" {
		t.Errorf("industry = %q", got.Industry)
	}
	if !almostEqual(got.Weights["skills"], 0.40) {
		t.Errorf("weights = %v", got.Weights)
	}
}

func TestScoreEndToEnd(t *testing.T) {
	s := New(nil)
	resume := types.StructuredResume{
		Contact: types.ContactInfo{Name: "John Smith", Email: "j@example.com", Phone: "555-123-4567"},
		Skills:  []string{"Go", "Docker", "Kubernetes"},
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Duration: "5 years", Description: "Led project delivery"},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "Bachelor", Field: "Computer Science"},
		},
		Sections: map[string]string{
			"contact": "", "summary": "", "experience": "", "education": "", "skills": "",
		},
		RawText: "Skills\nJan 2018 - Mar 2023",
	}
	jd := types.StructuredJobDescription{
		Industry:       "technology",
		RequiredSkills: []string{"Go", "Docker"},
		Experience:     types.ExperienceRequirements{Years: 3, Keywords: []string{"project"}},
		Education:      types.EducationRequirements{Level: "Bachelor", Fields: []string{"Computer Science"}},
	}

	got := s.Score(resume, jd)
	if got.OverallScore <= 0 || got.OverallScore > 100 {
		t.Fatalf("overall = %v", got.OverallScore)
	}
	if len(got.Categories) != 4 {
		t.Fatalf("categories = %v", got.Categories)
	}
	for name, c := range got.Categories {
		if c.Score < 0 || c.Score > 100 {
			t.Errorf("category %s score out of range: %v", name, c.Score)
		}
	}
	// Full match everywhere: every category is 100 and so is the overall.
	if !almostEqual(got.OverallScore, 100) {
		t.Errorf("overall = %v, want 100", got.OverallScore)
	}
	if got.Benchmark.Percentile != 90 {
		t.Errorf("percentile = %v", got.Benchmark.Percentile)
	}

	details, ok := got.Categories["skills"].Details.(types.SkillsDetails)
	if !ok {
		t.Fatalf("unexpected details type %T", got.Categories["skills"].Details)
	}
	if len(details.RequiredMatches) != 2 || len(details.RequiredGaps) != 0 {
		t.Errorf("skills details = %+v", details)
	}
}
