package types

// ContactInfo holds contact details mined from a resume
type ContactInfo struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// ExperienceEntry represents one job held by the candidate
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"` // free-text date range, parsed lossily by the scorer
	Description string `json:"description"`
}

// EducationEntry represents one school or program attended by the candidate
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// StructuredResume is the canonical record built from raw resume text.
// It is built once per document and never mutated afterwards.
type StructuredResume struct {
	Contact    ContactInfo       `json:"contactInfo"`
	Skills     []string          `json:"skills"` // deduplicated case-insensitively, no blank entries
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Summary    string            `json:"summary,omitempty"`
	Sections   map[string]string `json:"sections"`
	RawText    string            `json:"rawText"`
}

// ExperienceRequirements holds the experience demands of a job description
type ExperienceRequirements struct {
	Years    int      `json:"years"`
	Keywords []string `json:"keywords"`
}

// EducationRequirements holds the education demands of a job description
type EducationRequirements struct {
	Level  string   `json:"level,omitempty"`
	Fields []string `json:"fields"`
}

// Empty reports whether the job states no education requirements at all.
func (e EducationRequirements) Empty() bool {
	return e.Level == "" && len(e.Fields) == 0
}

// StructuredJobDescription is the canonical record built from raw job posting text.
// Industry is always lowercase and falls back to "default" when unrecognized.
type StructuredJobDescription struct {
	JobTitle         string                 `json:"jobTitle,omitempty"`
	Company          string                 `json:"company,omitempty"`
	Industry         string                 `json:"industry"`
	RequiredSkills   []string               `json:"requiredSkills"`
	PreferredSkills  []string               `json:"preferredSkills"`
	Experience       ExperienceRequirements `json:"experienceRequirements"`
	Education        EducationRequirements  `json:"educationRequirements"`
	Responsibilities []string               `json:"responsibilities"`
	Qualifications   []string               `json:"qualifications"`
	RawText          string                 `json:"rawText"`
}

// SkillsDetails lists the matched and missing skills behind the skills score
type SkillsDetails struct {
	RequiredMatches  []string `json:"requiredMatches"`
	RequiredGaps     []string `json:"requiredGaps"`
	PreferredMatches []string `json:"preferredMatches"`
	PreferredGaps    []string `json:"preferredGaps"`
}

// ExperienceDetails explains the experience score
type ExperienceDetails struct {
	TotalYears     float64  `json:"totalYears"`
	RequiredYears  int      `json:"requiredYears"`
	RelevantTitles []string `json:"relevantTitles"`
}

// EducationDetails explains the education score
type EducationDetails struct {
	LevelMet       bool     `json:"levelMet"`
	FieldMet       bool     `json:"fieldMet"`
	RequiredLevel  string   `json:"requiredLevel,omitempty"`
	RequiredFields []string `json:"requiredFields"`
}

// FormatDetails explains the format score
type FormatDetails struct {
	Sections map[string]bool `json:"sections"`
	Contact  map[string]bool `json:"contact"`
}

// CategoryScore is one weighted component of the overall score.
// Score is on the 0-100 scale; Weight is the industry weight in [0,1].
type CategoryScore struct {
	Score   float64 `json:"score"`
	Weight  float64 `json:"weight"`
	Details any     `json:"details"`
}

// ConfidenceInterval is the dispersion band reported alongside the overall score.
// It is a descriptive heuristic over the category scores, not a statistical bound.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Benchmark compares an overall score against industry reference scores
type Benchmark struct {
	Industry   string  `json:"industry"`
	Score      float64 `json:"score"`
	Average    float64 `json:"average"`
	Top        float64 `json:"top"`
	Percentile float64 `json:"percentile"`
}

// ScoreBreakdown is the full scoring result for one resume/job pair.
// A new breakdown is produced for every scoring request; none is ever mutated.
type ScoreBreakdown struct {
	OverallScore       float64                  `json:"overallScore"`
	Categories         map[string]CategoryScore `json:"scoreBreakdown"`
	Industry           string                   `json:"industry"`
	Weights            map[string]float64       `json:"weights"`
	ConfidenceInterval ConfidenceInterval       `json:"confidenceInterval"`
	Benchmark          Benchmark                `json:"benchmark"`
}

// Recommendation is one templated improvement suggestion.
// Lower priority means more urgent.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
	Priority    int      `json:"priority"`
	Category    string   `json:"category"`
}

// AnalysisResult bundles everything produced by one end-to-end analysis
type AnalysisResult struct {
	Resume          StructuredResume         `json:"resume"`
	JobDescription  StructuredJobDescription `json:"jobDescription"`
	Scores          ScoreBreakdown           `json:"scores"`
	Recommendations []Recommendation         `json:"recommendations"`
}
