// Package scorer computes the weighted category scores that compare a
// structured resume against a structured job description. All category scores
// are computed on a 0-1 scale and reported on 0-100; the overall score is the
// industry-weighted combination of the four categories.
package scorer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"resumatch/internal/benchmark"
	"resumatch/internal/types"
)

const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryFormat     = "format"
)

var (
	yearsRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\b`)
	monthsRe = regexp.MustCompile(`(?i)(\d+)\s*months?\b`)

	// Format consistency looks for two occurrences of any single date shape.
	consistencyDateRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{4}/\d{1,2}/\d{1,2}`),
		regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),
	}

	headerWords = []string{"Skills", "Experience", "Education", "Summary", "Contact"}
)

// educationHierarchy orders degree levels from lowest to highest. Levels
// outside the hierarchy never satisfy a requirement.
var educationHierarchy = []string{"high school", "associate", "bachelor", "master", "phd", "doctorate"}

var degreeLevelPatterns = []struct {
	re    *regexp.Regexp
	level string
}{
	{regexp.MustCompile(`(?i)doctorate`), "doctorate"},
	{regexp.MustCompile(`(?i)\bph\.?\s?d\b`), "phd"},
	{regexp.MustCompile(`(?i)master|\bmsc\b|\bm\.?s\.?\b|\bm\.?a\.?\b|\bm\.?\s?eng\b|\bm\.?\s?tech\b`), "master"},
	{regexp.MustCompile(`(?i)bachelor|\bbsc\b|\bb\.?s\.?\b|\bb\.?a\.?\b|\bb\.?\s?eng\b|\bb\.?\s?tech\b`), "bachelor"},
	{regexp.MustCompile(`(?i)associate`), "associate"},
	{regexp.MustCompile(`(?i)high\s+school`), "high school"},
}

// Scorer scores resumes against job descriptions using industry weights and
// reference scores from a benchmark provider.
type Scorer struct {
	bench benchmark.Provider
}

func New(bench benchmark.Provider) *Scorer {
	if bench == nil {
		bench = benchmark.NewStatic()
	}
	return &Scorer{bench: bench}
}

// Score produces the full breakdown for one resume/job pair.
func (s *Scorer) Score(resume types.StructuredResume, jd types.StructuredJobDescription) types.ScoreBreakdown {
	industry := s.bench.Canonical(jd.Industry)
	weights := s.bench.Weights(industry)

	skills := s.scoreSkills(resume, jd)
	experience := s.scoreExperience(resume, jd)
	education := s.scoreEducation(resume, jd)
	format := s.scoreFormat(resume)

	overall := normalize(skills*weights.Skills +
		experience*weights.Experience +
		education*weights.Education +
		format*weights.Format)

	categories := map[string]types.CategoryScore{
		CategorySkills: {
			Score:   normalize(skills),
			Weight:  weights.Skills,
			Details: s.skillsDetails(resume, jd),
		},
		CategoryExperience: {
			Score:   normalize(experience),
			Weight:  weights.Experience,
			Details: s.experienceDetails(resume, jd),
		},
		CategoryEducation: {
			Score:   normalize(education),
			Weight:  weights.Education,
			Details: s.educationDetails(resume, jd),
		},
		CategoryFormat: {
			Score:   normalize(format),
			Weight:  weights.Format,
			Details: s.formatDetails(resume),
		},
	}

	return types.ScoreBreakdown{
		OverallScore: overall,
		Categories:   categories,
		Industry:     industry,
		Weights: map[string]float64{
			CategorySkills:     weights.Skills,
			CategoryExperience: weights.Experience,
			CategoryEducation:  weights.Education,
			CategoryFormat:     weights.Format,
		},
		ConfidenceInterval: confidenceInterval(categories),
		Benchmark:          s.benchmarkComparison(overall, industry),
	}
}

// scoreSkills is 0.7 x required match fraction + 0.3 x preferred match
// fraction. An empty requirement list counts as a full match.
func (s *Scorer) scoreSkills(resume types.StructuredResume, jd types.StructuredJobDescription) float64 {
	have := lowerSet(resume.Skills)
	return 0.7*matchFraction(jd.RequiredSkills, have) + 0.3*matchFraction(jd.PreferredSkills, have)
}

func matchFraction(wanted []string, have map[string]bool) float64 {
	wanted = dropEmpty(wanted)
	if len(wanted) == 0 {
		return 1.0
	}
	matches := 0
	for _, w := range wanted {
		if have[strings.ToLower(w)] {
			matches++
		}
	}
	return float64(matches) / float64(len(wanted))
}

// scoreExperience is 0.6 x years score + 0.4 x relevance score.
func (s *Scorer) scoreExperience(resume types.StructuredResume, jd types.StructuredJobDescription) float64 {
	totalYears := totalExperienceYears(resume.Experience)

	var yearsScore float64
	switch {
	case jd.Experience.Years == 0:
		yearsScore = 1.0
	case totalYears >= float64(jd.Experience.Years):
		yearsScore = 1.0
	default:
		yearsScore = totalYears / float64(jd.Experience.Years)
	}

	var relevanceScore float64
	if len(resume.Experience) > 0 {
		relevant := 0
		for _, exp := range resume.Experience {
			if matchesAnyKeyword(exp, jd.Experience.Keywords) {
				relevant++
			}
		}
		relevanceScore = float64(relevant) / float64(len(resume.Experience))
	}

	return 0.6*yearsScore + 0.4*relevanceScore
}

func matchesAnyKeyword(exp types.ExperienceEntry, keywords []string) bool {
	title := strings.ToLower(exp.Title)
	desc := strings.ToLower(exp.Description)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw != "" && (strings.Contains(title, kw) || strings.Contains(desc, kw)) {
			return true
		}
	}
	return false
}

// scoreEducation is 0.7 x level score + 0.3 x field score, or a full score
// when the job states no education requirements at all.
func (s *Scorer) scoreEducation(resume types.StructuredResume, jd types.StructuredJobDescription) float64 {
	if jd.Education.Empty() {
		return 1.0
	}

	var levelScore float64
	if levelMet(resume.Education, jd.Education.Level) {
		levelScore = 1.0
	}

	fieldScore := 1.0
	if len(jd.Education.Fields) > 0 {
		fieldScore = 0
		if fieldMet(resume.Education, jd.Education.Fields) {
			fieldScore = 1.0
		}
	}

	return 0.7*levelScore + 0.3*fieldScore
}

func levelMet(education []types.EducationEntry, requiredLevel string) bool {
	required := strings.ToLower(requiredLevel)
	for _, edu := range education {
		if levelSufficient(DegreeLevel(edu.Degree), required) {
			return true
		}
	}
	return false
}

func fieldMet(education []types.EducationEntry, requiredFields []string) bool {
	for _, edu := range education {
		field := strings.ToLower(edu.Field)
		for _, required := range requiredFields {
			if required != "" && strings.Contains(field, strings.ToLower(required)) {
				return true
			}
		}
	}
	return false
}

// scoreFormat is 0.4 x section completeness + 0.4 x contact completeness +
// 0.2 x formatting consistency, all computed from the structured resume.
func (s *Scorer) scoreFormat(resume types.StructuredResume) float64 {
	var sectionPoints float64
	for name, pts := range sectionPointTable {
		if _, ok := resume.Sections[name]; ok {
			sectionPoints += pts
		}
	}

	var contactPoints float64
	if resume.Contact.Email != "" {
		contactPoints += 0.4
	}
	if resume.Contact.Phone != "" {
		contactPoints += 0.4
	}
	if resume.Contact.Name != "" {
		contactPoints += 0.2
	}

	var consistencyPoints float64
	if consistentDates(resume.RawText) {
		consistencyPoints += 0.5
	}
	if containsHeaderWord(resume.RawText) {
		consistencyPoints += 0.5
	}

	return 0.4*sectionPoints + 0.4*contactPoints + 0.2*consistencyPoints
}

var sectionPointTable = map[string]float64{
	"contact":    0.2,
	"summary":    0.2,
	"experience": 0.3,
	"education":  0.2,
	"skills":     0.1,
}

func consistentDates(text string) bool {
	for _, re := range consistencyDateRes {
		if len(re.FindAllString(text, -1)) >= 2 {
			return true
		}
	}
	return false
}

func containsHeaderWord(text string) bool {
	for _, w := range headerWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// DurationYears parses a free-text duration into years. An explicit years
// token wins over a months token; anything else parses to zero.
func DurationYears(duration string) float64 {
	if duration == "" {
		return 0
	}
	if m := yearsRe.FindStringSubmatch(duration); m != nil {
		n, _ := strconv.Atoi(m[1])
		return float64(n)
	}
	if m := monthsRe.FindStringSubmatch(duration); m != nil {
		n, _ := strconv.Atoi(m[1])
		return float64(n) / 12
	}
	return 0
}

// DegreeLevel maps free-text degree wording onto the education hierarchy,
// returning "" when no level is recognizable.
func DegreeLevel(degree string) string {
	for _, p := range degreeLevelPatterns {
		if p.re.MatchString(degree) {
			return p.level
		}
	}
	return ""
}

func levelSufficient(candidate, required string) bool {
	if candidate == "" || required == "" {
		return false
	}
	ci := hierarchyIndex(candidate)
	ri := hierarchyIndex(required)
	if ci < 0 || ri < 0 {
		return false
	}
	return ci >= ri
}

func hierarchyIndex(level string) int {
	for i, l := range educationHierarchy {
		if l == level {
			return i
		}
	}
	return -1
}

func totalExperienceYears(entries []types.ExperienceEntry) float64 {
	var total float64
	for _, exp := range entries {
		total += DurationYears(exp.Duration)
	}
	return total
}

func (s *Scorer) skillsDetails(resume types.StructuredResume, jd types.StructuredJobDescription) types.SkillsDetails {
	have := lowerSet(resume.Skills)
	d := types.SkillsDetails{
		RequiredMatches:  []string{},
		RequiredGaps:     []string{},
		PreferredMatches: []string{},
		PreferredGaps:    []string{},
	}
	for _, skill := range dropEmpty(jd.RequiredSkills) {
		if have[strings.ToLower(skill)] {
			d.RequiredMatches = append(d.RequiredMatches, strings.ToLower(skill))
		} else {
			d.RequiredGaps = append(d.RequiredGaps, strings.ToLower(skill))
		}
	}
	for _, skill := range dropEmpty(jd.PreferredSkills) {
		if have[strings.ToLower(skill)] {
			d.PreferredMatches = append(d.PreferredMatches, strings.ToLower(skill))
		} else {
			d.PreferredGaps = append(d.PreferredGaps, strings.ToLower(skill))
		}
	}
	return d
}

func (s *Scorer) experienceDetails(resume types.StructuredResume, jd types.StructuredJobDescription) types.ExperienceDetails {
	d := types.ExperienceDetails{
		TotalYears:     totalExperienceYears(resume.Experience),
		RequiredYears:  jd.Experience.Years,
		RelevantTitles: []string{},
	}
	for _, exp := range resume.Experience {
		if matchesAnyKeyword(exp, jd.Experience.Keywords) {
			d.RelevantTitles = append(d.RelevantTitles, exp.Title)
		}
	}
	return d
}

func (s *Scorer) educationDetails(resume types.StructuredResume, jd types.StructuredJobDescription) types.EducationDetails {
	fieldOK := true
	if len(jd.Education.Fields) > 0 {
		fieldOK = fieldMet(resume.Education, jd.Education.Fields)
	}
	return types.EducationDetails{
		LevelMet:       levelMet(resume.Education, jd.Education.Level),
		FieldMet:       fieldOK,
		RequiredLevel:  jd.Education.Level,
		RequiredFields: jd.Education.Fields,
	}
}

func (s *Scorer) formatDetails(resume types.StructuredResume) types.FormatDetails {
	sections := make(map[string]bool, len(sectionPointTable))
	for name := range sectionPointTable {
		_, ok := resume.Sections[name]
		sections[name] = ok
	}
	return types.FormatDetails{
		Sections: sections,
		Contact: map[string]bool{
			"email": resume.Contact.Email != "",
			"phone": resume.Contact.Phone != "",
			"name":  resume.Contact.Name != "",
		},
	}
}

// confidenceInterval derives a dispersion band around the weighted mean of
// the category scores. It is descriptive, not a statistical bound.
func confidenceInterval(categories map[string]types.CategoryScore) types.ConfidenceInterval {
	var weightSum, mean float64
	for _, c := range categories {
		weightSum += c.Weight
		mean += c.Score * c.Weight
	}
	if weightSum == 0 {
		return types.ConfidenceInterval{}
	}
	mean /= weightSum

	var variance float64
	for _, c := range categories {
		variance += c.Weight * (c.Score - mean) * (c.Score - mean)
	}
	variance /= weightSum

	margin := 1.96 * math.Sqrt(variance)
	return types.ConfidenceInterval{
		Lower: math.Max(0, mean-margin),
		Upper: math.Min(100, mean+margin),
	}
}

func (s *Scorer) benchmarkComparison(score float64, industry string) types.Benchmark {
	ref := s.bench.Reference(industry)

	var percentile float64
	switch {
	case score >= ref.Top:
		percentile = 90
	case score >= ref.Average:
		if ref.Top > ref.Average {
			percentile = 50 + 40*(score-ref.Average)/(ref.Top-ref.Average)
		} else {
			percentile = 90
		}
	default:
		if ref.Average > 0 {
			percentile = 50 * (score / ref.Average)
		}
	}

	return types.Benchmark{
		Industry:   industry,
		Score:      score,
		Average:    ref.Average,
		Top:        ref.Top,
		Percentile: percentile,
	}
}

func normalize(score float64) float64 {
	return math.Min(math.Max(score*100, 0), 100)
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		if it != "" {
			set[strings.ToLower(it)] = true
		}
	}
	return set
}

func dropEmpty(items []string) []string {
	out := items[:0:0]
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
