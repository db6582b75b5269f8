// Package recommend turns a score breakdown into an ordered list of
// improvement recommendations. Each rule in the fixed table fires
// independently and contributes at most one recommendation; the result is
// sorted ascending by priority with ties kept in rule order.
package recommend

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumatch/internal/scorer"
	"resumatch/internal/types"
)

type template struct {
	title       string
	description string
	suggestions []string
	priority    int
}

var templates = map[string]template{
	"skills_gap": {
		title:       "Skills Gap",
		description: "Your resume is missing some key skills mentioned in the job description.",
		suggestions: []string{
			"Consider adding these skills to your resume if you have them: {missing_skills}",
			"If you don't have these skills, consider taking online courses or certifications to acquire them.",
			"Highlight transferable skills that are similar to the required skills.",
		},
		priority: 1,
	},
	"experience_gap": {
		title:       "Experience Gap",
		description: "Your experience doesn't fully match the job requirements.",
		suggestions: []string{
			"Emphasize relevant projects or achievements that demonstrate the required experience.",
			"Quantify your accomplishments with metrics and results.",
			"Consider gaining more experience in the required areas through freelance work or personal projects.",
		},
		priority: 2,
	},
	"education_gap": {
		title:       "Education Gap",
		description: "Your education qualifications don't fully match the job requirements.",
		suggestions: []string{
			"Highlight relevant coursework, projects, or certifications.",
			"Emphasize your practical experience to compensate for education gaps.",
			"Consider pursuing additional education or certifications if possible.",
		},
		priority: 3,
	},
	"format_issues": {
		title:       "Resume Format Issues",
		description: "Your resume could be improved in terms of formatting and structure.",
		suggestions: []string{
			"Ensure your resume has all the standard sections: Contact, Summary, Experience, Education, Skills.",
			"Use consistent formatting throughout your resume.",
			"Keep your resume to 1-2 pages maximum.",
			"Use bullet points to make your experience easy to scan.",
			"Use a professional font and appropriate spacing.",
		},
		priority: 4,
	},
	"keyword_optimization": {
		title:       "Keyword Optimization",
		description: "Your resume could be better optimized for ATS systems.",
		suggestions: []string{
			"Include keywords from the job description throughout your resume.",
			"Use variations of keywords (e.g., 'managed' and 'management').",
			"Place important keywords in prominent positions like the summary and skills section.",
			"Avoid graphics, tables, and special characters that ATS systems might not parse correctly.",
		},
		priority: 5,
	},
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Generator produces recommendations from analysis results.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate applies the rule table and returns the fired recommendations
// sorted ascending by priority.
func (g *Generator) Generate(resume types.StructuredResume, jd types.StructuredJobDescription, scores types.ScoreBreakdown) []types.Recommendation {
	var recs []types.Recommendation

	if rec, ok := g.skillsGap(scores); ok {
		recs = append(recs, rec)
	}
	if rec, ok := g.experienceGap(scores); ok {
		recs = append(recs, rec)
	}
	if rec, ok := g.educationGap(scores); ok {
		recs = append(recs, rec)
	}
	if rec, ok := g.formatIssues(scores); ok {
		recs = append(recs, rec)
	}
	if scores.OverallScore < 70 {
		recs = append(recs, fromTemplate("keyword_optimization", nil))
	}
	recs = append(recs, g.contentRecommendations(resume)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

func (g *Generator) skillsGap(scores types.ScoreBreakdown) (types.Recommendation, bool) {
	cat, ok := scores.Categories[scorer.CategorySkills]
	if !ok || cat.Score >= 80 {
		return types.Recommendation{}, false
	}
	details, ok := cat.Details.(types.SkillsDetails)
	if !ok {
		return types.Recommendation{}, false
	}
	missing := append(append([]string{}, details.RequiredGaps...), details.PreferredGaps...)
	if len(missing) == 0 {
		return types.Recommendation{}, false
	}
	if len(missing) > 5 {
		missing = missing[:5]
	}
	return fromTemplate("skills_gap", map[string]string{
		"missing_skills": strings.Join(missing, ", "),
	}), true
}

func (g *Generator) experienceGap(scores types.ScoreBreakdown) (types.Recommendation, bool) {
	cat, ok := scores.Categories[scorer.CategoryExperience]
	if !ok || cat.Score >= 80 {
		return types.Recommendation{}, false
	}
	details, ok := cat.Details.(types.ExperienceDetails)
	if !ok || details.TotalYears >= float64(details.RequiredYears) {
		return types.Recommendation{}, false
	}
	return fromTemplate("experience_gap", map[string]string{
		"years_shortfall": fmt.Sprintf("%g", float64(details.RequiredYears)-details.TotalYears),
	}), true
}

func (g *Generator) educationGap(scores types.ScoreBreakdown) (types.Recommendation, bool) {
	cat, ok := scores.Categories[scorer.CategoryEducation]
	if !ok || cat.Score >= 80 {
		return types.Recommendation{}, false
	}
	details, ok := cat.Details.(types.EducationDetails)
	if !ok || (details.LevelMet && details.FieldMet) {
		return types.Recommendation{}, false
	}
	return fromTemplate("education_gap", nil), true
}

func (g *Generator) formatIssues(scores types.ScoreBreakdown) (types.Recommendation, bool) {
	cat, ok := scores.Categories[scorer.CategoryFormat]
	if !ok || cat.Score >= 90 {
		return types.Recommendation{}, false
	}
	details, ok := cat.Details.(types.FormatDetails)
	if !ok {
		return types.Recommendation{}, false
	}
	anyMissing := false
	for _, present := range details.Sections {
		if !present {
			anyMissing = true
		}
	}
	for _, present := range details.Contact {
		if !present {
			anyMissing = true
		}
	}
	if !anyMissing {
		return types.Recommendation{}, false
	}
	return fromTemplate("format_issues", nil), true
}

func (g *Generator) contentRecommendations(resume types.StructuredResume) []types.Recommendation {
	var recs []types.Recommendation

	if resume.Summary == "" {
		recs = append(recs, types.Recommendation{
			Title:       "Missing Professional Summary",
			Description: "Your resume doesn't have a professional summary section.",
			Suggestions: []string{
				"Add a professional summary at the top of your resume (2-3 sentences).",
				"Highlight your most relevant skills and experience for this job.",
				"Include keywords from the job description in your summary.",
			},
			Priority: 3,
			Category: "content",
		})
	}

	var weakTitles []string
	for _, exp := range resume.Experience {
		if len(exp.Description) < 50 || !containsDigit(exp.Description) {
			weakTitles = append(weakTitles, exp.Title)
		}
	}
	if len(weakTitles) > 0 {
		recs = append(recs, types.Recommendation{
			Title:       "Weak Experience Descriptions",
			Description: "Some of your experience descriptions could be more detailed and impactful.",
			Suggestions: []string{
				"Strengthen descriptions for these roles: " + strings.Join(weakTitles, ", "),
				"Use action verbs to start bullet points (e.g., 'Managed', 'Developed', 'Implemented').",
				"Quantify your achievements with numbers, percentages, and results.",
				"Focus on accomplishments rather than just responsibilities.",
			},
			Priority: 4,
			Category: "content",
		})
	}

	if len(resume.Skills) < 5 {
		recs = append(recs, types.Recommendation{
			Title:       "Insufficient Skills Section",
			Description: "Your skills section could be more comprehensive.",
			Suggestions: []string{
				"Add more relevant skills to your skills section.",
				"Include both technical and soft skills.",
				"Organize skills into categories (e.g., Technical Skills, Soft Skills).",
				"Include skills mentioned in the job description.",
			},
			Priority: 2,
			Category: "content",
		})
	}

	return recs
}

// fromTemplate renders a template with placeholder substitution. A suggestion
// whose placeholders cannot all be resolved is kept verbatim.
func fromTemplate(name string, context map[string]string) types.Recommendation {
	tmpl := templates[name]

	suggestions := make([]string, 0, len(tmpl.suggestions))
	for _, s := range tmpl.suggestions {
		suggestions = append(suggestions, substitute(s, context))
	}

	return types.Recommendation{
		Title:       tmpl.title,
		Description: tmpl.description,
		Suggestions: suggestions,
		Priority:    tmpl.priority,
		Category:    name,
	}
}

func substitute(s string, context map[string]string) string {
	resolvable := true
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if _, ok := context[m[1]]; !ok {
			resolvable = false
			break
		}
	}
	if !resolvable {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(ph string) string {
		return context[strings.Trim(ph, "{}")]
	})
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
