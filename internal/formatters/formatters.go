package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumatch/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "StructuredResume", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "StructuredResume", &ResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "StructuredJobDescription", &JobTextFormatter{})
	registry.RegisterFormatter("markdown", "StructuredJobDescription", &JobMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.StructuredResume:
		return "StructuredResume"
	case types.StructuredJobDescription:
		return "StructuredJobDescription"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// categoryOrder fixes the display order of score categories
var categoryOrder = []string{"skills", "experience", "education", "format"}

// sortedCategories returns category names in display order, any extras last
func sortedCategories(categories map[string]types.CategoryScore) []string {
	names := make([]string, 0, len(categories))
	seen := make(map[string]bool)
	for _, name := range categoryOrder {
		if _, ok := categories[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range categories {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// AnalysisTextFormatter handles text formatting for full analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY SCORE ===\n")
	output.WriteString(fmt.Sprintf("Overall Score: %.1f/100\n", result.Scores.OverallScore))
	output.WriteString(fmt.Sprintf("Industry: %s\n", result.Scores.Industry))
	output.WriteString(fmt.Sprintf("Confidence Interval: %.1f - %.1f\n",
		result.Scores.ConfidenceInterval.Lower, result.Scores.ConfidenceInterval.Upper))
	output.WriteString(fmt.Sprintf("Percentile: %.0f (industry average %.0f, top %.0f)\n\n",
		result.Scores.Benchmark.Percentile, result.Scores.Benchmark.Average, result.Scores.Benchmark.Top))

	output.WriteString("=== SCORE BREAKDOWN ===\n")
	for _, name := range sortedCategories(result.Scores.Categories) {
		cat := result.Scores.Categories[name]
		output.WriteString(fmt.Sprintf("%-12s %.1f/100 (weight %.0f%%)\n",
			name, cat.Score, cat.Weight*100))
	}
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s [priority %d]\n", i+1, rec.Title, rec.Priority))
			output.WriteString("   ")
			output.WriteString(rec.Description)
			output.WriteString("\n")
			for _, suggestion := range rec.Suggestions {
				output.WriteString(fmt.Sprintf("   - %s\n", suggestion))
			}
			output.WriteString("\n")
		}
	} else {
		output.WriteString("No recommendations.\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for full analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Score\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %.1f/100\n\n", result.Scores.OverallScore))
	output.WriteString(fmt.Sprintf("**Industry:** %s\n\n", result.Scores.Industry))
	output.WriteString(fmt.Sprintf("**Confidence Interval:** %.1f - %.1f\n\n",
		result.Scores.ConfidenceInterval.Lower, result.Scores.ConfidenceInterval.Upper))
	output.WriteString(fmt.Sprintf("**Percentile:** %.0f (industry average %.0f, top %.0f)\n\n",
		result.Scores.Benchmark.Percentile, result.Scores.Benchmark.Average, result.Scores.Benchmark.Top))

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString("| Category | Score | Weight |\n")
	output.WriteString("|----------|-------|--------|\n")
	for _, name := range sortedCategories(result.Scores.Categories) {
		cat := result.Scores.Categories[name]
		output.WriteString(fmt.Sprintf("| %s | %.1f | %.0f%% |\n", name, cat.Score, cat.Weight*100))
	}
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, rec.Title))
			output.WriteString(fmt.Sprintf("**Priority:** %d | **Category:** %s\n\n", rec.Priority, rec.Category))
			output.WriteString(rec.Description)
			output.WriteString("\n\n")
			for _, suggestion := range rec.Suggestions {
				output.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
			output.WriteString("\n")
		}
	} else {
		output.WriteString("## No Recommendations\n\nThe resume already fits this job description well.\n")
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// ResumeTextFormatter handles text formatting for structured resumes
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.StructuredResume)
	if !ok {
		return "", fmt.Errorf("expected StructuredResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CONTACT ===\n")
	if resume.Contact.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", resume.Contact.Name))
	}
	if resume.Contact.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", resume.Contact.Phone))
	}
	if resume.Contact.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", resume.Contact.Location))
	}
	for _, link := range resume.Contact.Links {
		output.WriteString(fmt.Sprintf("Link: %s\n", link))
	}
	output.WriteString("\n")

	if resume.Summary != "" {
		output.WriteString("=== SUMMARY ===\n")
		output.WriteString(resume.Summary)
		output.WriteString("\n\n")
	}

	if len(resume.Skills) > 0 {
		output.WriteString("=== SKILLS ===\n")
		output.WriteString(strings.Join(resume.Skills, ", "))
		output.WriteString("\n\n")
	}

	if len(resume.Experience) > 0 {
		output.WriteString("=== EXPERIENCE ===\n")
		for _, entry := range resume.Experience {
			output.WriteString(fmt.Sprintf("- %s", entry.Title))
			if entry.Company != "" {
				output.WriteString(fmt.Sprintf(" at %s", entry.Company))
			}
			if entry.Duration != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.Duration))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		output.WriteString("=== EDUCATION ===\n")
		for _, entry := range resume.Education {
			output.WriteString(fmt.Sprintf("- %s", entry.Institution))
			if entry.Degree != "" {
				output.WriteString(fmt.Sprintf(", %s", entry.Degree))
			}
			if entry.Field != "" {
				output.WriteString(fmt.Sprintf(" in %s", entry.Field))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "StructuredResume"
}

// ResumeMarkdownFormatter handles markdown formatting for structured resumes
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.StructuredResume)
	if !ok {
		return "", fmt.Errorf("expected StructuredResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Resume\n\n")
	output.WriteString("## Contact\n\n")
	if resume.Contact.Name != "" {
		output.WriteString(fmt.Sprintf("- **Name:** %s\n", resume.Contact.Name))
	}
	if resume.Contact.Email != "" {
		output.WriteString(fmt.Sprintf("- **Email:** %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		output.WriteString(fmt.Sprintf("- **Phone:** %s\n", resume.Contact.Phone))
	}
	if resume.Contact.Location != "" {
		output.WriteString(fmt.Sprintf("- **Location:** %s\n", resume.Contact.Location))
	}
	for _, link := range resume.Contact.Links {
		output.WriteString(fmt.Sprintf("- **Link:** %s\n", link))
	}
	output.WriteString("\n")

	if resume.Summary != "" {
		output.WriteString("## Summary\n\n")
		output.WriteString(resume.Summary)
		output.WriteString("\n\n")
	}

	if len(resume.Skills) > 0 {
		output.WriteString("## Skills\n\n")
		for _, skill := range resume.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		output.WriteString("## Experience\n\n")
		for _, entry := range resume.Experience {
			output.WriteString(fmt.Sprintf("### %s\n\n", entry.Title))
			if entry.Company != "" {
				output.WriteString(fmt.Sprintf("**Company:** %s\n\n", entry.Company))
			}
			if entry.Duration != "" {
				output.WriteString(fmt.Sprintf("**Duration:** %s\n\n", entry.Duration))
			}
			if entry.Description != "" {
				output.WriteString(entry.Description)
				output.WriteString("\n\n")
			}
		}
	}

	if len(resume.Education) > 0 {
		output.WriteString("## Education\n\n")
		for _, entry := range resume.Education {
			output.WriteString(fmt.Sprintf("### %s\n\n", entry.Institution))
			if entry.Degree != "" {
				output.WriteString(fmt.Sprintf("**Degree:** %s\n\n", entry.Degree))
			}
			if entry.Field != "" {
				output.WriteString(fmt.Sprintf("**Field:** %s\n\n", entry.Field))
			}
		}
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "StructuredResume"
}

// JobTextFormatter handles text formatting for structured job descriptions
type JobTextFormatter struct{}

func (jtf *JobTextFormatter) Format(data any) (string, error) {
	jd, ok := data.(types.StructuredJobDescription)
	if !ok {
		return "", fmt.Errorf("expected StructuredJobDescription, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB DESCRIPTION ===\n")
	if jd.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Title: %s\n", jd.JobTitle))
	}
	if jd.Company != "" {
		output.WriteString(fmt.Sprintf("Company: %s\n", jd.Company))
	}
	output.WriteString(fmt.Sprintf("Industry: %s\n\n", jd.Industry))

	if len(jd.RequiredSkills) > 0 {
		output.WriteString("Required Skills:\n")
		for _, skill := range jd.RequiredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(jd.PreferredSkills) > 0 {
		output.WriteString("Preferred Skills:\n")
		for _, skill := range jd.PreferredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString(fmt.Sprintf("Required Experience: %d years\n", jd.Experience.Years))
	if len(jd.Experience.Keywords) > 0 {
		output.WriteString(fmt.Sprintf("Experience Keywords: %s\n", strings.Join(jd.Experience.Keywords, ", ")))
	}
	output.WriteString("\n")

	if !jd.Education.Empty() {
		output.WriteString("Education Requirements:\n")
		if jd.Education.Level != "" {
			output.WriteString(fmt.Sprintf("- Level: %s\n", jd.Education.Level))
		}
		for _, field := range jd.Education.Fields {
			output.WriteString(fmt.Sprintf("- Field: %s\n", field))
		}
		output.WriteString("\n")
	}

	if len(jd.Responsibilities) > 0 {
		output.WriteString("Responsibilities:\n")
		for _, item := range jd.Responsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}
	if len(jd.Qualifications) > 0 {
		output.WriteString("Qualifications:\n")
		for _, item := range jd.Qualifications {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (jtf *JobTextFormatter) SupportedType() string {
	return "StructuredJobDescription"
}

// JobMarkdownFormatter handles markdown formatting for structured job descriptions
type JobMarkdownFormatter struct{}

func (jmf *JobMarkdownFormatter) Format(data any) (string, error) {
	jd, ok := data.(types.StructuredJobDescription)
	if !ok {
		return "", fmt.Errorf("expected StructuredJobDescription, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Description Analysis\n\n")
	if jd.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**Title:** %s\n\n", jd.JobTitle))
	}
	if jd.Company != "" {
		output.WriteString(fmt.Sprintf("**Company:** %s\n\n", jd.Company))
	}
	output.WriteString(fmt.Sprintf("**Industry:** %s\n\n", jd.Industry))

	if len(jd.RequiredSkills) > 0 {
		output.WriteString("## Required Skills\n\n")
		for _, skill := range jd.RequiredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(jd.PreferredSkills) > 0 {
		output.WriteString("## Preferred Skills\n\n")
		for _, skill := range jd.PreferredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Experience\n\n")
	output.WriteString(fmt.Sprintf("**Required Years:** %d\n\n", jd.Experience.Years))
	if len(jd.Experience.Keywords) > 0 {
		output.WriteString(fmt.Sprintf("**Keywords:** %s\n\n", strings.Join(jd.Experience.Keywords, ", ")))
	}

	if !jd.Education.Empty() {
		output.WriteString("## Education\n\n")
		if jd.Education.Level != "" {
			output.WriteString(fmt.Sprintf("**Level:** %s\n\n", jd.Education.Level))
		}
		for _, field := range jd.Education.Fields {
			output.WriteString(fmt.Sprintf("- %s\n", field))
		}
		output.WriteString("\n")
	}

	if len(jd.Responsibilities) > 0 {
		output.WriteString("## Responsibilities\n\n")
		for _, item := range jd.Responsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}
	if len(jd.Qualifications) > 0 {
		output.WriteString("## Qualifications\n\n")
		for _, item := range jd.Qualifications {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (jmf *JobMarkdownFormatter) SupportedType() string {
	return "StructuredJobDescription"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
