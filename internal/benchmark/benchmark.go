// Package benchmark supplies the industry scoring weights and reference
// scores used by the scorer. The static tables here are the always-available
// fallback; file and remote providers layer on top and degrade to these
// values when their source is unavailable.
package benchmark

import "strings"

// Weights are the four category weights for one industry. They sum to 1.0.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Format     float64 `json:"format"`
}

// Reference holds the industry average and top resume scores on the 0-100
// scale, used for percentile placement.
type Reference struct {
	Average float64 `json:"average"`
	Top     float64 `json:"top"`
}

// Provider resolves weights and reference scores per industry. Unknown
// industries resolve to the "default" entry, never to an error. Canonical
// reports the industry name the other two methods will actually serve, so
// callers can surface which table applied.
type Provider interface {
	Weights(industry string) Weights
	Reference(industry string) Reference
	Canonical(industry string) string
}

const DefaultIndustry = "default"

var staticWeights = map[string]Weights{
	"technology":    {Skills: 0.45, Experience: 0.35, Education: 0.15, Format: 0.05},
	"healthcare":    {Skills: 0.30, Experience: 0.40, Education: 0.25, Format: 0.05},
	"finance":       {Skills: 0.35, Experience: 0.35, Education: 0.25, Format: 0.05},
	DefaultIndustry: {Skills: 0.40, Experience: 0.30, Education: 0.20, Format: 0.10},
}

var staticReferences = map[string]Reference{
	"technology":    {Average: 75, Top: 90},
	"healthcare":    {Average: 70, Top: 85},
	"finance":       {Average: 72, Top: 88},
	DefaultIndustry: {Average: 65, Top: 80},
}

// Static serves the built-in tables.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Weights(industry string) Weights {
	if w, ok := staticWeights[normalize(industry)]; ok {
		return w
	}
	return staticWeights[DefaultIndustry]
}

func (s *Static) Reference(industry string) Reference {
	if r, ok := staticReferences[normalize(industry)]; ok {
		return r
	}
	return staticReferences[DefaultIndustry]
}

func (s *Static) Canonical(industry string) string {
	if _, ok := staticWeights[normalize(industry)]; ok {
		return normalize(industry)
	}
	return DefaultIndustry
}

func normalize(industry string) string {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return DefaultIndustry
	}
	return industry
}
