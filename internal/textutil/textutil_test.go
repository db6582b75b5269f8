package textutil

import (
	"strings"
	"testing"
)

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestNormalizeWhitespaceCollapse(t *testing.T) {
	got := Normalize("Senior   Engineer\t\tGo")
	if got != "Senior Engineer Go" {
		t.Errorf("Normalize = %q, want %q", got, "Senior Engineer Go")
	}
}

func TestNormalizePreservesLines(t *testing.T) {
	got := Normalize("Skills\n\n\nGo, Python\n")
	want := "Skills\nGo, Python"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeBulletGlyphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"triangular bullet", "‣ Go"},
		{"white bullet", "◦ Go"},
		{"hyphen bullet", "⁃ Go"},
		{"operator bullet", "∙ Go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !strings.HasPrefix(got, "•") {
				t.Errorf("Normalize(%q) = %q, want canonical bullet prefix", tt.input, got)
			}
		})
	}
}

func TestNormalizeQuotesAndDashes(t *testing.T) {
	got := Normalize("“Go” ‘rocks’ – really — yes")
	want := `"Go" 'rocks' - really - yes`
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Contact: jane.doe@example.com or call", "jane.doe@example.com"},
		{"jane_doe+work@sub.example.co.uk", "jane_doe+work@sub.example.co.uk"},
		{"no email here", ""},
		{"bad@tld.x is too short", ""},
	}
	for _, tt := range tests {
		if got := ExtractEmail(tt.text); got != tt.want {
			t.Errorf("ExtractEmail(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Call 555-123-4567 today", "555-123-4567"},
		{"+1 555 123 4567", "+1 555 123 4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"no digits", ""},
	}
	for _, tt := range tests {
		if got := ExtractPhone(tt.text); got != tt.want {
			t.Errorf("ExtractPhone(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractLinks(t *testing.T) {
	links := ExtractLinks("see https://github.com/jane and http://example.com/cv.pdf")
	if len(links) != 2 {
		t.Fatalf("ExtractLinks returned %d links, want 2: %v", len(links), links)
	}
	if links[0] != "https://github.com/jane" {
		t.Errorf("links[0] = %q", links[0])
	}
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Python Programming", "python"},
		{"JS", "javascript"},
		{"ML", "machine learning"},
		{"React Framework", "react"},
		{"Node.js", "nodejs"},
	}
	for _, tt := range tests {
		if got := NormalizeSkillName(tt.in); got != tt.want {
			t.Errorf("NormalizeSkillName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
