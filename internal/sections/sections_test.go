package sections

import (
	"regexp"
	"testing"
)

func TestSegmentOrdersByPosition(t *testing.T) {
	text := "Skills\nGo, Python\nExperience\nAcme Corp\nEducation\nState University"
	seg := NewPositional()

	got := seg.Segment(text, []HeaderPattern{
		{"education", regexp.MustCompile(`(?i)education`)},
		{"skills", regexp.MustCompile(`(?i)skills`)},
		{"experience", regexp.MustCompile(`(?i)experience`)},
	})

	if len(got) != 3 {
		t.Fatalf("got %d sections, want 3: %v", len(got), got)
	}
	if got["skills"] != "Go, Python" {
		t.Errorf("skills span = %q", got["skills"])
	}
	if got["experience"] != "Acme Corp" {
		t.Errorf("experience span = %q", got["experience"])
	}
	if got["education"] != "State University" {
		t.Errorf("education span = %q", got["education"])
	}
}

func TestSegmentMissingSectionAbsent(t *testing.T) {
	seg := NewPositional()
	got := seg.Segment("Skills\nGo", []HeaderPattern{
		{"skills", regexp.MustCompile(`(?i)skills`)},
		{"education", regexp.MustCompile(`(?i)education`)},
	})
	if _, ok := got["education"]; ok {
		t.Error("education should be absent when its header never matches")
	}
	if got["skills"] != "Go" {
		t.Errorf("skills span = %q", got["skills"])
	}
}

func TestSegmentTieBreakDeclarationOrder(t *testing.T) {
	// Both patterns match at position 0; the first declared pattern wins the
	// position and the second section starts at the same offset, leaving it
	// an empty span ordered after the first.
	seg := NewPositional()
	got := seg.Segment("Background and history", []HeaderPattern{
		{"first", regexp.MustCompile(`Background`)},
		{"second", regexp.MustCompile(`Background and`)},
	})
	if got["first"] != "" {
		t.Errorf("first span = %q, want empty (consumed by tie-break)", got["first"])
	}
	if got["second"] != "history" {
		t.Errorf("second span = %q, want %q", got["second"], "history")
	}
}

func TestSegmentStripsHeaderPhrase(t *testing.T) {
	seg := NewPositional()
	got := seg.Segment("Technical Skills: Go and Rust", []HeaderPattern{
		{"skills", regexp.MustCompile(`(?i)technical skills`)},
	})
	if got["skills"] != ": Go and Rust" {
		t.Errorf("skills span = %q", got["skills"])
	}
}

func TestSegmentEmptyText(t *testing.T) {
	seg := NewPositional()
	got := seg.Segment("", ResumeHeaders)
	if len(got) != 0 {
		t.Errorf("expected no sections for empty text, got %v", got)
	}
}

func TestFirstSpan(t *testing.T) {
	seg := NewPositional()
	span, ok := FirstSpan(seg, "Must have: Go, SQL", []string{"must have", "required skills"})
	if !ok {
		t.Fatal("expected a span")
	}
	if span != ": Go, SQL" {
		t.Errorf("span = %q", span)
	}

	if _, ok := FirstSpan(seg, "nothing relevant", []string{"must have"}); ok {
		t.Error("expected no span")
	}

	// A later synonym from the same set closes the span opened by the first.
	span, ok = FirstSpan(seg, "Must have: Go\nRequired skills appear below", []string{"must have", "required skills"})
	if !ok {
		t.Fatal("expected a span")
	}
	if span != ": Go" {
		t.Errorf("span = %q", span)
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	// Re-concatenating header text plus returned spans reconstructs the input
	// minus only the stripped header phrases.
	text := "Skills\nGo\nExperience\nAcme\nEducation\nMIT"
	seg := NewPositional()
	patterns := []HeaderPattern{
		{"skills", regexp.MustCompile(`Skills`)},
		{"experience", regexp.MustCompile(`Experience`)},
		{"education", regexp.MustCompile(`Education`)},
	}
	got := seg.Segment(text, patterns)
	rebuilt := "Skills\n" + got["skills"] + "\nExperience\n" + got["experience"] + "\nEducation\n" + got["education"]
	if rebuilt != text {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", rebuilt, text)
	}
}
