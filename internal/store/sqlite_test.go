package store

import (
	"context"
	"testing"

	"resumatch/internal/types"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite() = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() = %v", err)
		}
	})
	return s
}

func sampleResult(overall float64, title string) types.AnalysisResult {
	return types.AnalysisResult{
		Resume: types.StructuredResume{
			Contact: types.ContactInfo{Name: "John Smith", Email: "john@example.com"},
			Skills:  []string{"Go", "Docker"},
		},
		JobDescription: types.StructuredJobDescription{
			JobTitle: title,
			Industry: "technology",
		},
		Scores: types.ScoreBreakdown{
			OverallScore: overall,
			Industry:     "technology",
		},
		Recommendations: []types.Recommendation{
			{Title: "Add Missing Required Skills", Priority: 1, Category: "skills_gap"},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, sampleResult(82.5, "Backend Engineer"), "session-1")
	if err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if id == 0 {
		t.Fatal("Save() returned id 0")
	}

	rec, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if rec.UserSession != "session-1" {
		t.Errorf("UserSession = %q", rec.UserSession)
	}
	if rec.Result.Resume.Contact.Name != "John Smith" {
		t.Errorf("resume name = %q", rec.Result.Resume.Contact.Name)
	}
	if rec.Result.JobDescription.JobTitle != "Backend Engineer" {
		t.Errorf("job title = %q", rec.Result.JobDescription.JobTitle)
	}
	if rec.Result.Scores.OverallScore != 82.5 {
		t.Errorf("overall = %v", rec.Result.Scores.OverallScore)
	}
	if len(rec.Result.Recommendations) != 1 {
		t.Errorf("recommendations = %+v", rec.Result.Recommendations)
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Get(context.Background(), 42); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestHistoryNewestFirstWithSessionFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, title := range []string{"First", "Second", "Third"} {
		session := "a"
		if i == 1 {
			session = "b"
		}
		if _, err := s.Save(ctx, sampleResult(float64(60+i), title), session); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.History(ctx, "", 0)
	if err != nil {
		t.Fatalf("History() = %v", err)
	}
	if len(all) != 3 || all[0].JobTitle != "Third" || all[2].JobTitle != "First" {
		t.Errorf("history = %+v", all)
	}

	filtered, err := s.History(ctx, "a", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 2 || filtered[0].JobTitle != "Third" {
		t.Errorf("filtered history = %+v", filtered)
	}

	limited, err := s.History(ctx, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].JobTitle != "Third" {
		t.Errorf("limited history = %+v", limited)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() = %v", err)
	}
	if empty.TotalResults != 0 || empty.AverageScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []float64{60, 80} {
		if _, err := s.Save(ctx, sampleResult(score, "Role"), ""); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalResults != 2 || stats.AverageScore != 70 || stats.BestScore != 80 {
		t.Errorf("stats = %+v", stats)
	}
}
