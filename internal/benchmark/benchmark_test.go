package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"resumatch/internal/config"
)

func TestStaticLookup(t *testing.T) {
	s := NewStatic()

	w := s.Weights("Technology")
	if w.Skills != 0.45 {
		t.Errorf("technology skills weight = %v", w.Skills)
	}
	r := s.Reference("finance")
	if r.Average != 72 || r.Top != 88 {
		t.Errorf("finance reference = %+v", r)
	}
}

func TestStaticUnknownIndustryFallsBack(t *testing.T) {
	s := NewStatic()

	if got := s.Canonical("retail"); got != DefaultIndustry {
		t.Errorf("Canonical(retail) = %q", got)
	}
	if w := s.Weights("retail"); w.Skills != 0.40 {
		t.Errorf("retail skills weight = %v", w.Skills)
	}
	if got := s.Canonical(""); got != DefaultIndustry {
		t.Errorf("Canonical(\"\") = %q", got)
	}
}

const testTable = `{
	"weights": {
		"Aerospace": {"skills": 0.5, "experience": 0.3, "education": 0.1, "format": 0.1}
	},
	"references": {
		"aerospace": {"average": 68, "top": 86}
	}
}`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileProviderOverridesAndFallsBack(t *testing.T) {
	p, err := NewFileProvider(writeTable(t, testTable), nil)
	if err != nil {
		t.Fatalf("NewFileProvider() = %v", err)
	}

	// Industry from the file, matched case-insensitively.
	if w := p.Weights("aerospace"); w.Skills != 0.5 {
		t.Errorf("aerospace skills weight = %v", w.Skills)
	}
	if got := p.Canonical("Aerospace"); got != "aerospace" {
		t.Errorf("Canonical(Aerospace) = %q", got)
	}
	if r := p.Reference("aerospace"); r.Top != 86 {
		t.Errorf("aerospace reference = %+v", r)
	}

	// Industry missing from the file falls back to the static tables.
	if w := p.Weights("technology"); w.Skills != 0.45 {
		t.Errorf("technology skills weight = %v", w.Skills)
	}
	if got := p.Canonical("retail"); got != DefaultIndustry {
		t.Errorf("Canonical(retail) = %q", got)
	}
}

func TestFileProviderRejectsBadWeights(t *testing.T) {
	bad := `{"weights": {"x": {"skills": 0.9, "experience": 0.9, "education": 0, "format": 0}}}`
	if _, err := NewFileProvider(writeTable(t, bad), nil); err == nil {
		t.Error("expected error for weights not summing to 1")
	}
}

func TestFileProviderRejectsBadReference(t *testing.T) {
	bad := `{"references": {"x": {"average": 90, "top": 70}}}`
	if _, err := NewFileProvider(writeTable(t, bad), nil); err == nil {
		t.Error("expected error for top below average")
	}
}

func TestFileProviderReloadKeepsOldTableOnError(t *testing.T) {
	path := writeTable(t, testTable)
	p, err := NewFileProvider(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(); err == nil {
		t.Fatal("expected reload error")
	}

	// Previous table still served.
	if w := p.Weights("aerospace"); w.Skills != 0.5 {
		t.Errorf("aerospace skills weight after failed reload = %v", w.Skills)
	}
}

func TestRemoteProviderRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(testTable)); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	p := NewRemoteProvider(config.RemoteBenchmarksConfig{
		URL:     srv.URL,
		Timeout: 5 * time.Second,
	}, nil)

	// Before the first fetch the static tables serve.
	if w := p.Weights("aerospace"); w.Skills != 0.40 {
		t.Errorf("pre-fetch aerospace skills weight = %v", w.Skills)
	}

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if w := p.Weights("aerospace"); w.Skills != 0.5 {
		t.Errorf("post-fetch aerospace skills weight = %v", w.Skills)
	}
	if !p.IsHealthy() {
		t.Error("provider should be healthy")
	}
}

func TestRemoteProviderBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewRemoteProvider(config.RemoteBenchmarksConfig{
		URL:     srv.URL,
		Timeout: 5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      2,
			FailureThreshold: 0.5,
		},
	}, nil)

	for i := 0; i < 3; i++ {
		if err := p.Refresh(context.Background()); err == nil {
			t.Fatal("expected refresh error")
		}
	}
	if p.IsHealthy() {
		t.Error("breaker should have opened")
	}

	// Static tables still serve while the breaker is open.
	if w := p.Weights("technology"); w.Skills != 0.45 {
		t.Errorf("technology skills weight = %v", w.Skills)
	}
}

func TestFileWatcherTriggersReload(t *testing.T) {
	path := writeTable(t, testTable)

	reloaded := make(chan struct{}, 1)
	fw, err := NewFileWatcher(path, 10*time.Millisecond, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := fw.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	defer func() {
		if err := fw.Stop(); err != nil {
			t.Errorf("Stop() = %v", err)
		}
	}()

	// The watcher compares mod times, so make sure it advances.
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte(testTable), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback not invoked")
	}
}
