package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{Tagger: "prose"},
		Benchmarks: BenchmarksConfig{
			Remote: RemoteBenchmarksConfig{Timeout: 10 * time.Second},
		},
		Store: StoreConfig{Enabled: true, Path: ":memory:"},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
		},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidateRejectsUnknownTagger(t *testing.T) {
	cfg := validConfig()
	cfg.Analysis.Tagger = "spacy"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "tagger") {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateRequiresRemoteURL(t *testing.T) {
	cfg := validConfig()
	cfg.Benchmarks.Remote.Enabled = true
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "URL") {
		t.Errorf("Validate() = %v", err)
	}
	cfg.Benchmarks.Remote.URL = "http://benchmarks.local/industries"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with URL = %v", err)
	}
}

func TestValidateRequiresStorePath(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "store path") {
		t.Errorf("Validate() = %v", err)
	}
	cfg.Store.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with store disabled = %v", err)
	}
}

func TestValidateRejectsUnsupportedDefaultFormat(t *testing.T) {
	cfg := validConfig()
	cfg.App.DefaultFormat = "yaml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "format") {
		t.Errorf("Validate() = %v", err)
	}
}

func TestAPIKeyFallbackFromEnv(t *testing.T) {
	t.Setenv("RESUMATCH_SERVER_APIKEYS", "key-one, key-two")

	cfg := validConfig()
	cfg.applyFallbacks()

	if len(cfg.Server.APIKeys) != 2 || cfg.Server.APIKeys[1] != "key-two" {
		t.Errorf("APIKeys = %v", cfg.Server.APIKeys)
	}
}

func TestServiceInstanceGenerated(t *testing.T) {
	cfg := validConfig()
	cfg.Observability.ServiceName = "resumatch"
	cfg.applyFallbacks()

	if !strings.HasPrefix(cfg.Observability.ServiceInstance, "resumatch-") {
		t.Errorf("ServiceInstance = %q", cfg.Observability.ServiceInstance)
	}
}
