package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "gutlog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write gutlog.yaml: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
Name: gutlog-api
Host: 0.0.0.0
Port: 8888
Env: test
DataFile: data/gutlog.json
RangeDays: 14
TriggerThreshold: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "test" || !cfg.IsTestEnv() {
		t.Fatalf("Env not parsed, got %q", cfg.Env)
	}
	if cfg.RangeDays != 14 {
		t.Fatalf("RangeDays got %d", cfg.RangeDays)
	}
	if cfg.TriggerThreshold != 5 {
		t.Fatalf("TriggerThreshold got %d", cfg.TriggerThreshold)
	}
	if cfg.BaseDir() != dir {
		t.Fatalf("BaseDir got %q want %q", cfg.BaseDir(), dir)
	}
	if cfg.LLM.Value != nil {
		t.Fatalf("LLM section should stay empty without a file")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
Name: gutlog-api
Host: 0.0.0.0
Port: 8888
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "dev" {
		t.Fatalf("default Env got %q", cfg.Env)
	}
	if cfg.DataFile != "data/gutlog.json" {
		t.Fatalf("default DataFile got %q", cfg.DataFile)
	}
	if cfg.RangeDays != 7 || cfg.TriggerThreshold != 6 {
		t.Fatalf("defaults got rangeDays=%d triggerThreshold=%d", cfg.RangeDays, cfg.TriggerThreshold)
	}
}

func TestLoadHydratesSections(t *testing.T) {
	dir := t.TempDir()

	llmYAML := []byte(`
base_url: ${GUTLOG_TEST_BASE_URL}
api_key: ${GUTLOG_TEST_API_KEY}
timeout: 2s
`)
	if err := os.WriteFile(filepath.Join(dir, "llm.yaml"), llmYAML, 0o600); err != nil {
		t.Fatalf("write llm.yaml: %v", err)
	}
	analysisYAML := []byte(`
model: gpt-4o
max_completion_tokens: 2000
`)
	if err := os.WriteFile(filepath.Join(dir, "analysis.yaml"), analysisYAML, 0o600); err != nil {
		t.Fatalf("write analysis.yaml: %v", err)
	}

	t.Setenv("GUTLOG_TEST_BASE_URL", "https://llm.example/v1")
	t.Setenv("GUTLOG_TEST_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LLM_BASE_URL", "")

	path := writeConfig(t, dir, `
Name: gutlog-api
Host: 0.0.0.0
Port: 8888
LLM:
  File: llm.yaml
Analysis:
  File: analysis.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Value == nil {
		t.Fatalf("LLM section not hydrated")
	}
	if got := cfg.LLM.Value.BaseURL; got != "https://llm.example/v1" {
		t.Fatalf("LLM.BaseURL not expanded, got %q", got)
	}
	if got := cfg.LLM.Value.APIKey; got != "test-key" {
		t.Fatalf("LLM.APIKey not expanded, got %q", got)
	}
	if cfg.Analysis.Value == nil || cfg.Analysis.Value.Model != "gpt-4o" {
		t.Fatalf("Analysis section not hydrated: %+v", cfg.Analysis.Value)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Env: "dev", DataFile: "data/gutlog.json", RangeDays: 7, TriggerThreshold: 6}

	cfg := base
	cfg.Env = "staging"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected env validation error")
	}

	cfg = base
	cfg.DataFile = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected dataFile validation error")
	}

	cfg = base
	cfg.RangeDays = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected rangeDays validation error")
	}

	cfg = base
	cfg.TriggerThreshold = 11
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected triggerThreshold validation error")
	}
}
