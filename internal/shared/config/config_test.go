package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SUMMARY_ENGINE", "")
	t.Setenv("MAX_PDF_PAGES", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DefaultEngine != "heuristic" {
		t.Errorf("expected default engine heuristic, got %q", cfg.DefaultEngine)
	}
	if cfg.MaxPDFPages != 25 {
		t.Errorf("expected default max pages 25, got %d", cfg.MaxPDFPages)
	}
	if cfg.MaxLLMChars != 100_000 {
		t.Errorf("expected default llm char budget 100000, got %d", cfg.MaxLLMChars)
	}
	if cfg.LLMEnabled() {
		t.Error("expected LLM disabled without api key")
	}
}

func TestLoadEngineNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"llm", "llm"},
		{"OpenAI", "llm"},
		{"heuristic", "heuristic"},
		{"bogus", "heuristic"},
	}
	for _, tc := range tests {
		if got := normalizeEngine(tc.raw); got != tc.want {
			t.Errorf("normalizeEngine(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestLoadIntOverrides(t *testing.T) {
	t.Setenv("MAX_PDF_PAGES", "12")
	t.Setenv("MAX_LLM_CHARS", "not-a-number")

	cfg := Load()
	if cfg.MaxPDFPages != 12 {
		t.Errorf("expected max pages 12, got %d", cfg.MaxPDFPages)
	}
	if cfg.MaxLLMChars != 100_000 {
		t.Errorf("expected invalid override to fall back to default, got %d", cfg.MaxLLMChars)
	}
}

func TestLLMEnabled(t *testing.T) {
	cfg := Config{OpenAIKey: "sk-test", LLMModel: "gpt-4o-mini"}
	if !cfg.LLMEnabled() {
		t.Error("expected LLM enabled with key and model")
	}
	cfg.LLMModel = "  "
	if cfg.LLMEnabled() {
		t.Error("expected LLM disabled without model")
	}
}
