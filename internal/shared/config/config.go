package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	Revision        string

	// Summarization engine defaults.
	DefaultEngine string
	LLMModel      string
	OpenAIKey     string
	OpenAIBaseURL string

	// Extraction and payload bounds.
	MaxPDFPages int
	MaxLLMChars int

	// Requests per minute allowed on the summarize route; 0 disables limiting.
	RateLimitRPM int
}

const (
	defaultMaxPDFPages = 25
	defaultMaxLLMChars = 100_000
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		Revision:        os.Getenv("K_REVISION"),
		DefaultEngine:   normalizeEngine(getEnv("SUMMARY_ENGINE", "heuristic")),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		MaxPDFPages:     getEnvInt("MAX_PDF_PAGES", defaultMaxPDFPages),
		MaxLLMChars:     getEnvInt("MAX_LLM_CHARS", defaultMaxLLMChars),
		RateLimitRPM:    getEnvInt("RATE_LIMIT_RPM", 0),
	}
}

// LLMEnabled reports whether the remote summarization path is configured.
func (c Config) LLMEnabled() bool {
	return strings.TrimSpace(c.OpenAIKey) != "" && strings.TrimSpace(c.LLMModel) != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "llm", "openai":
		return "llm"
	default:
		return "heuristic"
	}
}
