package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Completion service
	GeminiAPIKey      string
	ModelName         string
	CompletionTimeout time.Duration
	UseMockLLM        bool

	// Environment gate
	AllowedOrigins       []string
	DeniedOriginPatterns []string

	// Profile enrichment
	GitHubUser         string
	GitHubAPIBase      string
	EnrichmentDisabled bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getCSVEnv(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("ASSISTANT_PORT", "8080"),

		GeminiAPIKey: getEnv("ASSISTANT_GEMINI_API_KEY", ""),
		ModelName:    getEnv("ASSISTANT_MODEL_NAME", "gemini-2.5-flash"),
		UseMockLLM:   getBoolEnv("ASSISTANT_USE_MOCK_LLM", false),

		AllowedOrigins: getCSVEnv("ASSISTANT_ALLOWED_ORIGINS", []string{
			"juanmafdez.dev",
			"www.juanmafdez.dev",
			"ju4nmafd3z.github.io",
			"localhost",
			"127.0.0.1",
		}),
		DeniedOriginPatterns: getCSVEnv("ASSISTANT_DENIED_ORIGIN_PATTERNS", []string{
			"stackblitz",
			"webcontainer",
			"usercontent.goog",
			"csb.app",
		}),

		GitHubUser:         getEnv("ASSISTANT_GITHUB_USER", "Ju4nmaFd3z"),
		GitHubAPIBase:      getEnv("ASSISTANT_GITHUB_API_BASE", "https://api.github.com"),
		EnrichmentDisabled: getBoolEnv("ASSISTANT_ENRICHMENT_DISABLED", false),
	}

	timeoutSecs, err := strconv.Atoi(getEnv("ASSISTANT_COMPLETION_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSecs <= 0 {
		timeoutSecs = 30
	}
	cfg.CompletionTimeout = time.Duration(timeoutSecs) * time.Second

	// Minimal validation: a real key is only needed when not mocking.
	if !cfg.UseMockLLM && cfg.GeminiAPIKey == "" {
		log.Fatal("ASSISTANT_GEMINI_API_KEY must be set (or enable ASSISTANT_USE_MOCK_LLM)")
	}

	return cfg
}
