package config

import (
	"os"
	"strings"
)

// Render mounts secret files under /etc/secrets; local runs keep the
// credentials file next to the binary.
var credentialCandidates = []string{
	"/etc/secrets/credentials.json",
	"credentials.json",
}

// Config holds application configuration.
type Config struct {
	Port     string
	LogLevel string

	ModelProvider string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string

	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string

	DatabaseURL string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ModelProvider:   strings.ToLower(strings.TrimSpace(getEnv("MODEL_PROVIDER", "gemini"))),
		GeminiAPIKey:    CleanAPIKey(getEnv("GOOGLE_API_KEY", "")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey:    CleanAPIKey(getEnv("OPENAI_API_KEY", "")),
		OpenAIModel:     getEnv("OPENAI_MODEL", ""),
		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		SheetRange:      getEnv("SHEET_RANGE", "Leads!A:F"),
		CredentialsFile: resolveCredentialsFile(getEnv("GOOGLE_CREDENTIALS_FILE", ""), credentialCandidates),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
	}
}

// CleanAPIKey strips whitespace and stray quote characters that sneak into
// dashboard-pasted env values.
func CleanAPIKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ReplaceAll(key, `"`, "")
	key = strings.ReplaceAll(key, `'`, "")
	return key
}

// resolveCredentialsFile returns the explicit override when set, otherwise the
// first candidate path that exists. Falls back to the last candidate so the
// sheets client reports a useful open error instead of an empty path.
func resolveCredentialsFile(override string, candidates []string) string {
	if override != "" {
		return override
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[len(candidates)-1]
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
