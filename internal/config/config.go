package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL       string
	SupabaseKey       string
	SupabaseTable     string
	SupabaseTimeoutMs int

	LocalXLSXPath string
	FilterIngreso bool

	DBPath    string
	OutputDir string

	CacheTTLMinutes int

	GeminiAPIKey string
	GeminiModel  string
}

func Load() (Config, error) {
	_ = godotenv.Load()
	// Secrets file fallback, for deployments where credentials are
	// mounted instead of exported. Already-set env vars win.
	if secrets := getEnv("SECRETS_FILE", "secrets.env"); secrets != "" {
		_ = godotenv.Load(secrets)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseKey:       getEnv("SUPABASE_KEY", ""),
		SupabaseTable:     getEnv("SUPABASE_TABLE", "empleos_dian"),
		SupabaseTimeoutMs: getEnvInt("SUPABASE_TIMEOUT_MS", 10000),

		LocalXLSXPath: getEnv("LOCAL_XLSX_PATH", filepath.Join(cwd, "EmpleosDIAN_2025.xlsx")),
		FilterIngreso: getEnvBool("FILTER_INGRESO", true),

		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 10),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
	}

	return cfg, nil
}

// RemoteConfigured reports whether the remote store can even be tried.
// Missing credentials are not an error, they just mean local mode.
func (c Config) RemoteConfigured() bool {
	return strings.TrimSpace(c.SupabaseURL) != "" && strings.TrimSpace(c.SupabaseKey) != ""
}

func (c Config) AIConfigured() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
