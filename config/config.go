package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSourceURL  = "https://roposo.com/collections/trending-now"
	DefaultSiteOrigin = "https://roposo.com"
	DefaultMarkup     = 2.5
	UserAgent         = "Mozilla/5.0"
)

// DefaultEnvFiles are tried in order when no env file is given explicitly.
var DefaultEnvFiles = []string{"web/.env", ".env"}

// Mode selects where products are written.
type Mode int

const (
	ModeDryRun Mode = iota
	ModeSupabase
	ModePostgres
)

func (m Mode) String() string {
	switch m {
	case ModeSupabase:
		return "supabase"
	case ModePostgres:
		return "postgres"
	default:
		return "dry-run"
	}
}

// Credentials are the hosted table endpoint and its access key.
type Credentials struct {
	URL string
	Key string
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SupabaseURL string
	SupabaseKey string
	DatabaseURL string

	SourceURL   string
	SiteOrigin  string
	Markup      float64
	HTTPTimeout time.Duration

	CSVOutputPath string
	DryRun        bool
	Verbose       bool
}

// Load seeds the environment from envFiles (DefaultEnvFiles when none are
// given) and returns a populated Config. Missing files are not an error.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			log.Printf("[config] %s not loaded, using system env vars", f)
		}
	}

	return &Config{
		SupabaseURL: firstEnv("VITE_SUPABASE_URL", "SUPABASE_URL"),
		SupabaseKey: firstEnv("VITE_SUPABASE_ANON_KEY", "SUPABASE_KEY"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		SourceURL:   getEnv("SOURCE_URL", DefaultSourceURL),
		SiteOrigin:  strings.TrimRight(getEnv("SITE_ORIGIN", DefaultSiteOrigin), "/"),
		Markup:      getEnvFloat("MARKUP", DefaultMarkup),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", 0)) * time.Second,

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", ""),
		DryRun:        getEnvBool("DRY_RUN", false),
		Verbose:       getEnvBool("VERBOSE", false),
	}
}

// Credentials returns the hosted table credentials. ok is false when either
// secret is missing, meaning no sink is available.
func (c *Config) Credentials() (creds *Credentials, ok bool) {
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		return nil, false
	}
	return &Credentials{URL: strings.TrimRight(c.SupabaseURL, "/"), Key: c.SupabaseKey}, true
}

// Mode reports which sink the run should use.
func (c *Config) Mode() Mode {
	if c.DryRun {
		return ModeDryRun
	}
	if _, ok := c.Credentials(); ok {
		return ModeSupabase
	}
	if c.DatabaseURL != "" {
		return ModePostgres
	}
	return ModeDryRun
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := os.Getenv(k); val != "" {
			return val
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
