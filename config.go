package portfolio

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/profile"
)

// SiteConfig holds all configuration for the portfolio site.
type SiteConfig struct {
	Name        string // Site name
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and the footer
	ThemeColor  string // Manifest and <meta name="theme-color">

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for contact messages (default "data/portfolio.db")
	ProfilePath  string // Optional YAML profile overriding the built-in one

	AirtableToken  string
	AirtableBaseID string
	AirtableTable  string // default "Blog Posts"
	AirtableAPIURL string // default "https://api.airtable.com/v0"

	AdminUsername string
	AdminPassword string
	SessionSecret string // Random per process when empty
	CookieSecure  bool   // Set true for HTTPS

	PostCacheTTL       time.Duration // 0 disables the post cache
	CORSAllowedOrigins []string      // Empty disables CORS on /api/
	LogLevel           string        // debug, info, warn, error, off
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Juliano Coutinho - Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Author == "" {
		c.Author = "Juliano Coutinho"
	}
	if c.ThemeColor == "" {
		c.ThemeColor = "#00ff00"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.AirtableTable == "" {
		c.AirtableTable = "Blog Posts"
	}
	if c.PostCacheTTL < 0 {
		c.PostCacheTTL = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// AirtableConfigured reports whether both Airtable credentials are set.
func (c SiteConfig) AirtableConfigured() bool {
	return c.AirtableToken != "" && c.AirtableBaseID != ""
}

// ConfigFromEnv loads .env (when present) and reads the configuration from
// the environment.
func ConfigFromEnv() SiteConfig {
	_ = godotenv.Load()

	return SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         EnvOr("SITE_URL", "http://localhost:3000"),
		Description: EnvOr("SITE_DESCRIPTION", "Full-stack developer specializing in Next.js, Node.js, Ruby on Rails, and marketing automation."),
		Author:      os.Getenv("SITE_AUTHOR"),

		Addr:         EnvOr("ADDR", ":3000"),
		DatabasePath: EnvOr("DATABASE_PATH", "data/portfolio.db"),
		ProfilePath:  os.Getenv("PROFILE_PATH"),

		AirtableToken:  strings.TrimSpace(os.Getenv("AIRTABLE_TOKEN")),
		AirtableBaseID: strings.TrimSpace(os.Getenv("AIRTABLE_BASE_ID")),
		AirtableTable:  EnvOr("AIRTABLE_TABLE", "Blog Posts"),
		AirtableAPIURL: os.Getenv("AIRTABLE_API_URL"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieSecure:  EnvBool("COOKIE_SECURE", false),

		PostCacheTTL:       EnvDuration("POST_CACHE_TTL", time.Minute),
		CORSAllowedOrigins: SplitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           EnvOr("LOG_LEVEL", "info"),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// EnvBool parses key with strconv.ParseBool, returning fallback when unset
// or malformed.
func EnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// EnvDuration parses key as a Go duration ("90s", "5m"). A bare integer is
// read as seconds.
func EnvDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

// SplitCSV splits a comma separated list, dropping blanks.
func SplitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Option configures additional App behavior.
type Option func(*App)

// WithRecordStore replaces the Airtable-backed post store.
func WithRecordStore(s posts.RecordStore) Option {
	return func(a *App) {
		a.recordStore = s
	}
}

// WithProfile replaces the profile content shown on the home page.
func WithProfile(p profile.Profile) Option {
	return func(a *App) {
		a.Profile = p
		a.profileSet = true
	}
}

// WithViews overrides some or all page components. Nil fields keep the
// built-in views.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = a.Views.merge(v)
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
