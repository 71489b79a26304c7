package staticpress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a staticpress site.
type SiteConfig struct {
	Name        string `yaml:"name" json:"name"`               // Site name (default "My Blog")
	URL         string `yaml:"url" json:"url"`                 // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description" json:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author" json:"author"`           // Author name for JSON-LD
	Lang        string `yaml:"lang" json:"lang"`               // Document language (default "ja")

	ContentDir   string `yaml:"content_dir" json:"content_dir"`     // Post sources (default "posts")
	StaticDir    string `yaml:"static_dir" json:"static_dir"`       // User static assets (default "public")
	OutDir       string `yaml:"out_dir" json:"out_dir"`             // Build output (default "dist")
	DatabasePath string `yaml:"database_path" json:"database_path"` // Build index (default ".staticpress/index.db")

	Addr          string `yaml:"addr" json:"addr"`                     // Dev server address (default ":3000")
	PreviewSecret string `yaml:"preview_secret" json:"preview_secret"` // Enables /__preview/ when set
	SessionSecret string `yaml:"session_secret" json:"session_secret"` // Required with PreviewSecret
	CookieSecure  bool   `yaml:"cookie_secure" json:"cookie_secure"`   // Set true for HTTPS

	Drafts        bool     `yaml:"drafts" json:"drafts"`                   // Include drafts in builds
	Compress      []string `yaml:"compress" json:"compress"`               // Precompressed siblings: "gzip", "zstd"
	MaxImageWidth int      `yaml:"max_image_width" json:"max_image_width"` // Wider static images are scaled down (default 1600, <0 disables)
	CodeStyle     string   `yaml:"code_style" json:"code_style"`           // chroma style (default "github")

	PostCacheTTL time.Duration `yaml:"-" json:"-"` // Post cache TTL (default 5min)
	CacheTTL     string        `yaml:"cache_ttl" json:"cache_ttl"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "My Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Lang == "" {
		c.Lang = "ja"
	}
	if c.ContentDir == "" {
		c.ContentDir = "posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutDir == "" {
		c.OutDir = "dist"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(".staticpress", "index.db")
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.MaxImageWidth == 0 {
		c.MaxImageWidth = 1600
	}
	if c.CodeStyle == "" {
		c.CodeStyle = "github"
	}
	if c.PostCacheTTL == 0 {
		if d, err := time.ParseDuration(c.CacheTTL); err == nil && d > 0 {
			c.PostCacheTTL = d
		} else {
			c.PostCacheTTL = 5 * time.Minute
		}
	}
}

func (c *SiteConfig) validate() error {
	for _, m := range c.Compress {
		if m != "gzip" && m != "zstd" {
			return fmt.Errorf("staticpress: unknown compression %q (want gzip or zstd)", m)
		}
	}
	if c.CacheTTL != "" {
		if _, err := time.ParseDuration(c.CacheTTL); err != nil {
			return fmt.Errorf("staticpress: cache_ttl: %w", err)
		}
	}
	return nil
}

// LoadConfigFile reads a site configuration from a YAML (.yaml, .yml) or
// JSON with comments (.json, .jsonc) file. Unset fields keep their zero
// value; New applies the defaults.
func LoadConfigFile(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("staticpress: read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		return cfg, fmt.Errorf("staticpress: %s: unsupported config format", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("staticpress: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the SITE_* environment variables that are
// set.
func ApplyEnv(cfg *SiteConfig) {
	str := map[string]*string{
		"SITE_NAME":           &cfg.Name,
		"SITE_URL":            &cfg.URL,
		"SITE_DESCRIPTION":    &cfg.Description,
		"SITE_AUTHOR":         &cfg.Author,
		"SITE_LANG":           &cfg.Lang,
		"SITE_CONTENT_DIR":    &cfg.ContentDir,
		"SITE_STATIC_DIR":     &cfg.StaticDir,
		"SITE_OUT_DIR":        &cfg.OutDir,
		"SITE_DATABASE_PATH":  &cfg.DatabasePath,
		"SITE_ADDR":           &cfg.Addr,
		"SITE_PREVIEW_SECRET": &cfg.PreviewSecret,
		"SITE_SESSION_SECRET": &cfg.SessionSecret,
		"SITE_CODE_STYLE":     &cfg.CodeStyle,
		"SITE_CACHE_TTL":      &cfg.CacheTTL,
	}
	for key, dst := range str {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if v, err := strconv.ParseBool(os.Getenv("SITE_COOKIE_SECURE")); err == nil {
		cfg.CookieSecure = v
	}
	if v, err := strconv.ParseBool(os.Getenv("SITE_DRAFTS")); err == nil {
		cfg.Drafts = v
	}
	if v, err := strconv.Atoi(os.Getenv("SITE_MAX_IMAGE_WIDTH")); err == nil {
		cfg.MaxImageWidth = v
	}
	if v := os.Getenv("SITE_COMPRESS"); v != "" {
		cfg.Compress = FilterEmpty(strings.Split(v, ","))
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithViews replaces the page templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithLogger sets the destination of build and watch progress messages.
func WithLogger(l Logger) Option {
	return func(a *App) {
		a.log = l
	}
}
