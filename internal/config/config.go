// Package config provides configuration types and defaults for gofcat.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	appcatalog "github.com/zjrosen/gofcat/internal/application/catalog"
	"github.com/zjrosen/gofcat/internal/log"
	"github.com/zjrosen/gofcat/internal/presentation"
	"github.com/zjrosen/gofcat/internal/ui/markdown"
)

// Config holds all configuration options for gofcat.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Output  OutputConfig  `mapstructure:"output"`
	UI      UIConfig      `mapstructure:"ui"`
}

// CatalogConfig controls where catalog entries are loaded from.
type CatalogConfig struct {
	// LoadUser enables the user catalog overlay.
	// Default: true
	LoadUser bool `mapstructure:"load_user"`

	// UserDir is the directory containing the user "catalog" subdirectory.
	// Default: ~/.gofcat
	UserDir string `mapstructure:"user_dir"`
}

// OutputConfig holds list/show output options.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "table" (default), "json", or "text"
	Width  int    `mapstructure:"width"`  // wrap width for text, table and markdown output
}

// UIConfig holds write-up rendering options.
type UIConfig struct {
	MarkdownStyle  string        `mapstructure:"markdown_style"`   // "auto" (default), "dark", "light", or "notty"
	RenderCacheTTL time.Duration `mapstructure:"render_cache_ttl"` // 0 disables the render cache

	// RenderCacheFile keeps rendered write-ups between runs.
	// Default: <user cache dir>/gofcat/render-cache.gob
	RenderCacheFile string `mapstructure:"render_cache_file"`
}

// UserCatalogDir returns the user catalog directory to load, or empty string when disabled.
func (c Config) UserCatalogDir() string {
	if !c.Catalog.LoadUser {
		return ""
	}
	return ExpandHome(c.Catalog.UserDir)
}

// RenderCachePath returns the file rendered write-ups are saved to, or empty
// string when the render cache is disabled.
func (c Config) RenderCachePath() string {
	if c.UI.RenderCacheTTL <= 0 {
		return ""
	}
	return ExpandHome(c.UI.RenderCacheFile)
}

// DefaultRenderCacheFile returns <user cache dir>/gofcat/render-cache.gob,
// or empty string when the platform has no cache directory.
func DefaultRenderCacheFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gofcat", "render-cache.gob")
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn(log.CatConfig, "Cannot expand ~ without a home directory", "path", path)
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			LoadUser: true,
			UserDir:  appcatalog.UserCatalogBaseDir(),
		},
		Output: OutputConfig{
			Format: presentation.FormatTable,
			Width:  100,
		},
		UI: UIConfig{
			MarkdownStyle:   markdown.StyleAuto,
			RenderCacheTTL:  10 * time.Minute,
			RenderCacheFile: DefaultRenderCacheFile(),
		},
	}
}

// Validate checks the configuration for unsupported values.
func Validate(cfg Config) error {
	if !presentation.ValidFormat(cfg.Output.Format) {
		return fmt.Errorf("output.format: %w: %q", presentation.ErrUnknownFormat, cfg.Output.Format)
	}
	if cfg.Output.Width < 20 {
		return fmt.Errorf("output.width must be at least 20, got %d", cfg.Output.Width)
	}
	if !markdown.ValidStyle(cfg.UI.MarkdownStyle) {
		return fmt.Errorf("ui.markdown_style: %w: %q", markdown.ErrUnknownStyle, cfg.UI.MarkdownStyle)
	}
	if cfg.UI.RenderCacheTTL < 0 {
		return fmt.Errorf("ui.render_cache_ttl cannot be negative, got %s", cfg.UI.RenderCacheTTL)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# gofcat Configuration

# Catalog sources
catalog:
  # Load extra patterns from <user_dir>/catalog/*/catalog.yaml
  load_user: true
  # user_dir: ~/.gofcat   # Default: ~/.gofcat

# Output settings for list, show and categories
output:
  format: table   # table (default), json, or text
  width: 100      # Wrap/truncate width for terminal output

# Write-up rendering (gofcat doc <pattern>)
ui:
  markdown_style: auto      # auto (default), dark, light, or notty
  render_cache_ttl: 10m     # How long rendered write-ups are reused across runs; 0 disables
  # render_cache_file: ~/.cache/gofcat/render-cache.gob   # Default: user cache dir
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
