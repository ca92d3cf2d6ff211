// Package config provides reading and writing of ffind configuration.
// Supports both global (~/.ffind/config.yaml) and local (.ffind/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/ffind/internal/glob"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.ffind/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .ffind/config.yaml
	ScopeLocal
)

// Search holds defaults for the search flags. Each is overridden by the
// matching command-line flag when that flag is given.
type Search struct {
	IgnoreCase *bool   `yaml:"ignore_case,omitempty"`
	Regex      *bool   `yaml:"regex,omitempty"`
	Extensions *string `yaml:"extensions,omitempty"`

	// Exclude replaces DefaultExcludes when set. An empty list disables
	// excludes entirely.
	Exclude *[]string `yaml:"exclude,omitempty"`

	Threads *int `yaml:"threads,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultThreads       = 1
	DefaultMaxLineLength = 10 * 1024 * 1024 // 10 MB
)

// Validation bounds for configuration values.
const (
	MinThreads       = 1
	MaxThreads       = 256
	MinMaxLineLength = 1
	MaxMaxLineLength = 1024 * 1024 * 1024 // 1 GB
)

// DefaultExcludes are skipped by every search unless configured otherwise
// or --no-default-excludes is given: dependency trees, build output, VCS
// metadata, caches and logs.
var DefaultExcludes = []string{
	".git", ".svn", ".hg",
	"node_modules", "bower_components", "vendor",
	"target", "build", "_build", "dist", "out",
	"__pycache__", ".pytest_cache", ".mypy_cache", ".tox",
	"venv", ".venv", "env",
	".idea", ".vscode",
	".cache", ".gradle", ".next", ".nuxt",
	"coverage",
	"*.log", "*.tmp",
}

// Config contains configuration for ffind.
type Config struct {
	Search Search `yaml:"search,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.Threads != nil {
		v := *c.Search.Threads
		if v < MinThreads || v > MaxThreads {
			return fmt.Errorf("%w: threads must be between %d and %d, got %d",
				ErrInvalidValue, MinThreads, MaxThreads, v)
		}
	}
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	if c.Search.Exclude != nil {
		if err := glob.Validate(*c.Search.Exclude); err != nil {
			return fmt.Errorf("%w: exclude: %w", ErrInvalidValue, err)
		}
	}
	return nil
}

// IgnoreCase returns the default for -i (defaults to false).
func (c *Config) IgnoreCase() bool {
	return c.Search.IgnoreCase != nil && *c.Search.IgnoreCase
}

// Regex returns the default for -r (defaults to false).
func (c *Config) Regex() bool {
	return c.Search.Regex != nil && *c.Search.Regex
}

// Extensions returns the default extension filter for grep ("" = all files).
func (c *Config) Extensions() string {
	if c.Search.Extensions == nil {
		return ""
	}
	return *c.Search.Extensions
}

// Excludes returns the exclude patterns: the configured list if set,
// otherwise DefaultExcludes.
func (c *Config) Excludes() []string {
	if c.Search.Exclude == nil {
		return append([]string(nil), DefaultExcludes...)
	}
	// Non-nil even when empty: an explicit empty list disables the defaults.
	return append([]string{}, *c.Search.Exclude...)
}

// Exclusions returns the patterns a search prunes: Excludes unless skipBase
// is set, followed by extra.
func (c *Config) Exclusions(extra []string, skipBase bool) []string {
	var out []string
	if !skipBase {
		out = c.Excludes()
	}
	return append(out, extra...)
}

// Threads returns the grep worker count (defaults to 1, sequential).
func (c *Config) Threads() int {
	if c.Search.Threads == nil {
		return DefaultThreads
	}
	return *c.Search.Threads
}

// MaxLineLength returns the maximum line length for scanning (defaults to 10 MB).
// Files with longer lines (minified JS/CSS, large JSON, base64 blobs)
// contribute no matches.
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".ffind", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.ffind/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ffind", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to path under an exclusive lock on
// path+".lock", replacing the file atomically so concurrent readers never
// see a partial write.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking config file: %w", err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
