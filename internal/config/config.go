package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/acme/internal/app"
	"github.com/xolan/acme/internal/module"
	"github.com/xolan/acme/internal/osutil"
	"github.com/xolan/acme/internal/storage"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultCleanAfterDays is how old a generated day report must be before cleangen removes it
	DefaultCleanAfterDays = 7
)

var (
	// ErrUnknownKey is returned when a config file sets a key acme does not know
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidTimezone is returned when timezone is not Local or an IANA name
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidDirName is returned when a directory name is not a single path element
	ErrInvalidDirName = errors.New("invalid directory name")
	// ErrInvalidCleanAfterDays is returned when clean_after_days is negative
	ErrInvalidCleanAfterDays = errors.New("invalid clean_after_days")
	// ErrInvalidGlossary is returned for shortcuts or word replacements that cannot apply
	ErrInvalidGlossary = errors.New("invalid glossary")
)

// Config represents the application configuration
type Config struct {
	// Timezone resolves today/yesterday/month/year keywords (IANA timezone name or "Local")
	Timezone string `toml:"timezone"`
	// LogsDirName is the directory searched for when locating the metrics directory
	LogsDirName string `toml:"logs_dir_name"`
	// GenDirName receives generated CSV reports, next to the logs directory
	GenDirName string `toml:"gen_dir_name"`
	// AppDirName holds the per-metrics-directory config file, next to the logs directory
	AppDirName string `toml:"app_dir_name"`
	// Modules are the registered module names, in the order their transforms run
	Modules []string `toml:"modules"`
	// CleanAfterDays is the minimum age in days of day reports removed by cleangen
	CleanAfterDays int `toml:"clean_after_days"`
	// Theme is the color theme of the report browser; empty uses the built-in palette
	Theme string `toml:"theme"`
	// Glossary feeds the categorize and words modules
	Glossary module.Glossary `toml:"glossary"`
}

// DefaultConfig returns a Config with sensible defaults.
// - timezone: "Local"
// - logs/gen/app directory names: "logs", "gen", "app"
// - modules: categorize
// - clean_after_days: 7
func DefaultConfig() Config {
	return Config{
		Timezone:       "Local",
		LogsDirName:    storage.DefaultLogsDir,
		GenDirName:     storage.DefaultGenDir,
		AppDirName:     storage.DefaultAppDir,
		Modules:        []string{module.Categorize{}.Name()},
		CleanAfterDays: DefaultCleanAfterDays,
	}
}

// GetConfigPath returns the path to the global config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, app.Name)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file at path on top of the defaults, then normalizes
// and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.decodeFile(path); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when path does not exist.
// Any other stat failure is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// LoadLayered loads the global config file and then applies the keys set in the
// local one, so a metrics directory can override the user's settings.
// Either file may be missing.
func LoadLayered(global, local string) (Config, error) {
	cfg := DefaultConfig()
	for _, path := range []string{global, local} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, err
		}
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// Normalize trims whitespace, fills empty names with defaults and lowercases module names
func (c *Config) Normalize() {
	d := DefaultConfig()

	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}

	c.LogsDirName = orDefault(c.LogsDirName, d.LogsDirName)
	c.GenDirName = orDefault(c.GenDirName, d.GenDirName)
	c.AppDirName = orDefault(c.AppDirName, d.AppDirName)

	modules := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			modules = append(modules, m)
		}
	}
	c.Modules = modules
	c.Theme = strings.TrimSpace(c.Theme)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// Validate checks every field and returns the first problem found
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	for key, name := range map[string]string{
		"logs_dir_name": c.LogsDirName,
		"gen_dir_name":  c.GenDirName,
		"app_dir_name":  c.AppDirName,
	} {
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %s = %q", ErrInvalidDirName, key, name)
		}
	}

	if _, err := module.FromNames(c.Modules); err != nil {
		return err
	}

	if c.CleanAfterDays < 0 {
		return fmt.Errorf("%w: %d (must be 0 or more)", ErrInvalidCleanAfterDays, c.CleanAfterDays)
	}

	for i, s := range c.Glossary.Shortcuts {
		if len(s.Keys) == 0 {
			return fmt.Errorf("%w: shortcut %d has no keys", ErrInvalidGlossary, i+1)
		}
		for _, k := range s.Keys {
			if len(k) < 2 || !strings.HasPrefix(k, "$") {
				return fmt.Errorf("%w: shortcut key %q must start with $", ErrInvalidGlossary, k)
			}
		}
	}
	for i, w := range c.Glossary.Words {
		if strings.TrimSpace(w.From) == "" {
			return fmt.Errorf("%w: word %d has an empty from", ErrInvalidGlossary, i+1)
		}
	}

	return nil
}

// Location resolves Timezone
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}
	return loc, nil
}

// Names returns the metrics directory names
func (c Config) Names() storage.Names {
	return storage.Names{Logs: c.LogsDirName, Gen: c.GenDirName, App: c.AppDirName}
}

// Registry builds the module registry for Modules
func (c Config) Registry() (*module.Registry, error) {
	return module.FromNames(c.Modules)
}

// Context returns the glossary as the read-only module context
func (c Config) Context() module.Context {
	return module.NewContext(c.Glossary)
}

// Encode writes c as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// GenerateSampleConfig returns a sample configuration file with every option
// commented out.
func GenerateSampleConfig() string {
	return `# acme configuration file
#
# The global file lives in the user config directory. A config.toml inside the
# app directory of a metrics directory overrides the keys it sets.

# Timezone used to resolve today, yesterday, month and year.
# "Local" uses the system timezone. Examples: "America/New_York", "Europe/London", "Asia/Tokyo"
# timezone = "Local"

# Directory names inside the metrics directory. acme searches the working
# directory and its parents for the logs directory.
# logs_dir_name = "logs"
# gen_dir_name = "gen"
# app_dir_name = "app"

# Modules applied to every description, in order. Available: categorize (cat), words (wr)
# modules = ["categorize"]

# util cleangen removes generated day reports at least this many days old
# clean_after_days = 7

# Color theme of "acme view". Press T in the browser to pick one.
# theme = "dracula"

# Shortcuts expand inside a trailing category block, e.g. "(work, $m)"
# [[glossary.shortcuts]]
# keys = ["$m", "$meet"]
# value = "meeting"

# Whole-word replacements, case-insensitive
# [[glossary.words]]
# from = "k8s"
# to = "kubernetes"
`
}
