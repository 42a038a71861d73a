// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. PLY_DATA_DIR.
const EnvPrefix = "PLY_"

const (
	// DefaultDaysToGhost is how long an active application may sit in one stage before it
	// is listed as ghosted.
	DefaultDaysToGhost  = 90
	DefaultFetchTimeout = 30 * time.Second
)

// FetchSettings configures how listings are fetched.
type FetchSettings struct {
	Timeout    time.Duration `yaml:"timeout,omitempty" env:"TIMEOUT"`
	UserAgent  string        `yaml:"user_agent,omitempty" env:"USER_AGENT"`
	UseBrowser bool          `yaml:"use_browser,omitempty" env:"USE_BROWSER"` // Render pages in headless Chrome
}

// Settings holds the values that can also be overridden from the environment.
type Settings struct {
	DataDir     string        `yaml:"data_dir,omitempty" env:"DATA_DIR"`
	DaysToGhost int           `yaml:"days_to_ghost,omitempty" env:"DAYS_TO_GHOST"`
	Verbose     bool          `yaml:"verbose,omitempty" env:"VERBOSE"`
	Fetch       FetchSettings `yaml:"fetch,omitempty" envPrefix:"FETCH_"`
}

// Board describes a job board handled by the configurable "mini" extraction strategy.
type Board struct {
	Name           string `yaml:"name"`
	Domain         string `yaml:"domain"`
	Company        string `yaml:"company,omitempty"`
	TitleSelector  string `yaml:"title_selector,omitempty"`
	TitlePattern   string `yaml:"title_pattern,omitempty"`   // Must have a "title" group
	SalarySelector string `yaml:"salary_selector,omitempty"` // CSS selector of the salary text
	SalaryPattern  string `yaml:"salary_pattern,omitempty"`  // Regexp over the page when no selector is set
}

// Config is the ply configuration file.
type Config struct {
	Settings `yaml:",inline"`
	Boards   []Board `yaml:"boards,omitempty"`

	// Path is the file the configuration was read from. It is empty when defaults were used.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Settings: Settings{
			DataDir:     DefaultDataDir(),
			DaysToGhost: DefaultDaysToGhost,
			Fetch: FetchSettings{
				Timeout: DefaultFetchTimeout,
			},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ply/config.yaml, falling back to the platform's
// user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".ply", "config.yaml")
	}
	return filepath.Join(dir, "ply", "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/ply, falling back to ~/.local/share/ply.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "ply")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".local", "share", "ply")
}

// Load reads the configuration file at path, applies PLY_* environment overrides and
// validates the result. With an empty path the default location is used and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else {
		cfg.Path = path
	}

	if err := env.ParseWithOptions(&cfg.Settings, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config error: 'data_dir' must not be empty")
	}
	if c.DaysToGhost <= 0 {
		return fmt.Errorf("config error: 'days_to_ghost' must be positive")
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("config error: 'fetch.timeout' must be non-negative")
	}

	domains := make(map[string]bool, len(c.Boards))
	names := make(map[string]bool, len(c.Boards))
	for i, b := range c.Boards {
		if err := b.validate(); err != nil {
			return fmt.Errorf("config error: boards[%d]: %w", i, err)
		}
		domain := strings.ToLower(b.Domain)
		if domains[domain] {
			return fmt.Errorf("config error: boards[%d]: duplicate domain %q", i, b.Domain)
		}
		if names[b.Name] {
			return fmt.Errorf("config error: boards[%d]: duplicate name %q", i, b.Name)
		}
		domains[domain] = true
		names[b.Name] = true
	}
	return nil
}

func (b Board) validate() error {
	if b.Name == "" {
		return errors.New("'name' is required")
	}
	if b.Domain == "" {
		return errors.New("'domain' is required")
	}
	if b.SalarySelector != "" && b.SalaryPattern != "" {
		return errors.New("'salary_selector' and 'salary_pattern' are mutually exclusive")
	}

	titlePattern, err := b.CompileTitlePattern()
	if err != nil {
		return err
	}
	if titlePattern != nil && titlePattern.SubexpIndex("title") < 0 {
		return errors.New("'title_pattern' must have a named group 'title'")
	}
	if b.Company == "" && (titlePattern == nil || titlePattern.SubexpIndex("company") < 0) {
		return errors.New("'company' is required unless 'title_pattern' has a 'company' group")
	}
	if _, err := b.CompileSalaryPattern(); err != nil {
		return err
	}
	return nil
}

// CompileTitlePattern compiles the board's title pattern. It returns nil when unset.
func (b Board) CompileTitlePattern() (*regexp.Regexp, error) {
	return compileOptional("title_pattern", b.TitlePattern)
}

// CompileSalaryPattern compiles the board's salary pattern. It returns nil when unset.
func (b Board) CompileSalaryPattern() (*regexp.Regexp, error) {
	return compileOptional("salary_pattern", b.SalaryPattern)
}

func compileOptional(field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s': %w", field, err)
	}
	return re, nil
}
