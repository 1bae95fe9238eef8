package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ruminaider/selectkit/internal/scroll"
	"github.com/ruminaider/selectkit/internal/selector"
	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Default and Save.
const CurrentVersion = "1.0.0"

// Submit modes.
const (
	// SubmitModeSubmit applies only on an explicit apply; closing cancels.
	SubmitModeSubmit = "submit"
	// SubmitModeLeave applies whenever the menu closes.
	SubmitModeLeave = "leave"
)

// DefaultPlaceholder is the search field placeholder.
const DefaultPlaceholder = "Search Value"

var (
	ErrInvalidSubmitMode = errors.New("submit_mode must be \"submit\" or \"leave\"")
	ErrNoItems           = errors.New("no items")
)

// Config represents ~/.selectkit/config.yaml.
type Config struct {
	Version        string `yaml:"version"`
	Placeholder    string `yaml:"placeholder,omitempty"`
	Freeform       bool   `yaml:"freeform"`
	GroupSelect    bool   `yaml:"group_select"`
	InfiniteScroll bool   `yaml:"infinite_scroll"`
	// ExternalSearch forwards queries to the host instead of only filtering
	// locally. The CLI has no remote source, so it only affects the TUI API.
	ExternalSearch bool `yaml:"external_search,omitempty"`

	CollapseCount  int      `yaml:"collapse_count,omitempty"`
	CollapseGroups []string `yaml:"collapse_groups,omitempty"`

	LimitCount          int               `yaml:"limit_count,omitempty"`
	DisabledValues      []string          `yaml:"disabled_values,omitempty"`
	GroupDisableMessage string            `yaml:"group_disable_message,omitempty"`
	GroupMessages       map[string]string `yaml:"group_messages,omitempty"`
	HasDescription      bool              `yaml:"has_description,omitempty"`

	SubmitMode       string `yaml:"submit_mode"`
	ScrollPadding    int    `yaml:"scroll_padding"`
	ScrollThrottleMS int    `yaml:"scroll_throttle_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:          CurrentVersion,
		Placeholder:      DefaultPlaceholder,
		SubmitMode:       SubmitModeSubmit,
		ScrollPadding:    scroll.DefaultPadding,
		ScrollThrottleMS: int(scroll.DefaultThrottle / time.Millisecond),
	}
}

// Parse parses config.yaml bytes. Keys missing from data keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save validates cfg and writes it to path, creating the directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.SubmitMode != SubmitModeSubmit && c.SubmitMode != SubmitModeLeave {
		return fmt.Errorf("%w: got %q", ErrInvalidSubmitMode, c.SubmitMode)
	}
	if c.LimitCount < 0 {
		return fmt.Errorf("limit_count must not be negative: %d", c.LimitCount)
	}
	if c.CollapseCount < 0 {
		return fmt.Errorf("collapse_count must not be negative: %d", c.CollapseCount)
	}
	if c.ScrollPadding < 0 || c.ScrollThrottleMS < 0 {
		return fmt.Errorf("scroll settings must not be negative")
	}
	return nil
}

// SelectorOptions maps the config onto the selection core.
func (c Config) SelectorOptions() selector.Options {
	return selector.Options{
		Freeform:       c.Freeform,
		GroupSelect:    c.GroupSelect,
		InfiniteScroll: c.InfiniteScroll,
		Collapse: selector.CollapsePolicy{
			Count:     c.CollapseCount,
			Whitelist: c.CollapseGroups,
		},
		LimitCount:     c.LimitCount,
		DisabledValues: c.DisabledValues,
	}
}

// ScrollOptions maps the config onto the scroll-end detector.
func (c Config) ScrollOptions() []scroll.Option {
	return []scroll.Option{
		scroll.WithPadding(c.ScrollPadding),
		scroll.WithThrottle(time.Duration(c.ScrollThrottleMS) * time.Millisecond),
	}
}

// Leave reports whether closing the menu submits.
func (c Config) Leave() bool {
	return c.SubmitMode == SubmitModeLeave
}
