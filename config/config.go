// Package config loads gitscribe's optional repo-local TOML configuration
// and layers defaults under it.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/dylan/gitscribe/journal"
	"github.com/dylan/gitscribe/scribe"
)

// DefaultIntervalMinutes is the poll cadence used when neither the config
// file nor the flag sets one.
const DefaultIntervalMinutes = 1.5

// FileName is the config file looked up at the worktree root.
const FileName = ".gitscribe.toml"

// Config mirrors the TOML schema. Zero values mean "unset"; the Resolved*
// accessors fold in defaults.
type Config struct {
	IntervalMinutes float64             `toml:"interval_minutes,omitempty"`
	Push            *bool               `toml:"push,omitempty"`
	Ignore          []string            `toml:"ignore,omitempty"`
	Categories      map[string][]string `toml:"categories,omitempty"`
	Indicators      IndicatorRules      `toml:"indicators,omitempty"`
}

// IndicatorRules overrides the diff-analysis rule lists per category.
// A non-empty list replaces the built-in one wholesale.
type IndicatorRules struct {
	Notebooks []RuleConfig `toml:"notebooks,omitempty"`
	Code      []RuleConfig `toml:"code,omitempty"`
}

// RuleConfig is one ordered indicator rule. A rule hits when any "any"
// substring and every "all" substring appear in the diff.
type RuleConfig struct {
	Indicator string   `toml:"indicator"`
	Any       []string `toml:"any,omitempty"`
	All       []string `toml:"all,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config")
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.IntervalMinutes < 0 {
		return errors.Newf("interval_minutes must be positive, got %v", c.IntervalMinutes)
	}

	rules := make([]RuleConfig, 0, len(c.Indicators.Notebooks)+len(c.Indicators.Code))
	rules = append(rules, c.Indicators.Notebooks...)
	rules = append(rules, c.Indicators.Code...)
	for _, r := range rules {
		if r.Indicator == "" {
			return errors.New("indicator rule is missing its indicator phrase")
		}
		if len(r.Any) == 0 && len(r.All) == 0 {
			return errors.Newf("indicator rule %q has no substrings to match", r.Indicator)
		}
	}
	return nil
}

// ResolvedInterval returns the poll interval as a duration.
func (c Config) ResolvedInterval() time.Duration {
	minutes := c.IntervalMinutes
	if minutes == 0 {
		minutes = DefaultIntervalMinutes
	}
	return time.Duration(minutes * float64(time.Minute))
}

// ResolvedPush returns the configured push setting, defaulting to off.
func (c Config) ResolvedPush() bool {
	if c.Push != nil {
		return *c.Push
	}
	return false
}

// ResolvedIgnore returns the configured ignore globs plus the journal
// directory, which is always excluded.
func (c Config) ResolvedIgnore() []string {
	patterns := make([]string, 0, len(c.Ignore)+2)
	patterns = append(patterns, c.Ignore...)
	return append(patterns, journal.Dir, journal.Dir+"/*")
}

// ResolvedCategories merges category overrides over the defaults per key.
func (c Config) ResolvedCategories() map[scribe.Category][]string {
	table := scribe.DefaultCategories()
	for cat, exts := range c.Categories {
		table[scribe.Category(cat)] = exts
	}
	return table
}

// ResolvedNotebookRules returns config rules if set, otherwise defaults.
func (c Config) ResolvedNotebookRules() []scribe.Rule {
	if len(c.Indicators.Notebooks) > 0 {
		return toRules(c.Indicators.Notebooks)
	}
	return scribe.DefaultNotebookRules()
}

// ResolvedCodeRules returns config rules if set, otherwise defaults.
func (c Config) ResolvedCodeRules() []scribe.Rule {
	if len(c.Indicators.Code) > 0 {
		return toRules(c.Indicators.Code)
	}
	return scribe.DefaultCodeRules()
}

func toRules(rules []RuleConfig) []scribe.Rule {
	out := make([]scribe.Rule, len(rules))
	for i, r := range rules {
		out[i] = scribe.Rule{Indicator: r.Indicator, Any: r.Any, All: r.All}
	}
	return out
}
