package config

import "time"

type Config struct {
	// DefaultMaxAgeDays applies to every target and the log unless they
	// set their own value. 0 is a valid window; omit it for 30.
	DefaultMaxAgeDays *int `yaml:"defaultMaxAgeDays"`

	DryRun  bool   `yaml:"dryRun"`
	OnError string `yaml:"onError"` // "continue", "abort"

	Targets      []TargetConfig `yaml:"targets"`
	Log          LogConfig      `yaml:"log"`
	Schedule     ScheduleConfig `yaml:"schedule"`
	Logging      LoggingConfig  `yaml:"logging"`
	Metrics      MetricsConfig  `yaml:"metrics"`
	ConfigReload ReloadConfig   `yaml:"configReload"`
}

// TargetConfig is one directory swept by the retention engine.
type TargetConfig struct {
	Path       string   `yaml:"path"`
	MaxAgeDays *int     `yaml:"maxAgeDays"`
	Exclude    []string `yaml:"exclude"`    // doublestar globs, relative to path
	IgnoreFile string   `yaml:"ignoreFile"` // gitignore syntax, relative to path
}

// LogConfig is the active log file and where it is rotated to.
type LogConfig struct {
	Path       string `yaml:"path"`
	ArchiveDir string `yaml:"archiveDir"` // default: <dir of path>/archive
	MaxAgeDays *int   `yaml:"maxAgeDays"`
}

type ScheduleConfig struct {
	Cron string `yaml:"cron"` // standard 5-field cron, e.g. "0 3 * * *"
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "line", "text", "json"
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile; empty disables
}

type ReloadConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Method          string        `yaml:"method"`         // "auto", "poll", "fsnotify"
	PollInterval    time.Duration `yaml:"pollInterval"`   // e.g. 5s
	DebounceWindow  time.Duration `yaml:"debounceWindow"` // e.g. 500ms
	StabilityWindow time.Duration `yaml:"stabilityWindow"`
}

// MaxAge returns the target's window, falling back to def.
func (t TargetConfig) MaxAge(def int) int {
	if t.MaxAgeDays != nil {
		return *t.MaxAgeDays
	}
	return def
}

// MaxAge returns the log's window, falling back to def.
func (l LogConfig) MaxAge(def int) int {
	if l.MaxAgeDays != nil {
		return *l.MaxAgeDays
	}
	return def
}

// MaxAge returns the configured default window.
func (c *Config) MaxAge() int {
	if c.DefaultMaxAgeDays != nil {
		return *c.DefaultMaxAgeDays
	}
	return DefaultMaxAgeDays
}
