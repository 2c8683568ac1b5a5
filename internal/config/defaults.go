package config

import (
	"path/filepath"
	"time"
)

const (
	DefaultMaxAgeDays      = 30
	DefaultArchiveSubdir   = "archive"
	DefaultOnError         = "continue"
	DefaultReloadMethod    = "auto"
	DefaultPollInterval    = 5 * time.Second
	DefaultDebounceWindow  = 500 * time.Millisecond
	DefaultStabilityWindow = 200 * time.Millisecond
)

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	if c.OnError == "" {
		c.OnError = DefaultOnError
	}

	if c.Log.Path != "" && c.Log.ArchiveDir == "" {
		c.Log.ArchiveDir = filepath.Join(filepath.Dir(c.Log.Path), DefaultArchiveSubdir)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "line"
	}

	r := &c.ConfigReload
	if r.Method == "" {
		r.Method = DefaultReloadMethod
	}
	if r.PollInterval <= 0 {
		r.PollInterval = DefaultPollInterval
	}
	if r.DebounceWindow <= 0 {
		r.DebounceWindow = DefaultDebounceWindow
	}
	if r.StabilityWindow <= 0 {
		r.StabilityWindow = DefaultStabilityWindow
	}
}
