package config

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/raoulx24/logkeeper/internal/logging"
)

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Targets) == 0 && c.Log.Path == "" {
		errs = append(errs, errors.New("nothing to do: no targets and no log path"))
	}

	if c.MaxAge() < 0 {
		errs = append(errs, fmt.Errorf("defaultMaxAgeDays must be >= 0, got %d", c.MaxAge()))
	}

	for i, t := range c.Targets {
		if t.Path == "" {
			errs = append(errs, fmt.Errorf("targets[%d]: path is required", i))
		}
		if n := t.MaxAge(c.MaxAge()); n < 0 {
			errs = append(errs, fmt.Errorf("targets[%d]: maxAgeDays must be >= 0, got %d", i, n))
		}
	}

	if n := c.Log.MaxAge(c.MaxAge()); c.Log.Path != "" && n < 0 {
		errs = append(errs, fmt.Errorf("log: maxAgeDays must be >= 0, got %d", n))
	}

	switch c.OnError {
	case "continue", "abort":
	default:
		errs = append(errs, fmt.Errorf("onError must be continue or abort, got %q", c.OnError))
	}

	if c.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(c.Schedule.Cron); err != nil {
			errs = append(errs, fmt.Errorf("schedule.cron %q: %w", c.Schedule.Cron, err))
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case logging.FormatLine, logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	switch c.ConfigReload.Method {
	case "auto", "poll", "fsnotify":
	default:
		errs = append(errs, fmt.Errorf("configReload.method: unknown mode %q", c.ConfigReload.Method))
	}

	return errors.Join(errs...)
}
