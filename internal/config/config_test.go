package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOGKEEPER_ROOT", "/srv/report")

	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "/srv/report/Logs/Email Attachments", cfg.Targets[0].Path)
	assert.Equal(t, 30, cfg.Targets[0].MaxAge(cfg.MaxAge()))
	assert.Equal(t, 7, cfg.Targets[1].MaxAge(cfg.MaxAge()))
	assert.Equal(t, []string{"**/*.keep"}, cfg.Targets[1].Exclude)
	assert.Equal(t, ".retentionignore", cfg.Targets[1].IgnoreFile)

	assert.Equal(t, "/srv/report/Logs/logkeeper.log", cfg.Log.Path)
	assert.Equal(t, filepath.Join("/srv/report/Logs", "archive"), cfg.Log.ArchiveDir)
	assert.Equal(t, 30, cfg.Log.MaxAge(cfg.MaxAge()))

	assert.Equal(t, "0 3 * * *", cfg.Schedule.Cron)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "line", cfg.Logging.Format)
	assert.Equal(t, "/srv/report/metrics/logkeeper.prom", cfg.Metrics.Textfile)

	assert.True(t, cfg.ConfigReload.Enabled)
	assert.Equal(t, "poll", cfg.ConfigReload.Method)
	assert.Equal(t, 2*time.Second, cfg.ConfigReload.PollInterval)
	assert.Equal(t, DefaultDebounceWindow, cfg.ConfigReload.DebounceWindow)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("targets:\n  - path: ./Results\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxAgeDays, cfg.MaxAge())
	assert.Equal(t, "continue", cfg.OnError)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.Log.ArchiveDir, "no log configured")
	assert.Equal(t, "auto", cfg.ConfigReload.Method)
	assert.Equal(t, DefaultPollInterval, cfg.ConfigReload.PollInterval)
}

func TestParseExplicitZeroAge(t *testing.T) {
	cfg, err := Parse([]byte("defaultMaxAgeDays: 0\ntargets:\n  - path: ./tmp\n    maxAgeDays: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxAge())
	assert.Equal(t, 0, cfg.Targets[0].MaxAge(cfg.MaxAge()))
}

func TestParseArchiveDirOverride(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  path: /var/log/app.log\n  archiveDir: /mnt/old-logs\n"))
	require.NoError(t, err)
	assert.Equal(t, "/mnt/old-logs", cfg.Log.ArchiveDir)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := `
defaultMaxAgeDays: -1
onError: explode
targets:
  - path: ""
schedule:
  cron: "every tuesday"
logging:
  level: loud
  format: xml
configReload:
  method: carrier-pigeon
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"defaultMaxAgeDays must be >= 0",
		"targets[0]: path is required",
		"onError must be continue or abort",
		"schedule.cron",
		"logging.level",
		"logging.format",
		"configReload.method",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateNothingToDo(t *testing.T) {
	_, err := Parse([]byte("dryRun: true\n"))
	assert.ErrorContains(t, err, "nothing to do")
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LK_A", "alpha")
	assert.Equal(t, "x/alpha/y", expandEnvVars("x/$(LK_A)/y"))
	assert.Equal(t, "x//y", expandEnvVars("x/$(LK_UNSET_FOR_TEST)/y"))
	assert.Equal(t, "${LK_A}", expandEnvVars("${LK_A}"), "only $(VAR) form is expanded")
	assert.Equal(t, "x/alpha/y", expandEnvVars("x/$(LK_A:-beta)/y"))
	assert.Equal(t, "x/beta/y", expandEnvVars("x/$(LK_UNSET_FOR_TEST:-beta)/y"))
}
