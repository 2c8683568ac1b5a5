package fsprobe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeLocalDir(t *testing.T) {
	dir := t.TempDir()
	res := Probe(dir)
	assert.True(t, res.FsnotifySupported, res.Reason)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe files are cleaned up")
}

func TestProbeMissingDir(t *testing.T) {
	res := Probe(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, res.FsnotifySupported)
	assert.Contains(t, res.Reason, "stat failed")
}

func TestProbeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	res := Probe(path)
	assert.False(t, res.FsnotifySupported)
	assert.Equal(t, "not a directory", res.Reason)
}
