// Package fs defines the filesystem abstraction used by logkeeper.
// It provides the FS interface and the FileInfo type shared by the
// retention engine and the log archiver.
package fs

import (
	"context"
	"io"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	Inode uint64
	IsDir bool
}

// FS is the set of mutating and inspecting calls the engine makes.
// Remove and Rename retry transient failures; Rename falls back to
// copy+remove when source and destination live on different devices.
type FS interface {
	Stat(path string) (FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Exists(path string) (bool, error)
	Remove(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	CopyFile(ctx context.Context, src, dst string) error
	MkdirAll(path string) error
}
