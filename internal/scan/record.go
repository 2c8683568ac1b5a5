package scan

import (
	iofs "io/fs"
	"path/filepath"
	"time"
)

// FileRecord is one regular file seen by a scan. Records are never cached
// between scans.
type FileRecord struct {
	Path    string // absolute
	Name    string // base name, used for reporting
	Size    int64
	ModTime time.Time
}

// FromFileInfo builds a FileRecord from a path and its file info.
func FromFileInfo(path string, info iofs.FileInfo) FileRecord {
	return FileRecord{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
