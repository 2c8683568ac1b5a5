package fs

import (
	"context"
	"errors"
	"io"
	"os"
)

// OSFS is the FS backed by the local OS filesystem.
// Platform-specific details (such as inode extraction) are handled in build-tagged files.
type OSFS struct{}

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		MTime: st.ModTime(),
		Inode: fileID(st),
		IsDir: st.IsDir(),
	}, nil
}

// Open opens path for reading.
func (o *OSFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (o *OSFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return removeWithRetry(ctx, path)
}

func (o *OSFS) CopyFile(ctx context.Context, src, dst string) error {
	return copyWithRetry(ctx, o, src, dst)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return moveWithRetry(ctx, o, oldPath, newPath)
}
