package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"time"
)

// copy with retry and source-change detection. A cross-device move relies
// on this, so the copy aborts if the source is rewritten mid-copy.

var errSourceChanged = errors.New("source changed during copy")

func copyWithRetry(ctx context.Context, f FS, src, dst string) error {
	orig, err := f.Stat(src)
	if err != nil {
		return err
	}

	return retry(ctx, "copy", func() error {
		if err := copyOnce(src, dst, orig.MTime); err != nil {
			return err
		}

		now, err := f.Stat(src)
		if err != nil {
			return err
		}
		if sourceChanged(orig, now) {
			return errSourceChanged
		}
		return nil
	})
}

func sourceChanged(orig, now FileInfo) bool {
	if now.Inode != 0 && orig.Inode != 0 && now.Inode != orig.Inode {
		return true
	}
	if now.MTime.After(orig.MTime) {
		return true
	}
	return now.Size != orig.Size
}

// copyOnce writes a new dst (never overwriting) and carries over the
// source modification time.
func copyOnce(src, dst string, mtime time.Time) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, mtime, mtime)
}
