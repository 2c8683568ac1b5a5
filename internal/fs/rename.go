package fs

import (
	"context"
	"fmt"
	"os"
)

// removeWithRetry deletes a single file. Directories are refused so a
// mis-scanned path can never take a subtree with it.
func removeWithRetry(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		st, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if st.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		return os.Remove(path)
	})
}

// moveWithRetry renames oldPath to newPath. When the two paths are on
// different devices the file is copied and the source removed afterwards.
func moveWithRetry(ctx context.Context, f FS, oldPath, newPath string) error {
	err := retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
	if err == nil || classify(err) != errCrossDevice {
		return err
	}

	if err := f.CopyFile(ctx, oldPath, newPath); err != nil {
		_ = os.Remove(newPath)
		return fmt.Errorf("cross-device move: %w", err)
	}
	return removeWithRetry(ctx, oldPath)
}
