// Package scan enumerates the regular files of a directory tree.
package scan

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
)

type options struct {
	exclude    []string
	ignoreFile string
}

// Option configures a scan.
type Option func(*options)

// WithExclude skips files, and prunes directories, whose root-relative
// slash-separated path matches one of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithIgnoreFile applies a gitignore-syntax file. Relative paths are
// resolved against the scan root.
func WithIgnoreFile(path string) Option {
	return func(o *options) {
		o.ignoreFile = path
	}
}

var errStop = errors.New("scan stopped")

// Scan lazily yields every regular file under root, at any depth, once.
//
// A root that does not exist yields nothing. Symbolic links are neither
// followed nor yielded, so a scan never leaves the tree. Files that vanish
// while the scan runs are skipped. Any other traversal error is yielded
// once and ends the sequence.
func Scan(root string, opts ...Option) iter.Seq2[FileRecord, error] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(FileRecord, error) bool) {
		abs, err := resolveRoot(root)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				yield(FileRecord{}, err)
			}
			return
		}

		f, err := newFilter(abs, o)
		if err != nil {
			yield(FileRecord{}, err)
			return
		}

		walkErr := filepath.WalkDir(abs, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if path != abs && errors.Is(err, os.ErrNotExist) {
					return nil
				}
				return err
			}
			if path == abs {
				return nil
			}

			rel, err := filepath.Rel(abs, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if f.skip(rel, true) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || f.skip(rel, false) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return nil
				}
				return err
			}

			if !yield(FromFileInfo(path, info), nil) {
				return errStop
			}
			return nil
		})

		if walkErr != nil && !errors.Is(walkErr, errStop) {
			yield(FileRecord{}, walkErr)
		}
	}
}

// resolveRoot returns the absolute, symlink-free form of root and checks
// that it is a directory.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	st, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
