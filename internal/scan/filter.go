package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// filter decides which root-relative, slash-separated paths a scan skips.
type filter struct {
	exclude []string
	ignore  *ignore.GitIgnore
}

func newFilter(root string, o options) (*filter, error) {
	f := &filter{exclude: o.exclude}

	for _, p := range o.exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	if o.ignoreFile != "" {
		path := o.ignoreFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		gi, err := loadIgnoreFile(path)
		if err != nil {
			return nil, err
		}
		f.ignore = gi
	}

	return f, nil
}

// loadIgnoreFile compiles a gitignore-syntax file. A missing file means
// nothing is ignored.
func loadIgnoreFile(path string) (*ignore.GitIgnore, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat ignore file: %w", err)
	}

	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("compile ignore file %s: %w", path, err)
	}
	return gi, nil
}

func (f *filter) skip(rel string, isDir bool) bool {
	for _, p := range f.exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}

	if f.ignore == nil {
		return false
	}
	if f.ignore.MatchesPath(rel) {
		return true
	}
	return isDir && f.ignore.MatchesPath(rel+"/")
}
