package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSink appends to the active log file. The file is opened lazily, so
// after the log archiver moves it away and Reopen is called, the next write
// starts a fresh file at the same path.
type FileSink struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewFileSink prepares the directory of path. The file itself is created on
// first write.
func NewFileSink(path string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &FileSink{path: path}, nil
}

func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return 0, err
		}
		s.f = f
	}
	return s.f.Write(p)
}

// Reopen drops the current handle; the next Write reopens the path.
func (s *FileSink) Reopen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *FileSink) closeLocked() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
