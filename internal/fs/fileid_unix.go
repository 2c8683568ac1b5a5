//go:build unix

package fs

import (
	"os"
	"syscall"
)

// fileID returns the inode behind info, or 0 when the platform data is
// not a Stat_t.
func fileID(info os.FileInfo) uint64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Ino)
	}
	return 0
}
