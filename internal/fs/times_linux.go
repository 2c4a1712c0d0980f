//go:build linux

package fs

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns birth and access times. Filesystems that do not record a
// birth time report the modification time instead.
func fileTimes(path string, info os.FileInfo) (created, accessed time.Time) {
	created, accessed = info.ModTime(), info.ModTime()

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME|unix.STATX_ATIME, &stx); err != nil {
		return created, accessed
	}
	if stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec != 0 {
		created = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
	if stx.Mask&unix.STATX_ATIME != 0 {
		accessed = time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec))
	}
	return created, accessed
}
