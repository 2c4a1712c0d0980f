//go:build darwin

package fs

import (
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (created, accessed time.Time) {
	created, accessed = info.ModTime(), info.ModTime()
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return created, accessed
	}
	if stat.Birthtimespec.Sec != 0 {
		created = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	if stat.Atimespec.Sec != 0 {
		accessed = time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
	}
	return created, accessed
}
