//go:build windows

package fs

import (
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (created, accessed time.Time) {
	created, accessed = info.ModTime(), info.ModTime()
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return created, accessed
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), time.Unix(0, data.LastAccessTime.Nanoseconds())
}
