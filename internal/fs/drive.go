package fs

import (
	"github.com/shirou/gopsutil/disk"
)

// DriveUsage reports capacity of the filesystem holding a path.
type DriveUsage struct {
	Path       string
	FreeBytes  uint64
	TotalBytes uint64
}

// UsedBytes returns the bytes in use.
func (d DriveUsage) UsedBytes() uint64 {
	if d.TotalBytes < d.FreeBytes {
		return 0
	}
	return d.TotalBytes - d.FreeBytes
}

// DriveInfo returns usage for the filesystem containing path, or for the
// root filesystem when path is empty. Failures yield zeros.
func DriveInfo(path string) DriveUsage {
	if path == "" {
		path = rootOf(DefaultLocation())
	}
	usage, err := disk.Usage(path)
	if err != nil || usage == nil {
		return DriveUsage{Path: path}
	}
	return DriveUsage{Path: path, FreeBytes: usage.Free, TotalBytes: usage.Total}
}
