package fs

import (
	"os"
	"path/filepath"
)

// DirStats summarises the direct children of a directory.
type DirStats struct {
	TotalSize  int64
	TotalFiles int
	TotalDirs  int
}

// DirectoryStats counts files and directories directly inside path and sums
// file sizes. Only access failures are reported; other errors yield zero
// stats.
func DirectoryStats(path string) (DirStats, error) {
	var stats DirStats

	dirPath, err := Normalize(path)
	if err != nil {
		return stats, nil
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if Classify(err) == KindAccessDenied {
			return stats, NewPathError("stats", dirPath, err)
		}
		return stats, nil
	}

	for _, de := range entries {
		info, err := os.Stat(filepath.Join(dirPath, de.Name()))
		if err != nil {
			continue
		}
		if info.IsDir() {
			stats.TotalDirs++
			continue
		}
		stats.TotalFiles++
		stats.TotalSize += info.Size()
	}
	return stats, nil
}
