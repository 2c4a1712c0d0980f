package state

import (
	"time"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/metrics"
)

// listDirectoryFn, driveInfoFn and dirStatsFn are overridable in tests.
var (
	listDirectoryFn = fsutil.ListDirectory
	driveInfoFn     = fsutil.DriveInfo
	dirStatsFn      = fsutil.DirectoryStats
)

// readDirectory lists path and samples the usage of its filesystem along
// with totals for its direct children.
func readDirectory(path string) DirectoryLoadResult {
	start := time.Now()
	entries, err := listDirectoryFn(path)

	kind := ""
	if err != nil {
		kind = fsutil.KindOf(err).String()
	}
	metrics.RecordList(time.Since(start), kind)

	result := DirectoryLoadResult{Path: path, Entries: entries, Err: err}
	if err == nil {
		result.Drive = driveInfoFn(path)
		result.Stats, _ = dirStatsFn(path)
	}
	return result
}
