package fs

import (
	"os"
	"strings"
	"time"
)

// EntryKind distinguishes files from directories.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// UnknownPermissions is reported when an entry could not be stat'ed.
const UnknownPermissions = "000"

// Entry represents a single file or directory on disk.
type Entry struct {
	Name        string
	FullPath    string
	IsDir       bool
	IsSymlink   bool
	Size        int64
	Created     time.Time
	Modified    time.Time
	Accessed    time.Time
	Mode        os.FileMode
	Permissions string
	Extension   string
	// StatFailed marks an entry whose metadata could not be read.
	StatFailed bool
}

// Kind reports whether the entry is a file or a directory.
func (e Entry) Kind() EntryKind {
	if e.IsDir {
		return KindDirectory
	}
	return KindFile
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// ExtensionOf returns the text after the last dot of name. A leading dot
// does not start an extension, so ".bashrc" has none.
func ExtensionOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}

// PermissionString formats the permission bits as three octal digits.
func PermissionString(mode os.FileMode) string {
	const digits = "01234567"
	perm := mode.Perm()
	return string([]byte{
		digits[(perm>>6)&7],
		digits[(perm>>3)&7],
		digits[perm&7],
	})
}
