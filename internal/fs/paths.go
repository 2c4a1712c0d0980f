package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if len(path) == 1 {
		return home
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Normalize expands the home shorthand, converts separators and returns an
// absolute, cleaned path.
func Normalize(path string) (string, error) {
	path = ExpandHome(strings.TrimSpace(path))
	if path == "" {
		return "", &PathError{Op: "normalize", Path: path, Kind: KindNotFound, Err: os.ErrNotExist}
	}
	path = filepath.Clean(filepath.FromSlash(path))
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewPathError("normalize", path, err)
	}
	return abs, nil
}

// DefaultLocation returns the user's home directory, or the filesystem root
// when it cannot be determined.
func DefaultLocation() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return rootOf("")
}

// ParentDirectory returns the parent of path. The parent of a root is the
// root itself.
func ParentDirectory(path string) string {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == "" {
		return clean
	}
	return parent
}

// IsRoot reports whether path is a filesystem root.
func IsRoot(path string) bool {
	clean := filepath.Clean(path)
	return filepath.Dir(clean) == clean
}

// IsPathInside reports whether child equals parent or lies beneath it.
func IsPathInside(child, parent string) bool {
	child = filepath.Clean(child)
	parent = filepath.Clean(parent)
	if child == parent {
		return true
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// SanitizePath cleans path and renders it with forward slashes.
func SanitizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func rootOf(path string) string {
	if vol := filepath.VolumeName(path); vol != "" {
		return vol + string(filepath.Separator)
	}
	return string(filepath.Separator)
}
