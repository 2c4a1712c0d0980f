package fs

import (
	"os"
	"path/filepath"
)

// CheckAccess verifies that path exists and is readable by the current user.
func CheckAccess(path string) error {
	if err := checkReadable(path); err != nil {
		return NewPathError("access", path, err)
	}
	return nil
}

// ListDirectory reads the entries of the directory at path. The path may use
// the "~" shorthand and either separator style. A child whose metadata cannot
// be read is still returned, flagged with StatFailed.
func ListDirectory(path string) ([]Entry, error) {
	dirPath, err := Normalize(path)
	if err != nil {
		return nil, err
	}

	if err := CheckAccess(dirPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, NewPathError("stat", dirPath, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "list", Path: dirPath, Kind: KindOther, Err: errNotDirectory}
	}

	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, NewPathError("list", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		fullPath := filepath.Join(dirPath, name)
		if ShouldHideFromListing(fullPath, name) {
			continue
		}
		entries = append(entries, statEntry(fullPath, name, de))
	}
	return entries, nil
}

func statEntry(fullPath, name string, de os.DirEntry) Entry {
	isSymlink := de.Type()&os.ModeSymlink != 0

	info, err := os.Stat(fullPath)
	if err != nil {
		return degradedEntry(fullPath, name, de.IsDir(), isSymlink)
	}

	created, accessed := fileTimes(fullPath, info)
	entry := Entry{
		Name:        name,
		FullPath:    fullPath,
		IsDir:       info.IsDir(),
		IsSymlink:   isSymlink,
		Created:     created,
		Modified:    info.ModTime(),
		Accessed:    accessed,
		Mode:        info.Mode(),
		Permissions: PermissionString(info.Mode()),
	}
	if !entry.IsDir {
		entry.Size = info.Size()
		entry.Extension = ExtensionOf(name)
	}
	return entry
}

func degradedEntry(fullPath, name string, isDir, isSymlink bool) Entry {
	entry := Entry{
		Name:        name,
		FullPath:    fullPath,
		IsDir:       isDir,
		IsSymlink:   isSymlink,
		Permissions: UnknownPermissions,
		StatFailed:  true,
	}
	if !isDir {
		entry.Extension = ExtensionOf(name)
	}
	return entry
}
