//go:build windows

package fs

// IsHidden reports dot-prefixed names and entries carrying the Windows
// hidden attribute.
func IsHidden(fullPath string, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
