package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectoryReturnsEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.TXT"), []byte("hello"), 0o640))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.d"), 0o755))

	entries, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
		assert.Equal(t, filepath.Join(dir, e.Name), e.FullPath)
	}

	file := byName["notes.TXT"]
	assert.Equal(t, KindFile, file.Kind())
	assert.Equal(t, int64(5), file.Size)
	assert.Equal(t, "TXT", file.Extension)
	assert.False(t, file.StatFailed)
	assert.False(t, file.Modified.IsZero())

	sub := byName["sub.d"]
	assert.Equal(t, KindDirectory, sub.Kind())
	assert.Empty(t, sub.Extension)
	assert.Zero(t, sub.Size)
}

func TestListDirectoryMissingPath(t *testing.T) {
	_, err := ListDirectory(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListDirectoryAccessDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := ListDirectory(dir)
	require.Error(t, err)
	assert.Equal(t, KindAccessDenied, KindOf(err))
}

func TestListDirectoryOnFileFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := ListDirectory(file)
	require.Error(t, err)
	assert.Equal(t, KindOther, KindOf(err))
}

func TestListDirectoryBrokenSymlinkIsDegraded(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.lnk")))

	entries, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var broken Entry
	for _, e := range entries {
		if e.Name == "dangling.lnk" {
			broken = e
		}
	}
	assert.True(t, broken.StatFailed)
	assert.True(t, broken.IsSymlink)
	assert.Equal(t, UnknownPermissions, broken.Permissions)
	assert.Zero(t, broken.Size)
	assert.True(t, broken.Modified.IsZero())
	assert.Equal(t, "lnk", broken.Extension)
}

func TestListDirectoryExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "a"), nil, 0o644))

	entries, err := ListDirectory("~")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(home, "a"), entries[0].FullPath)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", "pdf"},
		{"archive.tar.gz", "gz"},
		{".bashrc", ""},
		{"Makefile", ""},
		{"trailing.", ""},
		{".config.json", "json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionOf(tt.name), tt.name)
	}
}

func TestPermissionString(t *testing.T) {
	assert.Equal(t, "755", PermissionString(0o755|os.ModeDir))
	assert.Equal(t, "640", PermissionString(0o640))
	assert.Equal(t, "000", PermissionString(0))
}
