package transfer

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCreateDirectory(t *testing.T) {
	e := NewEngine(nil)
	dir := filepath.Join(t.TempDir(), "new")

	require.NoError(t, e.CreateDirectory(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = e.CreateDirectory(dir)
	require.Error(t, err)
	assert.Equal(t, fsutil.KindAlreadyExists, fsutil.KindOf(err))
}

func TestCreateDirectoryMissingParentIsOther(t *testing.T) {
	err := NewEngine(nil).CreateDirectory(filepath.Join(t.TempDir(), "a", "b"))
	require.Error(t, err)
	assert.Equal(t, fsutil.KindOther, fsutil.KindOf(err))
}

func TestCreateDirectoryAccessDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	parent := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	err := NewEngine(nil).CreateDirectory(filepath.Join(parent, "x"))
	require.Error(t, err)
	assert.Equal(t, fsutil.KindAccessDenied, fsutil.KindOf(err))
}

func TestCreateDirectoryEmptyPath(t *testing.T) {
	err := NewEngine(nil).CreateDirectory("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteMixed(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	tree := filepath.Join(root, "tree")
	missing := filepath.Join(root, "missing")
	writeFile(t, file, "x")
	writeFile(t, filepath.Join(tree, "a", "b.txt"), "y")

	out := NewEngine(nil).Delete([]string{file, missing, tree})

	assert.Equal(t, []string{file, tree}, out.Succeeded)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, missing, out.Failed[0].Path)
	assert.Equal(t, fsutil.KindNotFound, out.Failed[0].Kind)
	assert.NotEmpty(t, out.Failed[0].Message)
	assert.Equal(t, "2 of 3 succeeded", out.Summary())
	assert.Equal(t, OpDelete, out.Op)

	_, err := os.Stat(tree)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDeleteMissingDoesNotPanic(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out := NewEngine(nil).Delete([]string{missing})
	assert.Empty(t, out.Succeeded)
	assert.Equal(t, []Failure{{Path: missing, Kind: fsutil.KindNotFound, Message: out.Failed[0].Message}}, out.Failed)
}

func TestCopyFileCollisionDoesNotOverwrite(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a", "f.txt")
	dst := filepath.Join(root, "b", "f.txt")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	out, err := NewEngine(nil).Copy([]string{src}, filepath.Join(root, "b"))
	require.NoError(t, err)

	assert.Empty(t, out.Succeeded)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, src, out.Failed[0].Path)
	assert.Equal(t, fsutil.KindAlreadyExists, out.Failed[0].Kind)
	assert.Equal(t, "old", readFile(t, dst))
}

func TestCopyTreeAndFile(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	target := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(target, 0o755))

	writeFile(t, filepath.Join(srcDir, "top.txt"), "top")
	writeFile(t, filepath.Join(srcDir, "nested", "deep", "leaf.txt"), "leaf")
	require.NoError(t, os.Mkdir(filepath.Join(srcDir, "empty"), 0o755))
	single := filepath.Join(root, "single.bin")
	writeFile(t, single, "bin")
	require.NoError(t, os.Chmod(single, 0o600))

	out, err := NewEngine(nil).Copy([]string{srcDir, single}, target)
	require.NoError(t, err)
	require.True(t, out.OK(), "failures: %+v", out.Failed)
	assert.Equal(t, []string{srcDir, single}, out.Succeeded)

	assert.Equal(t, "top", readFile(t, filepath.Join(target, "src", "top.txt")))
	assert.Equal(t, "leaf", readFile(t, filepath.Join(target, "src", "nested", "deep", "leaf.txt")))
	info, err := os.Stat(filepath.Join(target, "src", "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	copied, err := os.Stat(filepath.Join(target, "single.bin"))
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), copied.Mode().Perm())
	}
	orig, err := os.Stat(single)
	require.NoError(t, err)
	assert.True(t, orig.ModTime().Equal(copied.ModTime()))

	assert.Equal(t, "bin", readFile(t, single), "source is untouched")
}

func TestCopySymlinkIsRecreated(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	writeFile(t, filepath.Join(srcDir, "real.txt"), "r")
	require.NoError(t, os.Symlink("real.txt", filepath.Join(srcDir, "link")))
	target := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(target, 0o755))

	out, err := NewEngine(nil).Copy([]string{srcDir}, target)
	require.NoError(t, err)
	require.True(t, out.OK(), "failures: %+v", out.Failed)

	link, err := os.Readlink(filepath.Join(target, "src", "link"))
	require.NoError(t, err)
	assert.Equal(t, "real.txt", link)
}

func TestCopyDirectoryIntoItselfFails(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "f"), "x")
	inner := filepath.Join(src, "inner")
	require.NoError(t, os.Mkdir(inner, 0o755))

	out, err := NewEngine(nil).Copy([]string{src}, inner)
	require.NoError(t, err)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, fsutil.KindOther, out.Failed[0].Kind)
	_, statErr := os.Stat(filepath.Join(inner, "src"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestCopyMissingSourceIsPerItem(t *testing.T) {
	root := t.TempDir()
	ok := filepath.Join(root, "ok.txt")
	writeFile(t, ok, "ok")
	target := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(target, 0o755))
	gone := filepath.Join(root, "gone.txt")

	out, err := NewEngine(nil).Copy([]string{gone, ok}, target)
	require.NoError(t, err)
	assert.Equal(t, []string{ok}, out.Succeeded)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, gone, out.Failed[0].Path)
	assert.Equal(t, fsutil.KindNotFound, out.Failed[0].Kind)
}

func TestCopyAndMoveRejectEmptyTarget(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.Copy([]string{"x"}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = e.Move([]string{"x"}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMove(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a", "f.txt")
	dir := filepath.Join(root, "a", "d")
	writeFile(t, src, "f")
	writeFile(t, filepath.Join(dir, "inner"), "i")
	target := filepath.Join(root, "b")
	require.NoError(t, os.Mkdir(target, 0o755))

	out, err := NewEngine(nil).Move([]string{src, dir}, target)
	require.NoError(t, err)
	require.True(t, out.OK(), "failures: %+v", out.Failed)

	assert.Equal(t, "f", readFile(t, filepath.Join(target, "f.txt")))
	assert.Equal(t, "i", readFile(t, filepath.Join(target, "d", "inner")))
	_, err = os.Stat(src)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMoveCollisionKeepsBoth(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a", "f.txt")
	dst := filepath.Join(root, "b", "f.txt")
	writeFile(t, src, "src")
	writeFile(t, dst, "dst")

	out, err := NewEngine(nil).Move([]string{src}, filepath.Join(root, "b"))
	require.NoError(t, err)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, fsutil.KindAlreadyExists, out.Failed[0].Kind)
	assert.Equal(t, "src", readFile(t, src))
	assert.Equal(t, "dst", readFile(t, dst))
}

func TestMoveIntoMissingTarget(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "f.txt")
	writeFile(t, src, "f")

	out, err := NewEngine(nil).Move([]string{src}, filepath.Join(root, "nowhere"))
	require.NoError(t, err)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, fsutil.KindNotFound, out.Failed[0].Kind)
	assert.Equal(t, "f", readFile(t, src))
}

func TestOutcomesHaveDistinctIDs(t *testing.T) {
	e := NewEngine(nil)
	a := e.Delete(nil)
	b := e.Delete(nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "0 of 0 succeeded", a.Summary())
	assert.True(t, a.OK())
}

func TestFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	e := NewEngine(zap.New(core))

	missing := filepath.Join(t.TempDir(), "missing")
	out := e.Delete([]string{missing})
	require.Len(t, out.Failed, 1)

	entries := logs.FilterMessage("transfer item failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, missing, entries[0].ContextMap()["path"])
	assert.Equal(t, "delete", entries[0].ContextMap()["op"])
}

func TestFailureFor(t *testing.T) {
	out := Outcome{Failed: []Failure{{Path: "/x", Kind: fsutil.KindNotFound}}}
	f, ok := out.FailureFor("/x")
	assert.True(t, ok)
	assert.Equal(t, fsutil.KindNotFound, f.Kind)
	_, ok = out.FailureFor("/y")
	assert.False(t, ok)
}
