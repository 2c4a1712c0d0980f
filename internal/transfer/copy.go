package transfer

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
)

func copyOne(src, targetDir string) error {
	op := string(OpCopy)
	info, err := os.Lstat(src)
	if err != nil {
		return fsutil.NewPathError(op, src, err)
	}

	dst := filepath.Join(targetDir, filepath.Base(src))
	if err := ensureAbsent(op, dst); err != nil {
		return err
	}

	switch {
	case info.IsDir():
		if fsutil.IsPathInside(dst, src) {
			return &fsutil.PathError{Op: op, Path: src, Kind: fsutil.KindOther, Err: errIntoItself}
		}
		// Mkdir claims the target atomically; a racing creator gets EEXIST.
		if err := os.Mkdir(dst, 0o700); err != nil {
			return fsutil.NewPathError(op, dst, err)
		}
		if err := copyTree(src, dst); err != nil {
			return fsutil.NewPathError(op, src, err)
		}
		applyMetadata(dst, info)
	case info.Mode()&os.ModeSymlink != 0:
		if err := copySymlink(src, dst); err != nil {
			return fsutil.NewPathError(op, dst, err)
		}
	default:
		if err := copyFile(src, dst, info); err != nil {
			return fsutil.NewPathError(op, dst, err)
		}
	}
	return nil
}

// copyTree copies the contents of src into the existing directory dst.
// Symlinks are recreated, not followed. Special files are skipped.
func copyTree(src, dst string) error {
	var (
		mu   sync.Mutex
		dirs = map[string]os.FileInfo{}
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(target, 0o700); err != nil {
				return err
			}
			mu.Lock()
			dirs[target] = info
			mu.Unlock()
		case d.Type()&os.ModeSymlink != 0:
			if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
				return err
			}
			return copySymlink(p, target)
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
				return err
			}
			return copyFile(p, target, info)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for dir, info := range dirs {
		applyMetadata(dir, info)
	}
	return nil
}

func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	applyMetadata(dst, info)
	return nil
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(target, dst)
}

// applyMetadata copies mode and modification time where the platform allows.
func applyMetadata(path string, info os.FileInfo) {
	_ = os.Chmod(path, info.Mode().Perm())
	mtime := info.ModTime()
	if mtime.IsZero() {
		mtime = time.Now()
	}
	_ = os.Chtimes(path, mtime, mtime)
}
