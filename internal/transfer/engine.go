// Package transfer executes bulk filesystem operations. Items in a batch run
// concurrently and fail independently; nothing is rolled back.
package transfer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/metrics"
)

// ErrInvalidArgument is returned for calls that cannot start at all.
var ErrInvalidArgument = errors.New("invalid argument")

var errIntoItself = errors.New("cannot place a directory inside itself")

// Engine runs create, delete, copy and move against the local filesystem.
type Engine struct {
	logger *zap.Logger
}

// NewEngine returns an Engine that logs through logger. A nil logger
// disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger.Named("transfer")}
}

// CreateDirectory creates a single directory. Errors carry
// KindAlreadyExists, KindAccessDenied or KindOther.
func (e *Engine) CreateDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("create directory: empty path: %w", ErrInvalidArgument)
	}

	start := time.Now()
	err := os.Mkdir(path, 0o755)
	if err == nil {
		metrics.RecordTransfer(string(OpCreate), 1, 0, time.Since(start))
		e.logger.Info("directory created", zap.String("path", fsutil.SanitizePath(path)))
		return nil
	}

	pe := fsutil.NewPathError(string(OpCreate), path, err)
	if pe.Kind == fsutil.KindNotFound {
		pe.Kind = fsutil.KindOther
	}
	metrics.RecordTransfer(string(OpCreate), 0, 1, time.Since(start))
	e.logger.Warn("create directory failed", zap.String("path", fsutil.SanitizePath(path)), zap.Stringer("kind", pe.Kind), zap.Error(err))
	return pe
}

// Delete removes every path, recursing into directories.
func (e *Engine) Delete(paths []string) Outcome {
	return e.run(OpDelete, paths, deleteOne)
}

// Copy copies every path into targetDir under its base name. Existing
// targets are never overwritten.
func (e *Engine) Copy(paths []string, targetDir string) (Outcome, error) {
	if targetDir == "" {
		return Outcome{}, fmt.Errorf("copy: empty target directory: %w", ErrInvalidArgument)
	}
	return e.run(OpCopy, paths, func(src string) error {
		return copyOne(src, targetDir)
	}), nil
}

// Move renames every path into targetDir. There is no copy fallback when
// the rename crosses devices.
func (e *Engine) Move(paths []string, targetDir string) (Outcome, error) {
	if targetDir == "" {
		return Outcome{}, fmt.Errorf("move: empty target directory: %w", ErrInvalidArgument)
	}
	return e.run(OpMove, paths, func(src string) error {
		return moveOne(src, targetDir)
	}), nil
}

func (e *Engine) run(op Op, paths []string, fn func(string) error) Outcome {
	outcome := Outcome{ID: uuid.New(), Op: op}
	start := time.Now()

	results := make([]error, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = fn(path)
			return nil
		})
	}
	_ = g.Wait()

	for i, path := range paths {
		err := results[i]
		if err == nil {
			outcome.Succeeded = append(outcome.Succeeded, path)
			continue
		}
		failure := Failure{Path: path, Kind: fsutil.KindOf(err), Message: err.Error()}
		outcome.Failed = append(outcome.Failed, failure)
		e.logger.Warn("transfer item failed",
			zap.String("op", string(op)),
			zap.Stringer("id", outcome.ID),
			zap.String("path", fsutil.SanitizePath(path)),
			zap.Stringer("kind", failure.Kind),
			zap.Error(err),
		)
	}

	elapsed := time.Since(start)
	metrics.RecordTransfer(string(op), len(outcome.Succeeded), len(outcome.Failed), elapsed)
	e.logger.Info("transfer finished",
		zap.String("op", string(op)),
		zap.Stringer("id", outcome.ID),
		zap.Int("succeeded", len(outcome.Succeeded)),
		zap.Int("failed", len(outcome.Failed)),
		zap.Duration("elapsed", elapsed),
	)
	return outcome
}

func deleteOne(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fsutil.NewPathError(string(OpDelete), path, err)
	}
	if fsutil.IsRoot(path) {
		return &fsutil.PathError{Op: string(OpDelete), Path: path, Kind: fsutil.KindAccessDenied, Err: os.ErrPermission}
	}
	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fsutil.NewPathError(string(OpDelete), path, err)
	}
	return nil
}

func moveOne(src, targetDir string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fsutil.NewPathError(string(OpMove), src, err)
	}
	dst := filepath.Join(targetDir, filepath.Base(src))
	if err := ensureAbsent(string(OpMove), dst); err != nil {
		return err
	}
	if info.IsDir() && fsutil.IsPathInside(dst, src) {
		return &fsutil.PathError{Op: string(OpMove), Path: src, Kind: fsutil.KindOther, Err: errIntoItself}
	}
	if err := os.Rename(src, dst); err != nil {
		return fsutil.NewPathError(string(OpMove), src, err)
	}
	return nil
}

// ensureAbsent fails with KindAlreadyExists when dst is taken.
func ensureAbsent(op, dst string) error {
	_, err := os.Lstat(dst)
	switch {
	case err == nil:
		return &fsutil.PathError{Op: op, Path: dst, Kind: fsutil.KindAlreadyExists, Err: os.ErrExist}
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return fsutil.NewPathError(op, dst, err)
	}
}
