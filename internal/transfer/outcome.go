package transfer

import (
	"fmt"

	"github.com/google/uuid"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
)

// Op names a transfer operation.
type Op string

const (
	OpCreate Op = "mkdir"
	OpDelete Op = "delete"
	OpCopy   Op = "copy"
	OpMove   Op = "move"
)

// Failure describes one input path that could not be processed.
type Failure struct {
	Path    string
	Kind    fsutil.ErrorKind
	Message string
}

// Outcome is the aggregated result of a batch. Every input path appears
// exactly once, either in Succeeded or in Failed, in input order.
type Outcome struct {
	ID        uuid.UUID
	Op        Op
	Succeeded []string
	Failed    []Failure
}

// Total is the number of input paths.
func (o Outcome) Total() int {
	return len(o.Succeeded) + len(o.Failed)
}

// OK reports whether no item failed.
func (o Outcome) OK() bool {
	return len(o.Failed) == 0
}

// Summary renders the outcome for a status line, e.g. "3 of 5 succeeded".
func (o Outcome) Summary() string {
	return fmt.Sprintf("%d of %d succeeded", len(o.Succeeded), o.Total())
}

// FailureFor returns the failure recorded for path, if any.
func (o Outcome) FailureFor(path string) (Failure, bool) {
	for _, f := range o.Failed {
		if f.Path == path {
			return f, true
		}
	}
	return Failure{}, false
}

// OutcomeOf wraps the result of a single-item operation.
func OutcomeOf(op Op, path string, err error) Outcome {
	out := Outcome{ID: uuid.New(), Op: op}
	if err == nil {
		out.Succeeded = []string{path}
		return out
	}
	out.Failed = []Failure{{Path: path, Kind: fsutil.KindOf(err), Message: err.Error()}}
	return out
}
