package state

import (
	"errors"

	"github.com/kk-code-lab/rfm/internal/transfer"
)

// TransferEngine executes filesystem operations.
type TransferEngine interface {
	CreateDirectory(path string) error
	Delete(paths []string) transfer.Outcome
	Copy(paths []string, targetDir string) (transfer.Outcome, error)
	Move(paths []string, targetDir string) (transfer.Outcome, error)
}

// TransferKind names the operation of a TransferRequest.
type TransferKind int

const (
	TransferCreateDirectory TransferKind = iota
	TransferDelete
	TransferCopy
	TransferMove
)

// TransferExecutor runs transfers off the state goroutine.
type TransferExecutor interface {
	Start(req TransferRequest)
}

// TransferRequest describes a transfer to perform.
type TransferRequest struct {
	Token  int
	Kind   TransferKind
	Paths  []string
	Target string
	// ClipboardGeneration is the intent a paste came from, 0 otherwise.
	ClipboardGeneration uint64
	Callback            func(TransferResult)
}

// TransferResult is emitted once every item of a request has resolved.
type TransferResult struct {
	Token               int
	Kind                TransferKind
	Target              string
	ClipboardGeneration uint64
	Outcome             transfer.Outcome
	// Err is set when the request could not start at all.
	Err error
}

// NewAsyncTransferExecutor runs each request on its own goroutine.
func NewAsyncTransferExecutor(engine TransferEngine) TransferExecutor {
	return &asyncTransferExecutor{engine: engine}
}

type asyncTransferExecutor struct {
	engine TransferEngine
}

func (e *asyncTransferExecutor) Start(req TransferRequest) {
	if req.Callback == nil {
		return
	}
	go func() {
		req.Callback(RunTransfer(e.engine, req))
	}()
}

// RunTransfer performs req synchronously.
func RunTransfer(engine TransferEngine, req TransferRequest) TransferResult {
	result := TransferResult{
		Token:               req.Token,
		Kind:                req.Kind,
		Target:              req.Target,
		ClipboardGeneration: req.ClipboardGeneration,
	}

	switch req.Kind {
	case TransferCreateDirectory:
		path := ""
		if len(req.Paths) > 0 {
			path = req.Paths[0]
		}
		err := engine.CreateDirectory(path)
		if errors.Is(err, transfer.ErrInvalidArgument) {
			result.Err = err
			return result
		}
		result.Outcome = transfer.OutcomeOf(transfer.OpCreate, path, err)
	case TransferDelete:
		result.Outcome = engine.Delete(req.Paths)
	case TransferCopy:
		result.Outcome, result.Err = engine.Copy(req.Paths, req.Target)
	case TransferMove:
		result.Outcome, result.Err = engine.Move(req.Paths, req.Target)
	}
	return result
}
