// Package worker analyses batches of FEN positions on a pool of goroutines.
package worker

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
	"github.com/lgbarn/chess-practice-go/internal/legality"
)

// WorkItem is one FEN line of a batch.
type WorkItem struct {
	Index int // Line position in the batch
	FEN   string
}

// ProcessResult is the analysis of one WorkItem.
type ProcessResult struct {
	Index     int
	FEN       string
	Position  chess.Position
	MoveCount int  // Number of moves for the side to move
	InCheck   bool // Only set when a legality filter is used
	Error     error
}

// ProcessFunc analyses a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// CountMoves returns a ProcessFunc that parses the FEN and counts the
// moves of the side to move. With a nil filter moves are pseudo-legal.
func CountMoves(filter *legality.Filter) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}
		pos, err := engine.ParseFEN(item.FEN)
		if err != nil {
			res.Error = err
			return res
		}
		res.Position = pos

		if filter == nil {
			for range engine.PseudoLegalMoves(pos) {
				res.MoveCount++
			}
			return res
		}

		moves, err := filter.LegalMoves(pos)
		if err != nil {
			res.Error = err
			return res
		}
		res.MoveCount = len(moves)
		res.InCheck, res.Error = filter.InCheck(pos)
		return res
	}
}

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. processFunc is required; the defaults are one
// worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Channels depend on the buffer option.
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit submits without blocking. It returns false if the buffer is
// full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run analyses fens and returns the results in input order. Cancelling ctx
// stops the pool; results gathered so far are returned with ctx.Err().
func Run(ctx context.Context, fens []string, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	p := NewPool(processFunc, opts...)
	p.Start()

	go func() {
		defer p.Close()
		for i, fen := range fens {
			if ctx.Err() != nil {
				p.Stop()
				return
			}
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.workChan <- WorkItem{Index: i, FEN: fen}:
			}
		}
	}()

	results := make([]ProcessResult, 0, len(fens))
	for res := range p.Results() {
		results = append(results, res)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results, ctx.Err()
}
