// Package worker replays move lists on independent games in parallel.
//
// Every job gets its own game.Game, so no game is ever touched by two
// goroutines at once.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/errors"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// Script is a named list of move notations.
type Script struct {
	Name  string // Where the moves came from, e.g. a file name
	Moves []string
}

// Job is a script queued for replay.
type Job struct {
	Script Script
	Index  int // Original position, used to restore input order
}

// Result is the outcome of replaying one script.
type Result struct {
	Name     string
	Index    int
	Game     *game.Game // nil when the game could not be created
	Rejected []error    // Moves the game refused, in submission order
	Err      error      // Set when the game could not be created
}

// ReplayFunc replays a single job.
type ReplayFunc func(job Job) Result

// Replayer returns a ReplayFunc that starts a fresh game for every job and
// submits each move in turn. Refused moves are collected and skipped; once the
// game has ended the remaining moves are dropped with a single error.
func Replayer(variant config.Variant, opts ...game.Option) ReplayFunc {
	return func(job Job) Result {
		res := Result{Name: job.Script.Name, Index: job.Index}

		g, err := game.New(variant, opts...)
		if err != nil {
			res.Err = err
			return res
		}
		res.Game = g

		for _, move := range job.Script.Moves {
			if err := g.MakeMove(move); err != nil {
				res.Rejected = append(res.Rejected, err)
				if errors.Is(err, errors.ErrGameOver) {
					break
				}
			}
		}
		return res
	}
}

// Pool manages a pool of workers replaying scripts.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
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

// NewPool creates a pool running replay. By default it has one worker per
// CPU and a buffer of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: runtime.NumCPU(),
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain without replaying
		}
		p.results <- p.replay(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the buffer is
// full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip any job not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll replays every script and returns the results in input order.
func ReplayAll(scripts []Script, replay ReplayFunc, opts ...PoolOption) []Result {
	results := make([]Result, len(scripts))
	if len(scripts) == 0 {
		return results
	}

	p := NewPool(replay, opts...)
	if p.numWorkers > len(scripts) {
		p.numWorkers = len(scripts)
	}
	p.Start()

	go func() {
		for i, s := range scripts {
			p.Submit(Job{Script: s, Index: i})
		}
		p.Close()
	}()

	for res := range p.Results() {
		results[res.Index] = res
	}
	return results
}
