package worker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/fogchess-go/internal/config"
	chesserrors "github.com/lgbarn/fogchess-go/internal/errors"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// noopReplay returns a replay function that does nothing.
func noopReplay() ReplayFunc {
	return func(job Job) Result {
		return Result{Name: job.Script.Name, Index: job.Index}
	}
}

// countingReplay returns a replay function that increments a counter.
func countingReplay(counter *int32) ReplayFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Name: job.Script.Name, Index: job.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingReplay(&processed), WithWorkers(4))
	pool.Start()

	const numJobs = 10
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Script: Script{Name: fmt.Sprint(i)}, Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	slow := func(job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got >= numJobs {
		t.Logf("early stop may not have prevented all replays: %d replayed", got)
	}
}

func TestPoolTrySubmit(t *testing.T) {
	slow := func(job Job) Result {
		time.Sleep(100 * time.Millisecond)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(1), WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	if pool.TrySubmit(Job{Index: 2}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer size", []PoolOption{WithWorkers(1), WithBufferSize(50)}, 1, 50},
		{"invalid workers ignored", []PoolOption{WithWorkers(2), WithWorkers(0)}, 2, 10},
		{"invalid buffer ignored", []PoolOption{WithWorkers(1), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopReplay(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}

	if got := NewPool(noopReplay()).NumWorkers(); got < 1 {
		t.Errorf("default NumWorkers() = %d; want at least 1", got)
	}
}

func TestReplayAll_PreservesOrder(t *testing.T) {
	variableDelay := func(job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Result{Name: job.Script.Name, Index: job.Index}
	}

	scripts := make([]Script, 10)
	for i := range scripts {
		scripts[i] = Script{Name: fmt.Sprintf("game-%d", i)}
	}

	results := ReplayAll(scripts, variableDelay, WithWorkers(4))
	if len(results) != len(scripts) {
		t.Fatalf("len(results) = %d; want %d", len(results), len(scripts))
	}
	for i, res := range results {
		if res.Name != scripts[i].Name {
			t.Errorf("results[%d].Name = %q; want %q", i, res.Name, scripts[i].Name)
		}
	}

	if got := ReplayAll(nil, variableDelay); len(got) != 0 {
		t.Errorf("ReplayAll(nil) = %v; want empty", got)
	}
}

func TestReplayer(t *testing.T) {
	tests := []struct {
		name         string
		variant      config.Variant
		opts         []game.Option
		moves        []string
		wantPly      int
		wantStatus   game.Status
		wantRejected []error
		wantErr      error
	}{
		{
			name:       "all moves accepted",
			variant:    config.StandardVariant(),
			moves:      []string{"e2-e4", "e7-e5", "g1-f3"},
			wantPly:    3,
			wantStatus: game.Playing,
		},
		{
			name:         "illegal move skipped",
			variant:      config.StandardVariant(),
			moves:        []string{"e2-e4", "e7-e4", "e7-e5"},
			wantPly:      2,
			wantStatus:   game.Playing,
			wantRejected: []error{chesserrors.ErrIllegalMove},
		},
		{
			name:         "moves after mate dropped",
			variant:      config.StandardVariant(),
			moves:        []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4", "a2-a3", "a7-a6"},
			wantPly:      4,
			wantStatus:   game.Checkmate,
			wantRejected: []error{chesserrors.ErrGameOver},
		},
		{
			name:       "king capture under fog",
			variant:    config.FogOfWarVariant(),
			moves:      []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4", "a2-a3", "h4-e1"},
			wantPly:    6,
			wantStatus: game.KingCaptured,
		},
		{
			name:    "bad start position",
			variant: config.StandardVariant(),
			opts:    []game.Option{game.WithFEN("8/8/8/8/8/8/8/8 w - - 0 1")},
			wantErr: chesserrors.ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Replayer(tt.variant, tt.opts...)(Job{Script: Script{Name: tt.name, Moves: tt.moves}, Index: 3})

			if res.Index != 3 || res.Name != tt.name {
				t.Errorf("Result = {%q, %d}; want {%q, 3}", res.Name, res.Index, tt.name)
			}
			if tt.wantErr != nil {
				if !errors.Is(res.Err, tt.wantErr) {
					t.Errorf("Err = %v; want %v", res.Err, tt.wantErr)
				}
				if res.Game != nil {
					t.Error("Game should be nil when creation fails")
				}
				return
			}

			if res.Err != nil {
				t.Fatalf("Err = %v", res.Err)
			}
			if got := res.Game.Ply(); got != tt.wantPly {
				t.Errorf("Ply() = %d; want %d", got, tt.wantPly)
			}
			if got := res.Game.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %v; want %v", got, tt.wantStatus)
			}
			if len(res.Rejected) != len(tt.wantRejected) {
				t.Fatalf("Rejected = %v; want %d errors", res.Rejected, len(tt.wantRejected))
			}
			for i, want := range tt.wantRejected {
				if !errors.Is(res.Rejected[i], want) {
					t.Errorf("Rejected[%d] = %v; want %v", i, res.Rejected[i], want)
				}
			}
		})
	}
}

// TestReplayAll_NoRace is meant to be run with -race.
func TestReplayAll_NoRace(t *testing.T) {
	scripts := make([]Script, 20)
	for i := range scripts {
		scripts[i] = Script{Name: fmt.Sprint(i), Moves: []string{"e2-e4", "e7-e5", "d1-h5", "b8-c6", "f1-c4", "g8-f6", "h5-f7"}}
	}

	results := ReplayAll(scripts, Replayer(config.StandardVariant()), WithWorkers(8))
	for i, res := range results {
		if res.Game == nil || res.Game.Status() != game.Checkmate {
			t.Errorf("results[%d] did not reach checkmate", i)
		}
	}
}
