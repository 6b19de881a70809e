// Package parallel splits index ranges across worker goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// For calls f(lo, hi) over disjoint chunks covering [0, n) and returns the
// first error. Remaining chunks are skipped once a chunk fails.
// Falls back to a single sequential call if parallelism is disabled or n is
// too small.
func For(ctx context.Context, n int, f func(lo, hi int) error, cfg Config) error {
	if err := ctx.Err(); err != nil || n <= 0 {
		return err
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return f(0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)

	// Several chunks per worker keep the tail short when chunks cost unevenly.
	chunkSize := max((n+4*cfg.NumWorkers-1)/(4*cfg.NumWorkers), cfg.MinChunkSize, 1)
	for start := 0; start < n; start += chunkSize {
		if gctx.Err() != nil {
			break
		}
		lo, hi := start, min(start+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
