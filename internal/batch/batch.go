// Package batch resolves and processes multiple ROM files matched by a glob
// pattern.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/retroenv/retrogolib/log"
)

// ResolveFiles returns the list of files to process: every match of the
// batch glob pattern if given, otherwise the single input file.
func ResolveFiles(input, batch string) ([]string, error) {
	if batch != "" {
		matches, err := filepath.Glob(batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern %s: %w", batch, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("batch pattern %s matched no files", batch)
		}
		return matches, nil
	}
	return []string{input}, nil
}

// ProcessFunc analyzes a single ROM file.
type ProcessFunc func(path string) error

// Run processes every file returned by ResolveFiles, one goroutine per file
// bounded by a worker pool sized to the number of logical CPUs, logging and
// continuing past per-file failures so one bad ROM doesn't abort a scan of
// hundreds. It stops dispatching new work once ctx is cancelled and returns
// the cancellation error without treating it as a per-file failure.
func Run(ctx context.Context, logger *log.Logger, files []string, process ProcessFunc) error {
	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var failures int64
	var canceled atomic.Bool

	for _, path := range files {
		if ctx.Err() != nil {
			canceled.Store(true)
			break
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				canceled.Store(true)
				return
			}

			logger.Info("Processing ROM", log.String("file", path))
			if err := process(path); err != nil {
				logger.Error("Processing failed", log.String("file", path), log.Err(err))
				atomic.AddInt64(&failures, 1)
			}
		}(path)
	}
	wg.Wait()

	if canceled.Load() {
		return ctx.Err()
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(files))
	}
	return nil
}
