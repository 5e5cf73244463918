// Package application orchestrates batch conversion runs: scanning,
// bounded-concurrency dispatch, statistics aggregation, and cleanup.
package application

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/devbush/img2jxl/internal/domain"
	"github.com/devbush/img2jxl/internal/ports"
)

// ConvertOptions configures a batch conversion run.
type ConvertOptions struct {
	Root            string // input directory
	OutputRoot      string // defaults to Root (outputs land next to sources)
	Workers         int    // bounded pool size, minimum 1
	Effort          int    // cjxl effort 1..9
	Timeout         time.Duration
	DeleteOriginals bool // delete each source after its successful encode
	DryRun          bool // report what would convert, touch nothing
}

// ProgressFunc receives each outcome as it completes. done includes this
// result; eta is a running-average estimate for the remaining tasks.
// It may be called from multiple worker goroutines.
type ProgressFunc func(done, total int, res domain.ConversionResult, eta time.Duration)

// WarnFunc receives non-fatal warnings such as cleanup failures.
type WarnFunc func(format string, args ...any)

// ConvertService wires the scanner and encoder into a worker pool run.
type ConvertService struct {
	fs      afero.Fs
	scanner ports.ImageScanner
	encoder ports.Encoder
}

// NewConvertService creates a conversion service. A nil fs defaults to
// the OS filesystem.
func NewConvertService(fs afero.Fs, scanner ports.ImageScanner, encoder ports.Encoder) *ConvertService {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &ConvertService{fs: fs, scanner: scanner, encoder: encoder}
}

// Run scans the root and converts every recognized image over a pool of
// opts.Workers concurrent encoder invocations. Exactly one result is
// recorded per task. A fatal condition (encoder unresolvable) stops
// dispatching new tasks, lets in-flight ones drain, marks the summary
// aborted, and is returned as the error; per-file failures never abort
// siblings.
func (s *ConvertService) Run(ctx context.Context, opts ConvertOptions, progress ProgressFunc, warn WarnFunc) (*domain.RunSummary, error) {
	if opts.OutputRoot == "" {
		opts.OutputRoot = opts.Root
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Fail before touching any file when the encoder cannot be resolved.
	if !opts.DryRun && !s.encoder.IsAvailable() {
		return nil, domain.ErrEncoderNotFound
	}

	tasks, err := s.scanner.Scan(opts.Root, opts.OutputRoot)
	if err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{Total: len(tasks)}
	if len(tasks) == 0 {
		return summary, nil
	}

	start := time.Now()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		fatalErr error
	)
	sem := make(chan struct{}, workers)

	for _, task := range tasks {
		mu.Lock()
		stop := fatalErr != nil
		mu.Unlock()
		if stop || ctx.Err() != nil {
			mu.Lock()
			summary.Aborted = true
			mu.Unlock()
			break
		}

		wg.Add(1)
		sem <- struct{}{} // acquire a slot before spawning: at most `workers` in flight

		go func(t domain.ConversionTask) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := s.convertOne(ctx, t, opts)
			if err != nil {
				mu.Lock()
				if fatalErr == nil {
					fatalErr = err
				}
				mu.Unlock()
				return
			}

			// The callback runs under the lock so progress lines stay in
			// completion order.
			mu.Lock()
			summary.Record(res)
			done := summary.Completed()
			eta := estimateRemaining(start, done, summary.Total)
			if progress != nil {
				progress(done, summary.Total, res, eta)
			}
			mu.Unlock()

			if res.Success && opts.DeleteOriginals && !opts.DryRun {
				if rmErr := s.fs.Remove(t.SourcePath); rmErr != nil && warn != nil {
					warn("could not delete %s: %v", t.SourcePath, rmErr)
				}
			}
		}(task)
	}

	wg.Wait()
	summary.WallTime = time.Since(start)

	if ctx.Err() != nil {
		summary.Aborted = true
	}
	if fatalErr != nil {
		summary.Aborted = true
		return summary, fatalErr
	}
	return summary, nil
}

// convertOne handles a single task: skip-if-exists check, parent
// directory creation, then one encoder invocation.
func (s *ConvertService) convertOne(ctx context.Context, task domain.ConversionTask, opts ConvertOptions) (domain.ConversionResult, error) {
	res := domain.ConversionResult{Task: task}
	if fi, err := s.fs.Stat(task.SourcePath); err == nil {
		res.SourceBytes = fi.Size()
	}

	// Never re-encode over an existing destination.
	if exists, _ := afero.Exists(s.fs, task.DestinationPath); exists {
		res.Skipped = true
		return res, nil
	}

	if opts.DryRun {
		res.Success = true
		return res, nil
	}

	if err := s.scanner.EnsureParent(task.DestinationPath); err != nil {
		res.ErrMsg = "cannot create output directory: " + err.Error()
		return res, nil
	}

	encRes, err := s.encoder.Encode(ctx, task, ports.EncodeOpts{
		Effort:  opts.Effort,
		Timeout: opts.Timeout,
	})
	if err != nil {
		return res, err
	}
	return encRes, nil
}

// estimateRemaining projects time left from the running average per task.
func estimateRemaining(start time.Time, done, total int) time.Duration {
	if done == 0 || done >= total {
		return 0
	}
	avg := time.Since(start) / time.Duration(done)
	return avg * time.Duration(total-done)
}
