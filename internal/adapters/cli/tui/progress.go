package tui

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/devbush/img2jxl/internal/domain"
)

// Progress prints one line per completed task and keeps the failure list
// for the completion report. Safe for concurrent AddResult calls from
// worker goroutines.
type Progress struct {
	quiet    bool
	mu       sync.Mutex
	failures []domain.ConversionResult
}

// NewProgress creates a progress reporter. quiet suppresses per-file lines.
func NewProgress(quiet bool) *Progress {
	return &Progress{quiet: quiet}
}

// AddResult records one outcome and prints its progress line.
func (p *Progress) AddResult(done, total int, res domain.ConversionResult, eta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !res.Success && !res.Skipped {
		p.failures = append(p.failures, res)
	}
	if p.quiet {
		return
	}

	fmt.Println(resultLine(done, total, res, eta))
}

// resultLine builds the per-file progress line.
// [3/10] ✓ album/a.png (1.40 MB -> 0.62 MB, 44.3%) | ~12s left
func resultLine(done, total int, res domain.ConversionResult, eta time.Duration) string {
	prefix := fmt.Sprintf("[%d/%d]", done, total)
	name := res.Task.RelativePath
	if name == "" {
		name = filepath.Base(res.Task.SourcePath)
	}

	var line string
	switch {
	case res.Skipped:
		line = skipStyle.Render(fmt.Sprintf("%s - %s - skipped: destination exists", prefix, name))
	case res.Success:
		ratio := 0.0
		if res.SourceBytes > 0 {
			ratio = float64(res.OutputBytes) / float64(res.SourceBytes) * 100
		}
		line = successStyle.Render(fmt.Sprintf("%s ✓ %s (%s -> %s, %s)",
			prefix, name,
			FormatBytes(res.SourceBytes), FormatBytes(res.OutputBytes),
			FormatRatio(ratio)))
	default:
		line = failStyle.Render(fmt.Sprintf("%s ✗ %s - failed: %s", prefix, name, res.ErrMsg))
	}

	if eta > 0 && done < total {
		line += skipStyle.Render(fmt.Sprintf(" | ~%s left", FormatDuration(eta)))
	}
	return line
}

// Complete prints the failure list, if any.
func (p *Progress) Complete() {
	p.mu.Lock()
	failures := make([]domain.ConversionResult, len(p.failures))
	copy(failures, p.failures)
	p.mu.Unlock()

	if p.quiet || len(failures) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Failures:"))
	for _, f := range failures {
		name := f.Task.RelativePath
		if name == "" {
			name = f.Task.SourcePath
		}
		printfLine(failStyle, "  ✗ %s: %s", name, f.ErrMsg)
	}
}
