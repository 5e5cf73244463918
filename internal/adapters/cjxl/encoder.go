// Package cjxl wraps the external cjxl binary (libjxl) behind the
// ports.Encoder interface. Every invocation requests mathematically
// lossless output (-d 0) and a single encoder-internal thread, since
// parallelism lives at the dispatcher level.
package cjxl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/devbush/img2jxl/internal/config"
	"github.com/devbush/img2jxl/internal/domain"
	"github.com/devbush/img2jxl/internal/ports"
)

const (
	// DefaultEffort is the cjxl -e value used when none is configured.
	// 7 favors compression over speed without the pathological slowness
	// of 8 and 9.
	DefaultEffort = 7

	// maxStderrLen bounds the stderr excerpt recorded on failure.
	maxStderrLen = 512
)

// Encoder implements ports.Encoder by shelling out to cjxl.
type Encoder struct {
	binPath string
}

// NewEncoder creates an encoder. An empty binPath means resolve the
// binary from the bundled bin dir or the execution PATH.
func NewEncoder(binPath string) *Encoder {
	return &Encoder{binPath: binPath}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "cjxl.exe"
	}
	return "cjxl"
}

func (e *Encoder) findBinary() string {
	// Check bundled location first
	bundled := filepath.Join(config.BinDir(), binaryName())
	if _, err := os.Stat(bundled); err == nil {
		return bundled
	}

	// Check system PATH
	if path, err := exec.LookPath(binaryName()); err == nil {
		return path
	}

	return ""
}

// BinaryPath returns the resolved cjxl binary path, or "".
func (e *Encoder) BinaryPath() string {
	if e.binPath != "" {
		return e.binPath
	}
	e.binPath = e.findBinary()
	return e.binPath
}

// IsAvailable reports whether cjxl can be resolved.
func (e *Encoder) IsAvailable() bool {
	return e.BinaryPath() != ""
}

// buildArgs assembles the fixed lossless-mode argv for one task.
func buildArgs(task domain.ConversionTask, effort int) []string {
	return []string{
		task.SourcePath,
		task.DestinationPath,
		"-d", "0", // distance 0: mathematically lossless
		"-e", strconv.Itoa(clampEffort(effort)),
		"--num_threads=1",
	}
}

func clampEffort(effort int) int {
	if effort == 0 {
		return DefaultEffort
	}
	if effort < 1 {
		return 1
	}
	if effort > 9 {
		return 9
	}
	return effort
}

// Encode converts one file, blocking until cjxl exits. Each task is
// attempted exactly once; per-file failures land in the result while a
// missing binary is returned as domain.ErrEncoderNotFound.
func (e *Encoder) Encode(ctx context.Context, task domain.ConversionTask, opts ports.EncodeOpts) (domain.ConversionResult, error) {
	res := domain.ConversionResult{Task: task}

	binPath := e.BinaryPath()
	if binPath == "" {
		return res, domain.ErrEncoderNotFound
	}

	if fi, err := os.Stat(task.SourcePath); err == nil {
		res.SourceBytes = fi.Size()
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, binPath, buildArgs(task, opts.Effort)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)

	if err != nil {
		// A partial output is useless; drop it before reporting.
		os.Remove(task.DestinationPath)

		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			res.ErrMsg = fmt.Sprintf("encode timed out after %s", opts.Timeout)
			return res, nil
		}
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ErrMsg = truncateStderr(stderr.String())
			if res.ErrMsg == "" {
				res.ErrMsg = exitErr.Error()
			}
			return res, nil
		}

		// Anything else means the process never ran (binary missing or
		// not executable); every subsequent task would fail the same way.
		return res, fmt.Errorf("%w: %s: %v", domain.ErrEncoderNotFound, binPath, err)
	}

	fi, err := os.Stat(task.DestinationPath)
	if err != nil {
		res.ErrMsg = domain.ErrOutputMissing.Error()
		return res, nil
	}

	res.Success = true
	res.OutputBytes = fi.Size()
	return res, nil
}

func truncateStderr(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxStderrLen {
		return s
	}
	return s[:maxStderrLen] + "…"
}

var _ ports.Encoder = (*Encoder)(nil)
