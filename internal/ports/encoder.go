package ports

import (
	"context"
	"time"

	"github.com/devbush/img2jxl/internal/domain"
)

// EncodeOpts configures a single encoder invocation.
type EncodeOpts struct {
	Effort  int           // cjxl -e value, clamped to 1..9
	Timeout time.Duration // per-task limit; 0 means no limit
}

// Encoder runs the external JPEG XL encoder for one task.
type Encoder interface {
	// Encode converts one file, blocking until the child process exits.
	// Per-file failures (non-zero exit, missing output, timeout) are
	// reported inside the result; the returned error is reserved for
	// fatal conditions such as domain.ErrEncoderNotFound, which mean
	// every subsequent task would fail the same way.
	Encode(ctx context.Context, task domain.ConversionTask, opts EncodeOpts) (domain.ConversionResult, error)

	// IsAvailable reports whether the encoder binary can be resolved.
	IsAvailable() bool

	// BinaryPath returns the resolved encoder binary path, or "".
	BinaryPath() string
}
