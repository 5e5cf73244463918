package ports

import "github.com/devbush/img2jxl/internal/domain"

// ImageScanner enumerates convertible image files under a root directory.
type ImageScanner interface {
	// Scan walks root recursively and returns one task per file whose
	// extension is a recognized image format (case-insensitive), with
	// destination paths mirroring the relative structure under outputRoot.
	// The result is sorted by source path for deterministic processing.
	Scan(root, outputRoot string) ([]domain.ConversionTask, error)

	// EnsureParent creates a destination's missing parent directories.
	// Idempotent: existing directories are not an error.
	EnsureParent(dest string) error
}
