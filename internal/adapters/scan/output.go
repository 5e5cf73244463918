package scan

import (
	"path/filepath"
	"strings"
)

// MapOutput returns the destination path for a relative source path,
// replacing its extension with ext. It is a pure function: the same
// inputs always yield the same path.
func MapOutput(outputRoot, relPath, ext string) string {
	stripped := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.Join(outputRoot, stripped+ext)
}

// EnsureParent creates the destination's missing parent directories.
// Idempotent: existing directories are not an error.
func (s *Scanner) EnsureParent(dest string) error {
	return s.fs.MkdirAll(filepath.Dir(dest), 0755)
}
