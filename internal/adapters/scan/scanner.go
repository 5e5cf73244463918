package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/devbush/img2jxl/internal/domain"
	"github.com/devbush/img2jxl/internal/ports"
)

// Recognized image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// OutputExt is the extension given to every destination file.
const OutputExt = ".jxl"

// Scanner implements ports.ImageScanner over an afero filesystem.
type Scanner struct {
	fs afero.Fs
}

// NewScanner creates a scanner. A nil fs defaults to the OS filesystem.
func NewScanner(fs afero.Fs) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Scanner{fs: fs}
}

// Scan walks root, collects files with recognized image extensions, and
// returns tasks sorted by source path for deterministic processing order.
func (s *Scanner) Scan(root, outputRoot string) ([]domain.ConversionTask, error) {
	fi, err := s.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRootUnreadable, root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRootNotDirectory, root)
	}

	var tasks []domain.ConversionTask
	err = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tasks = append(tasks, domain.ConversionTask{
			SourcePath:      path,
			RelativePath:    rel,
			DestinationPath: MapOutput(outputRoot, rel, OutputExt),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].SourcePath < tasks[j].SourcePath
	})
	return tasks, nil
}

var _ ports.ImageScanner = (*Scanner)(nil)
