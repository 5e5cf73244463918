package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/img2jxl/internal/domain"
)

// Exit codes: 0 all files succeeded or none found, 1 one or more files
// failed, 2 fatal configuration or scan error.
const (
	exitOK     = 0
	exitFailed = 1
	exitFatal  = 2
)

var (
	// Global flags
	workersFlag int
	effortFlag  int
	outputFlag  string
	deleteFlag  bool
	timeoutFlag string
	quietFlag   bool
	dryRunFlag  bool
	configFlag  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "img2jxl [directory]",
		Short: "Batch-convert images to lossless JPEG XL",
		Long: `img2jxl walks a directory tree and converts every supported image
(jpg, jpeg, png, bmp, gif, tiff, tif, webp) to JPEG XL using the external
cjxl encoder in mathematically lossless mode.

Conversions run on a bounded worker pool; each cjxl invocation stays
single-threaded so parallelism lives at the pool level. Output files
mirror the input structure, next to the sources by default or under a
separate root with --output.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().IntVarP(&workersFlag, "workers", "j", 8, "Concurrent conversions (min 1)")
	rootCmd.Flags().IntVarP(&effortFlag, "effort", "e", 7, "cjxl effort 1-9 (higher = smaller, slower)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output root directory (default: input directory)")
	rootCmd.Flags().BoolVar(&deleteFlag, "delete-originals", false, "Delete each source file after a successful conversion")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", "", "Per-file timeout, e.g. 5m (0 disables; default from config)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress per-file progress output")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "List what would be converted without encoding or deleting")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Config file path (default ~/.img2jxl/config.yaml)")

	return rootCmd
}

// Execute runs the root command and maps errors to process exit codes.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrEncoderNotFound),
		errors.Is(err, domain.ErrRootNotFound),
		errors.Is(err, domain.ErrRootNotDirectory),
		errors.Is(err, domain.ErrRootUnreadable):
		return exitFatal
	default:
		return exitFailed
	}
}
