package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/devbush/img2jxl/internal/adapters/cli/tui"
	"github.com/devbush/img2jxl/internal/application"
	"github.com/devbush/img2jxl/internal/config"
	"github.com/devbush/img2jxl/internal/domain"
)

func runConvert(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	app, err := NewApp(configFlag)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	opts, err := buildOptions(cmd, app.Config, root)
	if err != nil {
		return err
	}

	// Resolve the encoder up front so a missing binary aborts before any
	// file is touched.
	if !opts.DryRun && !app.Encoder.IsAvailable() {
		return fmt.Errorf("%w on PATH (install libjxl, or set paths.cjxl in %s)",
			domain.ErrEncoderNotFound, config.ConfigPath())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := tui.NewProgress(quietFlag)

	// Succeeded sources, collected for a possible post-run delete prompt.
	var succeededMu sync.Mutex
	var succeeded []string

	summary, runErr := app.ConvertSvc.Run(ctx, opts,
		func(done, total int, res domain.ConversionResult, eta time.Duration) {
			if res.Success && !opts.DryRun {
				succeededMu.Lock()
				succeeded = append(succeeded, res.Task.SourcePath)
				succeededMu.Unlock()
			}
			progress.AddResult(done, total, res, eta)
		},
		tui.Warn,
	)
	if runErr != nil && summary == nil {
		// Fatal before dispatch: scan or configuration error.
		return runErr
	}

	progress.Complete()

	if !quietFlag {
		fmt.Println()
		fmt.Println(tui.RenderSummary(summary, opts.DryRun))
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			tui.Warn("interrupted, %d of %d files processed", summary.Completed(), summary.Total)
		} else {
			return runErr
		}
	}

	// Deletion was not requested up front: offer it interactively after a
	// run with successes, when there is a terminal to ask on.
	if !opts.DeleteOriginals && !opts.DryRun && len(succeeded) > 0 && canPrompt() {
		ok, err := tui.RunConfirm(fmt.Sprintf("Delete %d original file(s)?", len(succeeded)))
		if err == nil && ok {
			deleteOriginals(succeeded)
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total)
	}
	return nil
}

// buildOptions merges flag values over config-file defaults. Flags win
// when explicitly set.
func buildOptions(cmd *cobra.Command, cfg *config.Config, root string) (application.ConvertOptions, error) {
	opts := application.ConvertOptions{
		Root:            root,
		OutputRoot:      outputFlag,
		Workers:         cfg.Defaults.Workers,
		Effort:          cfg.Defaults.Effort,
		DeleteOriginals: deleteFlag,
		DryRun:          dryRunFlag,
	}

	if cmd.Flags().Changed("workers") {
		opts.Workers = workersFlag
	}
	if cmd.Flags().Changed("effort") {
		opts.Effort = effortFlag
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Effort < 1 || opts.Effort > 9 {
		return opts, fmt.Errorf("invalid effort %d: must be 1-9", opts.Effort)
	}

	if cmd.Flags().Changed("timeout") {
		d, err := time.ParseDuration(timeoutFlag)
		if err != nil || d < 0 {
			return opts, fmt.Errorf("invalid timeout %q", timeoutFlag)
		}
		opts.Timeout = d
	} else {
		d, err := cfg.GetTimeout()
		if err != nil {
			return opts, err
		}
		opts.Timeout = d
	}

	return opts, nil
}

func canPrompt() bool {
	return !quietFlag && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// deleteOriginals removes source files after the user confirmed, printing
// a per-file line the way the conversion pass does.
func deleteOriginals(paths []string) {
	var deleted, failed int
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			failed++
			tui.Warn("could not delete %s: %v", path, err)
			continue
		}
		deleted++
	}
	fmt.Printf("Deleted %d original file(s)", deleted)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
}
