package cli

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devbush/img2jxl/internal/config"
	"github.com/devbush/img2jxl/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"encoder missing", fmt.Errorf("wrapped: %w", domain.ErrEncoderNotFound), exitFatal},
		{"root missing", domain.ErrRootNotFound, exitFatal},
		{"root not dir", domain.ErrRootNotDirectory, exitFatal},
		{"root unreadable", fmt.Errorf("wrapped: %w", domain.ErrRootUnreadable), exitFatal},
		{"per-file failures", errors.New("3 of 10 files failed"), exitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestBuildOptions_ConfigDefaults(t *testing.T) {
	cmd := NewRootCmd()
	cfg := config.DefaultConfig()
	cfg.Defaults.Workers = 4
	cfg.Defaults.Effort = 9
	cfg.Defaults.Timeout = "90s"

	opts, err := buildOptions(cmd, cfg, "photos")
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}

	if opts.Root != "photos" {
		t.Errorf("Root = %s, want photos", opts.Root)
	}
	if opts.Workers != 4 {
		t.Errorf("Workers = %d, want 4 (from config)", opts.Workers)
	}
	if opts.Effort != 9 {
		t.Errorf("Effort = %d, want 9 (from config)", opts.Effort)
	}
	if opts.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s (from config)", opts.Timeout)
	}
}

func TestBuildOptions_FlagsWin(t *testing.T) {
	cmd := NewRootCmd()
	for flag, value := range map[string]string{
		"workers": "2",
		"effort":  "3",
		"timeout": "30s",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Defaults.Workers = 16
	cfg.Defaults.Effort = 8

	opts, err := buildOptions(cmd, cfg, ".")
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if opts.Workers != 2 || opts.Effort != 3 || opts.Timeout != 30*time.Second {
		t.Errorf("opts = %+v, want flag values 2/3/30s", opts)
	}
}

func TestBuildOptions_WorkersFloor(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.Flags().Set("workers", "0"); err != nil {
		t.Fatal(err)
	}

	opts, err := buildOptions(cmd, config.DefaultConfig(), ".")
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if opts.Workers != 1 {
		t.Errorf("Workers = %d, want floored to 1", opts.Workers)
	}
}

func TestBuildOptions_InvalidEffort(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.Flags().Set("effort", "11"); err != nil {
		t.Fatal(err)
	}

	if _, err := buildOptions(cmd, config.DefaultConfig(), "."); err == nil {
		t.Error("buildOptions() expected error for effort 11")
	}
}

func TestBuildOptions_InvalidTimeout(t *testing.T) {
	cmd := NewRootCmd()
	if err := cmd.Flags().Set("timeout", "soon"); err != nil {
		t.Fatal(err)
	}

	if _, err := buildOptions(cmd, config.DefaultConfig(), "."); err == nil {
		t.Error("buildOptions() expected error for invalid timeout")
	}
}
