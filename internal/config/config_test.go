package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Workers != 8 {
		t.Errorf("Default workers = %d, want 8", cfg.Defaults.Workers)
	}
	if cfg.Defaults.Effort != 7 {
		t.Errorf("Default effort = %d, want 7", cfg.Defaults.Effort)
	}
	if cfg.Defaults.Timeout != "5m" {
		t.Errorf("Default timeout = %s, want 5m", cfg.Defaults.Timeout)
	}
	if cfg.Paths.Cjxl != "" {
		t.Errorf("Default cjxl path = %s, want empty", cfg.Paths.Cjxl)
	}
}

func TestEnsureDirs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}
	for _, dir := range []string{AppDir(), BinDir()} {
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			t.Errorf("directory %s not created", dir)
		}
	}

	// Safe to call again once the directories exist.
	if err := EnsureDirs(); err != nil {
		t.Errorf("EnsureDirs() on existing dirs error = %v", err)
	}
}

func TestGetTimeout(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"5m", 5 * time.Minute, false},
		{"300s", 300 * time.Second, false},
		{"1h", time.Hour, false},
		{"0", 0, false},
		{"", 0, false},
		{"-1m", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Defaults.Timeout = tt.input
			d, err := cfg.GetTimeout()
			if (err != nil) != tt.wantErr {
				t.Errorf("GetTimeout() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && d != tt.want {
				t.Errorf("GetTimeout() = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Workers = 4
	cfg.Defaults.Effort = 9
	cfg.Paths.Cjxl = "/opt/libjxl/bin/cjxl"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Defaults.Workers != 4 {
		t.Errorf("Loaded workers = %d, want 4", loaded.Defaults.Workers)
	}
	if loaded.Defaults.Effort != 9 {
		t.Errorf("Loaded effort = %d, want 9", loaded.Defaults.Effort)
	}
	if loaded.Paths.Cjxl != "/opt/libjxl/bin/cjxl" {
		t.Errorf("Loaded cjxl path = %s, want /opt/libjxl/bin/cjxl", loaded.Paths.Cjxl)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.Workers != 8 {
		t.Errorf("Loaded workers = %d, want default 8", cfg.Defaults.Workers)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid yaml")
	}
}
