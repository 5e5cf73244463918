package cli

import (
	"github.com/spf13/afero"

	"github.com/devbush/img2jxl/internal/adapters/cjxl"
	"github.com/devbush/img2jxl/internal/adapters/scan"
	"github.com/devbush/img2jxl/internal/application"
	"github.com/devbush/img2jxl/internal/config"
)

// App holds all application dependencies
type App struct {
	Config  *config.Config
	Encoder *cjxl.Encoder

	ConvertSvc *application.ConvertService
}

// NewApp creates and wires up all dependencies
func NewApp(configPath string) (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	// Create adapters
	fs := afero.NewOsFs()
	scanner := scan.NewScanner(fs)
	encoder := cjxl.NewEncoder(cfg.Paths.Cjxl)

	// Create services
	convertSvc := application.NewConvertService(fs, scanner, encoder)

	return &App{
		Config:     cfg,
		Encoder:    encoder,
		ConvertSvc: convertSvc,
	}, nil
}
