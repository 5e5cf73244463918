package domain

import "errors"

var (
	// Scan errors
	ErrRootNotFound     = errors.New("root directory does not exist")
	ErrRootNotDirectory = errors.New("root path is not a directory")
	ErrRootUnreadable   = errors.New("root directory is not readable")

	// Configuration errors
	ErrEncoderNotFound = errors.New("cjxl not found")

	// Per-file encode errors
	ErrOutputMissing = errors.New("encoder exited cleanly but produced no output file")
)
