package domain

import "time"

// ConversionTask describes one file's conversion unit of work. Tasks are
// created during scanning, never mutated, and consumed exactly once by a
// worker.
type ConversionTask struct {
	SourcePath      string // absolute or root-joined path to the input image
	RelativePath    string // path relative to the scanned root
	DestinationPath string // output path, rooted under the output root
}

// ConversionResult is the outcome of a single task.
type ConversionResult struct {
	Task        ConversionTask
	Success     bool
	Skipped     bool // destination already existed, nothing was encoded
	SourceBytes int64
	OutputBytes int64 // 0 unless Success
	Duration    time.Duration
	ErrMsg      string // set iff the task failed
}
