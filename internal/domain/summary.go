package domain

import "time"

// RunSummary accumulates counters and byte totals across a batch run.
// It is not safe for concurrent use on its own; callers serialize Record.
type RunSummary struct {
	Total            int
	Succeeded        int
	Failed           int
	Skipped          int
	TotalSourceBytes int64         // sources of succeeded tasks only
	TotalOutputBytes int64         // outputs of succeeded tasks only
	TotalDuration    time.Duration // sum of per-file encode durations
	WallTime         time.Duration
	Aborted          bool // run stopped early on a fatal condition
}

// Record folds one result into the summary.
func (s *RunSummary) Record(r ConversionResult) {
	switch {
	case r.Skipped:
		s.Skipped++
	case r.Success:
		s.Succeeded++
		s.TotalSourceBytes += r.SourceBytes
		s.TotalOutputBytes += r.OutputBytes
	default:
		s.Failed++
	}
	s.TotalDuration += r.Duration
}

// Completed returns how many tasks have produced a result so far.
func (s *RunSummary) Completed() int {
	return s.Succeeded + s.Failed + s.Skipped
}

// Ratio returns aggregate output size as a percentage of source size.
func (s *RunSummary) Ratio() float64 {
	if s.TotalSourceBytes == 0 {
		return 0
	}
	return float64(s.TotalOutputBytes) / float64(s.TotalSourceBytes) * 100
}

// SpaceSaved returns the aggregate byte difference between sources and
// outputs. Positive means the outputs are smaller.
func (s *RunSummary) SpaceSaved() int64 {
	return s.TotalSourceBytes - s.TotalOutputBytes
}
