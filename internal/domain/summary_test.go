package domain

import (
	"testing"
	"time"
)

func TestRunSummary_Record(t *testing.T) {
	var s RunSummary
	s.Total = 3

	s.Record(ConversionResult{Success: true, SourceBytes: 500000, OutputBytes: 200000, Duration: 2 * time.Second})
	s.Record(ConversionResult{ErrMsg: "invalid input", SourceBytes: 1000, Duration: time.Second})
	s.Record(ConversionResult{Skipped: true, SourceBytes: 4000})

	if s.Succeeded != 1 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", s.Succeeded, s.Failed, s.Skipped)
	}
	if s.Completed() != 3 {
		t.Errorf("Completed() = %d, want 3", s.Completed())
	}
	if s.TotalSourceBytes != 500000 {
		t.Errorf("TotalSourceBytes = %d, want 500000 (succeeded tasks only)", s.TotalSourceBytes)
	}
	if s.TotalOutputBytes != 200000 {
		t.Errorf("TotalOutputBytes = %d, want 200000 (succeeded tasks only)", s.TotalOutputBytes)
	}
	if s.TotalDuration != 3*time.Second {
		t.Errorf("TotalDuration = %v, want 3s", s.TotalDuration)
	}
}

func TestRunSummary_Ratio(t *testing.T) {
	s := RunSummary{TotalSourceBytes: 500000, TotalOutputBytes: 200000}
	if got := s.Ratio(); got != 40 {
		t.Errorf("Ratio() = %v, want 40", got)
	}

	var empty RunSummary
	if got := empty.Ratio(); got != 0 {
		t.Errorf("Ratio() on empty summary = %v, want 0", got)
	}
}

func TestRunSummary_SpaceSaved(t *testing.T) {
	s := RunSummary{TotalSourceBytes: 1000, TotalOutputBytes: 600}
	if got := s.SpaceSaved(); got != 400 {
		t.Errorf("SpaceSaved() = %d, want 400", got)
	}

	grew := RunSummary{TotalSourceBytes: 100, TotalOutputBytes: 150}
	if got := grew.SpaceSaved(); got != -50 {
		t.Errorf("SpaceSaved() = %d, want -50", got)
	}
}
