package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/devbush/img2jxl/internal/domain"
)

// RenderSummary builds the final summary block for a run.
func RenderSummary(s *domain.RunSummary, dryRun bool) string {
	var sb strings.Builder

	divider := strings.Repeat("=", 60)
	sb.WriteString(divider + "\n")

	if s.Aborted {
		sb.WriteString(failStyle.Render("Run aborted") + "\n")
	}

	header := fmt.Sprintf("Done: %d converted, %d skipped, %d failed (of %d)",
		s.Succeeded, s.Skipped, s.Failed, s.Total)
	sb.WriteString(titleStyle.Render(header) + "\n")

	sb.WriteString(fmt.Sprintf("Total time: %s (encode time %s across workers)\n",
		FormatDuration(s.WallTime), FormatDuration(s.TotalDuration)))

	if dryRun {
		sb.WriteString("Size totals: n/a (dry run)\n")
		sb.WriteString(divider)
		return sb.String()
	}

	if s.Succeeded > 0 {
		sizeLine := fmt.Sprintf("Total size: %s -> %s (%s)",
			FormatBytes(s.TotalSourceBytes),
			FormatBytes(s.TotalOutputBytes),
			FormatRatio(s.Ratio()))
		sb.WriteString(sizeLine + "\n")

		saved := s.SpaceSaved()
		if saved >= 0 {
			sb.WriteString(successStyle.Render(fmt.Sprintf("Space saved: %s", FormatBytes(saved))) + "\n")
		} else {
			sb.WriteString(warnStyle.Render(fmt.Sprintf("Space saved: -%s (outputs are larger)", FormatBytes(-saved))) + "\n")
		}

		if s.WallTime > 0 {
			avg := s.WallTime / time.Duration(s.Succeeded)
			sb.WriteString(fmt.Sprintf("Average: %s per image\n", FormatDuration(avg)))
		}
	}

	sb.WriteString(divider)
	return sb.String()
}
