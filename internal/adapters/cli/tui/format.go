package tui

import (
	"fmt"
	"time"
)

// FormatBytes formats a byte count with a binary-ish unit ladder
// Examples: 512 -> "512 B", 204800 -> "200.0 KB", 5242880 -> "5.0 MB"
func FormatBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case n >= gb || n <= -gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb || n <= -mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb || n <= -kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// FormatDuration formats a duration as "45s", "3m05s" or "1h02m"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatRatio formats an output/source percentage, "n/a" when unknown
func FormatRatio(ratio float64) string {
	if ratio <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", ratio)
}
