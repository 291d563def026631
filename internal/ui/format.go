package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HumanDuration renders whole minutes as "2 hrs 5 mins" style text.
func HumanDuration(mins int) string {
	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d mins", h, m)
	case h > 0:
		if h == 1 {
			return "1 hr"
		}
		return fmt.Sprintf("%d hrs", h)
	case m == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d mins", m)
	}
}

// FormatElapsed renders a live duration as h:mm:ss.
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// FormatSigned renders hours with an explicit sign, e.g. "+1.4" / "-0.5".
func FormatSigned(hours float64) string {
	if hours >= 0 {
		return fmt.Sprintf("+%.1f", hours)
	}
	return fmt.Sprintf("%.1f", hours)
}

// ProgressBar renders a filled/empty bar for a 0-100 percentage.
func ProgressBar(percentage, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	filled := (percentage * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Render(bar)
}
