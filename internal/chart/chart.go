// Package chart renders the score history as a terminal trend chart. It is a
// pure function of the records: no state, no I/O.
package chart

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/goalkeeper/internal/models"
)

const (
	// TrendPoints is how many of the most recent records are charted.
	TrendPoints = 7
	// trendHeight is the bar height in rows for a score of 100.
	trendHeight = 8
)

var (
	dangerBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	axisStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Trend renders a bar chart of the last TrendPoints scores, one column per
// committed day, labeled with the day's weekday.
func Trend(records []models.DailyRecord) string {
	if len(records) == 0 {
		return emptyStyle.Render("No history data available yet.")
	}
	if len(records) > TrendPoints {
		records = records[len(records)-TrendPoints:]
	}

	levels := make([]int, len(records))
	for i, r := range records {
		level := int(math.Round(float64(r.Score) / 100 * trendHeight))
		if r.Score > 0 && level == 0 {
			level = 1
		}
		if level > trendHeight {
			level = trendHeight
		}
		levels[i] = level
	}

	var b strings.Builder
	for row := trendHeight; row >= 1; row-- {
		for i, r := range records {
			if levels[i] >= row {
				b.WriteString(barStyle(r.Score).Render(" ██ "))
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")
	}

	for _, r := range records {
		b.WriteString(axisStyle.Render(" " + weekdayLabel(r.Date) + " "))
	}

	return b.String()
}

func barStyle(score int) lipgloss.Style {
	switch {
	case score < 50:
		return dangerBarStyle
	case score >= 80:
		return successBarStyle
	default:
		return warningBarStyle
	}
}

func weekdayLabel(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return "??"
	}
	return t.Format("Mon")[:2]
}
