package history

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/goalkeeper/internal/chart"
	"github.com/julianstephens/goalkeeper/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	quoteStyle  = lipgloss.NewStyle().Italic(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	dangerScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	successScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// maxRecords caps how many archive entries are listed below the chart.
const maxRecords = 5

type Model struct {
	records []models.DailyRecord
	width   int
	height  int
}

func New(records []models.DailyRecord, width, height int) Model {
	return Model{records: records, width: width, height: height}
}

func (m *Model) SetRecords(records []models.DailyRecord) {
	m.records = records
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	if len(m.records) == 0 {
		return "\n" + emptyStyle.Render("No records yet. Complete a day to see history!")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Performance Trend (Last %d Days)", chart.TrendPoints)))
	b.WriteString("\n\n")
	b.WriteString(chart.Trend(m.records))
	b.WriteString("\n\n")

	// Newest first
	shown := 0
	for i := len(m.records) - 1; i >= 0 && shown < maxRecords; i-- {
		b.WriteString(renderRecord(m.records[i]))
		shown++
	}

	return b.String()
}

func renderRecord(record models.DailyRecord) string {
	date := record.Date
	if t, err := time.Parse(time.RFC3339, record.Date); err == nil {
		date = t.Format("Mon, Jan 2 2006")
	}

	completed := models.CompletedCount(record.Goals)
	score := scoreStyle(record.Score).Render(fmt.Sprintf("Score: %d/100", record.Score))

	return fmt.Sprintf("%s  %s\n  %s\n  %s\n\n",
		dateStyle.Render(date),
		score,
		quoteStyle.Render(fmt.Sprintf("%q", record.Summary)),
		dateStyle.Render(fmt.Sprintf("%d / %d goals · %d%% completion",
			completed, len(record.Goals), int(math.Round(record.CompletionRate*100)))),
	)
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score < 50:
		return dangerScoreStyle
	case score >= 80:
		return successScoreStyle
	default:
		return warningScoreStyle
	}
}
