package profile

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/goalkeeper/internal/models"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	statStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

type Model struct {
	user    models.UserProfile
	history []models.DailyRecord
	width   int
	height  int
}

func New(user models.UserProfile, history []models.DailyRecord, width, height int) Model {
	return Model{user: user, history: history, width: width, height: height}
}

func (m *Model) SetState(user models.UserProfile, history []models.DailyRecord) {
	m.user = user
	m.history = history
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Name") + nameStyle.Render(m.user.Name) + "\n")
	b.WriteString(labelStyle.Render("Bio") + m.user.Bio + "\n")

	avatar := "default"
	if m.user.AvatarURL != "" {
		avatar = "custom"
	}
	b.WriteString(labelStyle.Render("Avatar") + avatar + "\n")
	b.WriteString(labelStyle.Render("Credits") + statStyle.Render(fmt.Sprintf("%d", m.user.Credits)) + "\n")

	stats := fmt.Sprintf("%s%s\n%s%s",
		labelStyle.Render("Days tracked"), statStyle.Render(fmt.Sprintf("%d", len(m.history))),
		labelStyle.Render("Avg score"), statStyle.Render(fmt.Sprintf("%d", m.avgScore())))
	b.WriteString(sectionStyle.Render(stats))

	b.WriteString("\n\n" + hintStyle.Render("Press 'e' to edit your profile."))
	return b.String()
}

func (m Model) avgScore() int {
	if len(m.history) == 0 {
		return 0
	}
	total := 0
	for _, record := range m.history {
		total += record.Score
	}
	return int(math.Round(float64(total) / float64(len(m.history))))
}
