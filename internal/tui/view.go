package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/goalkeeper/internal/scoring"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateGoals:
		content = docStyle.Render(m.goalList.View())
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateProfile:
		content = docStyle.Render(m.profileModel.View())
	case StateAddGoal, StateEditProfile:
		content = docStyle.Render(m.form.View())
	case StateEvaluating:
		content = m.viewEvaluating()
	case StateResult:
		content = m.viewResult()
	}

	sections := []string{m.viewHeader(), content}
	if m.status != "" {
		sections = append(sections, statusStyle.Render("  "+m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	var tabs []string
	for i, title := range []string{"Goals", "History", "Profile"} {
		if m.tabIndex() == i {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	credits := creditsStyle.Render(fmt.Sprintf("Credits: %d", m.controller.State().User.Credits))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, "  ", credits)...)
}

// tabIndex maps the session state onto the tab it belongs to, so modal states
// keep their origin tab highlighted.
func (m Model) tabIndex() int {
	switch m.state {
	case StateGoals, StateAddGoal, StateEvaluating, StateResult:
		return 0
	case StateHistory:
		return 1
	case StateProfile, StateEditProfile:
		return 2
	}
	return 0
}

func (m Model) viewEvaluating() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		m.spinner.View()+" Evaluating Performance...",
	)
}

func (m Model) viewResult() string {
	if m.result == nil {
		return ""
	}

	style := warningStyle
	switch m.result.Tone {
	case scoring.ToneDanger:
		style = dangerStyle
	case scoring.ToneSuccess:
		style = successStyle
	}

	lines := []string{
		style.Render(fmt.Sprintf("Score: %d", m.result.Record.Score)),
		"",
		fmt.Sprintf("%q", m.result.Record.Summary),
		"",
	}
	if m.result.Tone == scoring.ToneDanger {
		lines = append(lines, dangerStyle.Render("Danger: Performance Alert"), "")
	}
	lines = append(lines,
		"[y] Accept & Continue",
		"[n] Discard",
	)

	box := resultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
