package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/goalkeeper/internal/app"
	"github.com/julianstephens/goalkeeper/internal/tui/components/goallist"
)

type endDayResultMsg struct {
	result app.PendingResult
}

type endDayFailedMsg struct {
	err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 6
		m.goalList.SetSize(msg.Width-4, contentHeight)
		m.historyModel.SetSize(msg.Width-4, contentHeight)
		m.profileModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case spinner.TickMsg:
		if m.state == StateEvaluating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case endDayResultMsg:
		result := msg.result
		m.result = &result
		m.state = StateResult
		return m, nil

	case endDayFailedMsg:
		m.status = msg.err.Error()
		m.state = StateGoals
		return m, nil

	case goallist.AddGoalMsg:
		m.newGoalForm()
		m.state = StateAddGoal
		return m, m.form.Init()

	case goallist.ToggleGoalMsg:
		m.controller.ToggleGoal(msg.ID)
		m.refresh()
		return m, nil

	case goallist.DeleteGoalMsg:
		m.controller.DeleteGoal(msg.ID)
		m.refresh()
		return m, nil

	case goallist.EndDayMsg:
		return m.startEndDay()
	}

	switch m.state {
	case StateAddGoal, StateEditProfile:
		return m.updateForm(msg)
	case StateResult:
		return m.updateResult(msg)
	case StateEvaluating:
		// Ignore input while the scoring call is in flight; a second
		// end-day must not be dispatched until this one resolves.
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.status = ""
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.status = ""
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateProfile && key.Matches(keyMsg, m.keys.Edit) {
			m.newProfileForm()
			m.state = StateEditProfile
			return m, m.form.Init()
		}
	}

	if m.state == StateGoals {
		var cmd tea.Cmd
		m.goalList, cmd = m.goalList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) startEndDay() (tea.Model, tea.Cmd) {
	if len(m.controller.State().CurrentGoals) == 0 {
		m.status = "Add some goals before ending the day!"
		return m, nil
	}

	m.status = ""
	m.state = StateEvaluating
	controller := m.controller
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := controller.EndDay(context.Background())
			if err != nil {
				return endDayFailedMsg{err: err}
			}
			return endDayResultMsg{result: result}
		},
	)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddGoal {
			m.controller.AddGoal(m.goalForm.Text)
			m.state = StateGoals
		} else {
			m.controller.UpdateProfile(m.profileForm.Name, m.profileForm.Bio)
			m.status = "Profile updated!"
			m.state = StateProfile
		}
		m.refresh()
		return m, nil
	case huh.StateAborted:
		if m.state == StateAddGoal {
			m.state = StateGoals
		} else {
			m.state = StateProfile
		}
		return m, nil
	}

	return m, cmd
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "enter":
		if _, err := m.controller.CommitDay(); err != nil {
			m.status = err.Error()
			m.state = StateGoals
			return m, nil
		}
		m.result = nil
		m.refresh()
		m.state = StateHistory
		return m, nil
	case "n", "esc", "q":
		m.controller.CancelDay()
		m.result = nil
		m.status = "Discarded. Today's goals are unchanged."
		m.state = StateGoals
		return m, nil
	}

	return m, nil
}
