package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/goalkeeper/internal/app"
	"github.com/julianstephens/goalkeeper/internal/tui/components/goallist"
	"github.com/julianstephens/goalkeeper/internal/tui/components/history"
	"github.com/julianstephens/goalkeeper/internal/tui/components/profile"
)

type SessionState int

const (
	StateGoals SessionState = iota
	StateHistory
	StateProfile
	StateAddGoal
	StateEditProfile
	StateEvaluating
	StateResult
)

// tabCount is how many states are reachable via tab cycling.
const tabCount = 3

type GoalFormModel struct {
	Text string
}

type ProfileFormModel struct {
	Name string
	Bio  string
}

type Model struct {
	controller   *app.Controller
	state        SessionState
	keys         KeyMap
	help         help.Model
	goalList     goallist.Model
	historyModel history.Model
	profileModel profile.Model
	form         *huh.Form
	goalForm     *GoalFormModel
	profileForm  *ProfileFormModel
	spinner      spinner.Model
	result       *app.PendingResult
	status       string
	quitting     bool
	width        int
	height       int
}

func NewModel(controller *app.Controller) Model {
	state := controller.State()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		controller:   controller,
		state:        StateGoals,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		goalList:     goallist.New(state.CurrentGoals, 0, 0),
		historyModel: history.New(state.History, 0, 0),
		profileModel: profile.New(state.User, state.History, 0, 0),
		spinner:      sp,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateGoals:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Delete, m.keys.EndDay)
	case StateProfile:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateGoals:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete, m.keys.EndDay}
	case StateProfile:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh syncs every component with the controller's current document.
func (m *Model) refresh() {
	state := m.controller.State()
	m.goalList.SetGoals(state.CurrentGoals)
	m.historyModel.SetRecords(state.History)
	m.profileModel.SetState(state.User, state.History)
}

func (m *Model) newGoalForm() {
	m.goalForm = &GoalFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New goal").
				Placeholder("What is your main focus today?").
				Value(&m.goalForm.Text),
		),
	)
}

func (m *Model) newProfileForm() {
	user := m.controller.State().User
	m.profileForm = &ProfileFormModel{
		Name: user.Name,
		Bio:  user.Bio,
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&m.profileForm.Name),
			huh.NewInput().
				Title("Bio / motto").
				Value(&m.profileForm.Bio),
		),
	)
}
