package goallist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/goalkeeper/internal/models"
)

type AddGoalMsg struct{}

type ToggleGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID string
}

type EndDayMsg struct{}

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	if i.Goal.Completed {
		return "✓ " + i.Goal.Text
	}
	return "○ " + i.Goal.Text
}

func (i Item) Description() string {
	created := time.UnixMilli(i.Goal.CreatedAt).Format("15:04")
	if i.Goal.Completed {
		return fmt.Sprintf("done | added %s", created)
	}
	return fmt.Sprintf("open | added %s", created)
}

func (i Item) FilterValue() string { return i.Goal.Text }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	EndDay key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		EndDay: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(goals []models.Goal, width, height int) Model {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Today's Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.EndDay}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.EndDay}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetGoals(goals []models.Goal) {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleGoalMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteGoalMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.EndDay):
			return m, func() tea.Msg { return EndDayMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No goals set for today yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
