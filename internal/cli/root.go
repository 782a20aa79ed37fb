package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/goalkeeper/internal/app"
	"github.com/julianstephens/goalkeeper/internal/config"
	"github.com/julianstephens/goalkeeper/internal/models"
	"github.com/julianstephens/goalkeeper/internal/storage"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store      storage.Provider
	Controller *app.Controller
	Config     config.Config
	Debug      bool
}

// ResolveGoal finds a goal by 1-based list position or id prefix, the two
// ways goals are referenced on the command line.
func ResolveGoal(goals []models.Goal, ref string) (models.Goal, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(goals) {
			return models.Goal{}, fmt.Errorf("no goal at position %d (have %d)", n, len(goals))
		}
		return goals[n-1], nil
	}

	var matches []models.Goal
	for _, g := range goals {
		if strings.HasPrefix(g.ID, ref) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 0:
		return models.Goal{}, fmt.Errorf("no goal matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Goal{}, fmt.Errorf("ambiguous goal reference %q", ref)
	}
}

// FormatGoalLine renders one goal for list output.
func FormatGoalLine(position int, goal models.Goal, showIDs bool) string {
	marker := "[ ]"
	if goal.Completed {
		marker = "[x]"
	}
	idStr := ""
	if showIDs {
		idStr = fmt.Sprintf(" (ID: %s)", goal.ID)
	}
	return fmt.Sprintf("  %d. %s %s%s", position, marker, goal.Text, idStr)
}
