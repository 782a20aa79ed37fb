package goals

import (
	"fmt"

	"github.com/julianstephens/goalkeeper/internal/cli"
	"github.com/julianstephens/goalkeeper/internal/models"
)

type GoalListCmd struct {
	ShowIDs bool `help:"Show goal IDs." name:"show-ids"`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	state := ctx.Controller.State()
	if len(state.CurrentGoals) == 0 {
		fmt.Println("No goals set for today yet.")
		return nil
	}

	fmt.Println("Today's goals:")
	for i, goal := range state.CurrentGoals {
		fmt.Println(cli.FormatGoalLine(i+1, goal, c.ShowIDs))
	}

	completed := models.CompletedCount(state.CurrentGoals)
	fmt.Printf("\n%d / %d completed\n", completed, len(state.CurrentGoals))
	return nil
}
