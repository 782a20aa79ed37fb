package goals

import (
	"fmt"

	"github.com/julianstephens/goalkeeper/internal/cli"
)

type GoalDoneCmd struct {
	Goal string `arg:"" help:"Goal position or ID prefix."`
}

func (c *GoalDoneCmd) Run(ctx *cli.Context) error {
	goal, err := cli.ResolveGoal(ctx.Controller.State().CurrentGoals, c.Goal)
	if err != nil {
		return err
	}

	ctx.Controller.ToggleGoal(goal.ID)

	status := "done"
	if goal.Completed {
		// Toggling a completed goal marks it open again
		status = "open"
	}
	fmt.Printf("Marked %q as %s\n", goal.Text, status)
	return nil
}
