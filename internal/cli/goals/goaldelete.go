package goals

import (
	"fmt"

	"github.com/julianstephens/goalkeeper/internal/cli"
)

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal position or ID prefix."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := cli.ResolveGoal(ctx.Controller.State().CurrentGoals, c.Goal)
	if err != nil {
		return err
	}

	ctx.Controller.DeleteGoal(goal.ID)
	fmt.Printf("Deleted goal: %s\n", goal.Text)
	return nil
}
