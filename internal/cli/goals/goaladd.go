package goals

import (
	"fmt"
	"strings"

	"github.com/julianstephens/goalkeeper/internal/cli"
)

type GoalAddCmd struct {
	Text []string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	text := strings.Join(c.Text, " ")
	goal, ok := ctx.Controller.AddGoal(text)
	if !ok {
		return fmt.Errorf("goal text cannot be empty")
	}

	fmt.Printf("Added goal: %s (ID: %s)\n", goal.Text, goal.ID)
	return nil
}
