package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/goalkeeper/internal/scoring"
)

var (
	dangerResultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	successResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

type EndDayCmd struct {
	Yes bool `short:"y" help:"Accept the result without prompting."`
}

func (c *EndDayCmd) Run(ctx *Context) error {
	fmt.Println("Evaluating performance...")

	pending, err := ctx.Controller.EndDay(context.Background())
	if err != nil {
		return err
	}

	style := warningResultStyle
	switch pending.Tone {
	case scoring.ToneDanger:
		style = dangerResultStyle
	case scoring.ToneSuccess:
		style = successResultStyle
	}

	fmt.Println()
	fmt.Println(style.Render(fmt.Sprintf("Score: %d/100", pending.Record.Score)))
	fmt.Printf("%q\n", pending.Record.Summary)
	if pending.Tone == scoring.ToneDanger {
		fmt.Println(dangerResultStyle.Render("Danger: performance alert"))
	}
	fmt.Println()

	accept := c.Yes
	if !accept {
		confirm := huh.NewConfirm().
			Title("Accept this result?").
			Description("Accepting archives the day and clears today's goals.").
			Value(&accept)
		if err := confirm.Run(); err != nil {
			// Treat an aborted prompt as a decline so no goals are lost
			accept = false
		}
	}

	if !accept {
		ctx.Controller.CancelDay()
		fmt.Println("Discarded. Today's goals are unchanged.")
		return nil
	}

	record, err := ctx.Controller.CommitDay()
	if err != nil {
		return err
	}

	fmt.Printf("Day archived. +%d credits (total %d)\n", record.Score, ctx.Controller.State().User.Credits)
	return nil
}
