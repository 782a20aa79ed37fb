package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/goalkeeper/internal/chart"
	"github.com/julianstephens/goalkeeper/internal/models"
)

type HistoryCmd struct {
	Limit   int  `short:"n" help:"Number of records to show (newest first)." default:"10"`
	NoChart bool `help:"Skip the trend chart."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	history := ctx.Controller.State().History
	if len(history) == 0 {
		fmt.Println("No records yet. Complete a day to see history!")
		return nil
	}

	if !c.NoChart {
		fmt.Printf("Performance Trend (Last %d Days)\n\n", chart.TrendPoints)
		fmt.Println(chart.Trend(history))
		fmt.Println()
	}

	limit := c.Limit
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	// Newest first
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		printRecord(history[i])
	}
	return nil
}

func printRecord(record models.DailyRecord) {
	date := record.Date
	if t, err := time.Parse(time.RFC3339, record.Date); err == nil {
		date = t.Format("Monday, January 2, 2006")
	}

	completed := models.CompletedCount(record.Goals)
	fmt.Printf("%s\n", date)
	fmt.Printf("  Score: %d/100  |  %d / %d goals  |  %d%% completion\n",
		record.Score, completed, len(record.Goals), int(math.Round(record.CompletionRate*100)))
	fmt.Printf("  %q\n\n", record.Summary)
}
