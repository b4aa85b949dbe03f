package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"pomodoro/internal/history"
	"pomodoro/internal/logging"
)

// HistoryCmd lists the most recent journal entries
type HistoryCmd struct {
	Limit int `help:"Number of entries to show" short:"n" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	dbPath, err := cli.databasePath()
	if err != nil {
		return err
	}
	journal, err := history.Open(dbPath, logging.Logger)
	if err != nil {
		return err
	}
	defer journal.Close()

	ctx := context.Background()
	entries, err := journal.Recent(ctx, h.Limit)
	if err != nil {
		return err
	}
	today, err := journal.CompletedWorkToday(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPLETED\tPHASE\tDURATION")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			entry.CompletedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Phase.Label(),
			entry.Duration())
	}
	w.Flush()

	fmt.Fprintf(cli.out(), "\nToday: %d pomodoros\n", today)
	return nil
}
