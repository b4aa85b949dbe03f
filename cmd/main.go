package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pomodoro"),
		kong.Description("Pomodoro interval timer for the menu bar."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
