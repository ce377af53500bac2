// Command proofrw loads knowledge bases of rewrite rules and attempts
// to prove theorems about propositional formulas through best-first
// rewriting search.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/proofrw/proofrw/cmd/proofrw/command"
)

// version is the tool's reported version string.
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorNone,
		ErrorColor:  cli.UiColorRed,
		WarnColor:   cli.UiColorYellow,
	}

	level := hclog.LevelFromString(os.Getenv("PROOFRW_LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "proofrw",
		Level: level,
	})

	meta := command.Meta{UI: ui, Logger: logger}

	c := cli.NewCLI("proofrw", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return &command.CheckCommand{Meta: meta}, nil
		},
		"prove": func() (cli.Command, error) {
			return &command.ProveCommand{Meta: meta}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}
