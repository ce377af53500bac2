package command

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/proofrw/proofrw/pkg/sexpr"
)

// CheckCommand loads a knowledge base file and reports whether it
// installs cleanly, without attempting to prove anything. It is the
// "load the knowledge base" half of the two small top-level
// entry programs.
type CheckCommand struct {
	Meta
}

func (c *CheckCommand) Help() string {
	return "Usage: proofrw check <kb.scm>\n\n  Load a knowledge base file and report the rules it installs.\n"
}

func (c *CheckCommand) Synopsis() string {
	return "Load and validate a knowledge base file"
}

func (c *CheckCommand) Run(args []string) int {
	flags := c.FlagSet("check")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	rest := flags.Args()
	if len(rest) != 1 {
		c.UI.Error("check requires exactly one argument: the knowledge base file")
		return 1
	}

	codec := sexpr.NewCodec()
	rules, err := c.loadKB(codec, rest[0])
	if err != nil {
		return 1
	}

	c.UI.Output(fmt.Sprintf("%s: %d rule(s) installed", rest[0], len(rules)))
	return 0
}

var _ cli.Command = (*CheckCommand)(nil)
