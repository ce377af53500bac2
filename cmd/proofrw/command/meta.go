// Package command implements the proofrw CLI's subcommands using
// mitchellh/cli: one Meta embedded in every command, carrying the
// pieces every subcommand needs (a UI to write through and a
// structured logger).
package command

import (
	"flag"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Meta holds state shared by every proofrw subcommand.
type Meta struct {
	UI     cli.Ui
	Logger hclog.Logger
}

// FlagSet returns a flag.FlagSet pre-wired to silence its own usage
// output, since command errors are reported through Meta's UI
// instead.
func (m *Meta) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}
