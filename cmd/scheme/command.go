package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command wraps a cobra.Command the way the retrieval pack's own CLI
// commands do, so the run closure gets a handle back to its own flags
// without reaching for package-level state.
type Command struct {
	cmd *cobra.Command
}

// NewCommand builds a Command whose RunE delegates to run.
func NewCommand(use, short, example string, run func(*Command, []string) error) *Command {
	var c *Command
	c = &Command{
		cmd: &cobra.Command{
			Use:     use,
			Short:   short,
			Example: example,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(c, args)
			},
		},
	}
	return c
}

// CobraCmd returns the underlying cobra.Command.
func (c *Command) CobraCmd() *cobra.Command {
	return c.cmd
}

// Flags returns the command's persistent flag set.
func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.PersistentFlags()
}

// Execute runs the command against os.Args.
func (c *Command) Execute() error {
	return c.cmd.Execute()
}
