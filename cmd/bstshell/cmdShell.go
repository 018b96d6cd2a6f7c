package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type cmdShell struct {
	sessionFlags
	quiet bool
}

func (cmd *cmdShell) Name() string     { return "shell" }
func (cmd *cmdShell) Synopsis() string { return "run commands on a tree interactively" }
func (cmd *cmdShell) Usage() string {
	return `shell [-v] [-iter] [-color] [-q]:
  Read commands from stdin, one per line. Type help for the list.
`
}

func (cmd *cmdShell) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
	f.BoolVar(&cmd.quiet, "q", false, "don't print a prompt")
}

func (cmd *cmdShell) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	s := cmd.session(os.Stdout)
	if !cmd.quiet {
		fmt.Println("=== Binary Search Tree ===")
	}
	if err := s.Run(os.Stdin, !cmd.quiet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
