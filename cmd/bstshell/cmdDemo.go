package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/g-m-twostay/go-bst/internal/console"
)

type cmdDemo struct {
	sessionFlags
}

func (cmd *cmdDemo) Name() string     { return "demo" }
func (cmd *cmdDemo) Synopsis() string { return "walk through the tree operations on a small tree" }
func (cmd *cmdDemo) Usage() string    { return "demo [-v] [-iter] [-color]\n" }

func (cmd *cmdDemo) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
}

func (cmd *cmdDemo) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	s := cmd.session(os.Stdout)
	for _, st := range console.Demo.Steps {
		fmt.Println(">", st.Line(false))
		if err := s.Exec(st.Line(false)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
