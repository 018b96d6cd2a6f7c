package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-bst/internal/console"
)

type cmdScript struct {
	sessionFlags
}

func (cmd *cmdScript) Name() string     { return "script" }
func (cmd *cmdScript) Synopsis() string { return "replay the commands of a YAML script" }
func (cmd *cmdScript) Usage() string {
	return `script [-v] [-iter] [-color] file.yaml...:
  Run the steps of each script on one tree, in order.
`
}

func (cmd *cmdScript) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
}

func (cmd *cmdScript) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s := cmd.session(os.Stdout)
	for _, name := range f.Args() {
		if err := runFile(s, name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func runFile(s *console.Session, name string) error {
	fl, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fl.Close()
	sc, err := console.LoadScript(fl)
	if err != nil {
		return errors.Wrap(err, name)
	}
	return errors.Wrap(s.RunScript(sc), name)
}
