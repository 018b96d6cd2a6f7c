package main

import (
	"flag"
	"io"
	"os"

	"github.com/g-m-twostay/go-bst/internal/console"
)

// sessionFlags are shared by every command that opens a console session.
type sessionFlags struct {
	verbose   bool
	iterative bool
	color     bool
}

func (sf *sessionFlags) register(f *flag.FlagSet) {
	f.BoolVar(&sf.verbose, "v", false, "log every operation to stderr")
	f.BoolVar(&sf.iterative, "iter", false, "use the iterative forms by default")
	f.BoolVar(&sf.color, "color", false, "highlight search and validation results")
}

func (sf *sessionFlags) session(out io.Writer) *console.Session {
	opts := console.Options{Iterative: sf.iterative, Color: sf.color}
	if sf.verbose {
		opts.Log = os.Stderr
	}
	return console.NewSession(out, opts)
}
