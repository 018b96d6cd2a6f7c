// Package console is a line oriented front end for a Trees.BST[int]. It
// parses commands, runs them on a session's tree, and prints the results.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-bst/Trees"
)

// ErrExit is returned by Exec for the exit command.
var ErrExit = errors.New("exit")

// Options configure a Session.
type Options struct {
	Iterative bool      // default strategy for commands that have two forms.
	Color     bool      // highlight found and absent results.
	Log       io.Writer // destination of the logfmt log; nil discards it.
}

// Session owns one tree for the lifetime of a console.
type Session struct {
	tree     *Trees.BST[int]
	out      io.Writer
	log      *logger.Logger
	strategy Trees.Strategy
	good     func(a ...interface{}) string
	bad      func(a ...interface{}) string
}

func NewSession(out io.Writer, opts Options) *Session {
	w := opts.Log
	if w == nil {
		w = io.Discard
	}
	s := &Session{
		tree: Trees.New[int](),
		out:  out,
		log:  logger.NewWriter("ns=bstshell", w),
	}
	if opts.Iterative {
		s.strategy = Trees.Iterative
	}
	good, bad := color.New(color.FgGreen), color.New(color.FgRed)
	if opts.Color {
		good.EnableColor()
		bad.EnableColor()
	} else {
		good.DisableColor()
		bad.DisableColor()
	}
	s.good, s.bad = good.SprintFunc(), bad.SprintFunc()
	return s
}

// Tree returns the session's tree.
func (s *Session) Tree() *Trees.BST[int] {
	return s.tree
}

type command struct {
	name, args, help string
	run              func(s *Session, st Trees.Strategy, keys []int) error
	keys             int // minimum number of keys.
	nonEmpty         bool
}

var commands []command

func init() {
	commands = []command{
		{"insert", "[-i|-r] key...", "insert keys", (*Session).insert, 1, false},
		{"delete", "key...", "delete keys", (*Session).delete, 1, true},
		{"search", "[-i|-r] key...", "search for keys", (*Session).search, 1, true},
		{"inorder", "[-i|-r]", "in-order traversal", traversal(Trees.InOrder), 0, true},
		{"preorder", "[-i|-r]", "pre-order traversal", traversal(Trees.PreOrder), 0, true},
		{"postorder", "[-i|-r]", "post-order traversal", traversal(Trees.PostOrder), 0, true},
		{"level", "[-i|-r]", "level order traversal", traversal(Trees.LevelOrder), 0, true},
		{"show", "", "display tree structure", (*Session).show, 0, true},
		{"stats", "", "tree statistics", (*Session).stats, 0, true},
		{"validate", "", "validate BST", (*Session).validate, 0, false},
		{"clear", "", "clear tree", (*Session).clear, 0, false},
		{"help", "", "list commands", (*Session).help, 0, false},
		{"exit", "", "leave the console", func(*Session, Trees.Strategy, []int) error { return ErrExit }, 0, false},
	}
}

func lookup(name string) (command, bool) {
	if name == "quit" {
		name = "exit"
	}
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Exec runs one command line. Blank lines and lines starting with # do nothing.
func (s *Session) Exec(line string) error {
	fs := strings.Fields(line)
	if len(fs) == 0 || strings.HasPrefix(fs[0], "#") {
		return nil
	}
	c, ok := lookup(strings.ToLower(fs[0]))
	if !ok {
		return errors.Errorf("unknown command %q, try help", fs[0])
	}
	st, keys, err := s.parseArgs(fs[1:])
	if err != nil {
		return errors.Wrap(err, c.name)
	}
	if len(keys) < c.keys {
		return errors.Errorf("usage: %s %s", c.name, c.args)
	}
	if c.nonEmpty && s.tree.Size() == 0 {
		_, err = fmt.Fprintln(s.out, "Tree is empty!")
		return err
	}
	log := s.log.At(c.name).Start()
	if err = c.run(s, st, keys); err != nil && err != ErrExit {
		return log.Error(err)
	}
	log.Successf("strategy=%s keys=%d", st, len(keys))
	return err
}

func (s *Session) parseArgs(args []string) (Trees.Strategy, []int, error) {
	st := s.strategy
	var keys []int
	for _, a := range args {
		switch a {
		case "-i", "-iter", "-iterative":
			st = Trees.Iterative
		case "-r", "-rec", "-recursive":
			st = Trees.Recursive
		default:
			k, err := strconv.Atoi(a)
			if err != nil {
				return st, nil, errors.Wrapf(err, "invalid key %q", a)
			}
			keys = append(keys, k)
		}
	}
	return st, keys, nil
}

// Run reads commands from in until it is exhausted or the exit command.
// Invalid commands are reported and skipped.
func (s *Session) Run(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "bst> ")
		}
		if !sc.Scan() {
			return errors.Wrap(sc.Err(), "reading commands")
		}
		if err := s.Exec(sc.Text()); err == ErrExit {
			return nil
		} else if err != nil {
			fmt.Fprintf(s.out, "Invalid input! %v\n", err)
		}
	}
}

func (s *Session) insert(st Trees.Strategy, keys []int) error {
	for _, k := range keys {
		var ok bool
		if st == Trees.Iterative {
			ok = s.tree.InsertIter(k)
		} else {
			ok = s.tree.Insert(k)
		}
		s.log.At("insert").Logf("key=%d inserted=%t", k, ok)
		if ok {
			fmt.Fprintf(s.out, "Value %d inserted successfully (%s).\n", k, st)
		} else if _, err := fmt.Fprintf(s.out, "Value %d is already in the tree.\n", k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) delete(_ Trees.Strategy, keys []int) error {
	for _, k := range keys {
		ok := s.tree.Remove(k)
		s.log.At("delete").Logf("key=%d removed=%t", k, ok)
		if ok {
			fmt.Fprintf(s.out, "Value %d deleted successfully.\n", k)
		} else if _, err := fmt.Fprintf(s.out, "Value %d is not in the tree.\n", k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) search(st Trees.Strategy, keys []int) error {
	for _, k := range keys {
		var p *int
		if st == Trees.Iterative {
			p = s.tree.SearchIter(k)
		} else {
			p = s.tree.Search(k)
		}
		r := s.bad("not found")
		if p != nil {
			r = s.good("found")
		}
		if _, err := fmt.Fprintf(s.out, "Value %d %s in the tree (%s search).\n", k, r, st); err != nil {
			return err
		}
	}
	return nil
}

func traversal(o Trees.Order) func(*Session, Trees.Strategy, []int) error {
	return func(s *Session, st Trees.Strategy, _ []int) error {
		vs := s.tree.Traverse(o, st)
		strs := make([]string, len(vs))
		for i, v := range vs {
			strs[i] = strconv.Itoa(v)
		}
		_, err := fmt.Fprintf(s.out, "%s (%s): %s\n", o, st, strings.Join(strs, " "))
		return err
	}
}

func (s *Session) show(Trees.Strategy, []int) error {
	if _, err := fmt.Fprintln(s.out, "Tree Structure:"); err != nil {
		return err
	}
	return errors.Wrap(s.tree.Render(s.out), "rendering tree")
}

func optional(p *int) string {
	if p == nil {
		return "none"
	}
	return strconv.Itoa(*p)
}

func (s *Session) stats(Trees.Strategy, []int) error {
	st := s.tree.Stats()
	_, err := fmt.Fprintf(s.out, "Tree Height: %d\nTree Size: %d\nNumber of Leaves: %d\nIs Valid BST: %s\nMinimum Value: %s\nMaximum Value: %s\n",
		st.Height, st.Size, st.Leaves, yesNo(st.Valid), optional(st.Min), optional(st.Max))
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (s *Session) validate(Trees.Strategy, []int) (err error) {
	if s.tree.Size() == 0 {
		_, err = fmt.Fprintln(s.out, "Tree is empty (valid BST)!")
	} else if s.tree.Valid() {
		_, err = fmt.Fprintf(s.out, "Tree is %s valid BST.\n", s.good("a"))
	} else {
		_, err = fmt.Fprintf(s.out, "Tree is %s valid BST.\n", s.bad("not a"))
	}
	return
}

func (s *Session) clear(Trees.Strategy, []int) (err error) {
	if n := s.tree.Clear(); n > 0 {
		s.log.At("clear").Logf("released=%d", n)
		_, err = fmt.Fprintln(s.out, "Tree cleared successfully.")
	} else {
		_, err = fmt.Fprintln(s.out, "Tree is already empty.")
	}
	return
}

func (s *Session) help(Trees.Strategy, []int) error {
	for _, c := range commands {
		if _, err := fmt.Fprintf(s.out, "  %-10s %-16s %s\n", c.name, c.args, c.help); err != nil {
			return err
		}
	}
	return nil
}
