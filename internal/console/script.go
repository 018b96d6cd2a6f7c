package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Script is a list of console commands read from YAML:
//
//	iterative: true
//	steps:
//	  - op: insert
//	    keys: [50, 30, 70]
//	  - op: inorder
//	    recursive: true
type Script struct {
	Iterative bool   `yaml:"iterative"`
	Steps     []Step `yaml:"steps"`
}

// Step is one command. Iterative and Recursive override the script's default.
type Step struct {
	Op        string `yaml:"op"`
	Keys      []int  `yaml:"keys"`
	Iterative bool   `yaml:"iterative"`
	Recursive bool   `yaml:"recursive"`
}

// Line renders s as a command line for Session.Exec.
func (s Step) Line(iterative bool) string {
	fs := []string{s.Op}
	if s.Recursive {
		fs = append(fs, "-r")
	} else if s.Iterative || iterative {
		fs = append(fs, "-i")
	}
	for _, k := range s.Keys {
		fs = append(fs, strconv.Itoa(k))
	}
	return strings.Join(fs, " ")
}

// LoadScript reads and checks a Script. Every op must be a known command.
func LoadScript(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	var sc Script
	if err = yaml.UnmarshalStrict(data, &sc); err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}
	for i, st := range sc.Steps {
		if _, ok := lookup(strings.ToLower(st.Op)); !ok {
			return nil, errors.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
		if st.Iterative && st.Recursive {
			return nil, errors.Errorf("step %d: both iterative and recursive", i+1)
		}
	}
	return &sc, nil
}

// RunScript executes the steps of sc in order, stopping at the first failing
// step or at an exit step.
func (s *Session) RunScript(sc *Script) error {
	for i, st := range sc.Steps {
		if err := s.Exec(st.Line(sc.Iterative)); err == ErrExit {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Demo walks through insertion, traversal, deletion of a node with two
// children and duplicate handling on a small tree.
var Demo = &Script{Steps: []Step{
	{Op: "insert", Keys: []int{50, 30, 70, 20, 40, 60, 80}},
	{Op: "show"},
	{Op: "inorder"},
	{Op: "inorder", Iterative: true},
	{Op: "preorder"},
	{Op: "postorder", Iterative: true},
	{Op: "level"},
	{Op: "stats"},
	{Op: "search", Keys: []int{40, 45}},
	{Op: "search", Keys: []int{40, 45}, Iterative: true},
	{Op: "delete", Keys: []int{30}},
	{Op: "inorder"},
	{Op: "stats"},
	{Op: "clear"},
	{Op: "insert", Keys: []int{10, 10}, Iterative: true},
	{Op: "stats"},
	{Op: "validate"},
}}
