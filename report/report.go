// Package report turns walk results into the console summary printed for
// each sample graph: whether the walk returned to its start, the path, and
// a six-element solution line.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/edgewalk/edgewalk"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPath is returned when a result carries no path to summarize.
var ErrEmptyPath = errors.New("report: empty path")

// separator frames each summary in text output.
var separator = strings.Repeat("-", 110)

// Kind classifies a walk by where it ends relative to its start.
type Kind int

const (
	// Open walks end somewhere other than the start node.
	Open Kind = iota
	// Closed walks end on the start node.
	Closed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Closed {
		return "closed"
	}

	return "open"
}

// MarshalYAML renders Kind by name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Summary is the presentation view of one walk.
type Summary struct {
	Name       string   `yaml:"name"`
	Start      string   `yaml:"start"`
	Kind       Kind     `yaml:"kind"`
	Path       []string `yaml:"path"`
	Expanded   int      `yaml:"expanded"`
	Incomplete bool     `yaml:"incomplete"`

	// Solution is [first, second, n, n, n, last] with n the expanded count.
	Solution []string `yaml:"solution"`
}

// Summarize builds a Summary for the walk r that started at start.
// A single-node path repeats its only node in the second slot.
func Summarize(name, start string, r *edgewalk.Result[string]) (*Summary, error) {
	if r == nil || len(r.Path) == 0 {
		return nil, ErrEmptyPath
	}
	first, last := r.Path[0], r.Path[len(r.Path)-1]
	second := first
	if len(r.Path) > 1 {
		second = r.Path[1]
	}
	n := strconv.Itoa(r.Expanded)

	kind := Open
	if last == start {
		kind = Closed
	}

	return &Summary{
		Name:       name,
		Start:      start,
		Kind:       kind,
		Path:       append([]string(nil), r.Path...),
		Expanded:   r.Expanded,
		Incomplete: r.Incomplete,
		Solution:   []string{first, second, n, n, n, last},
	}, nil
}

// Text writes s in the console layout: separator, heading, the walk and its
// solution line, then the scenario that was ruled out.
func Text(w io.Writer, s *Summary) error {
	var b strings.Builder
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Solution for %s\n", s.Name)
	if s.Kind == Closed {
		fmt.Fprintf(&b, "path exist from source node '%s' to '%s' only and Path is:\n", s.Start, s.Start)
	} else {
		fmt.Fprintf(&b, "path exist from source node '%s' to other nodes and Path is:\n", s.Start)
	}
	fmt.Fprintln(&b, s.Path)
	fmt.Fprintln(&b, "Solution:")
	fmt.Fprintln(&b, s.Solution)
	if s.Kind == Closed {
		fmt.Fprintf(&b, "No path exist from source node '%s' to other nodes\n", s.Start)
	} else {
		fmt.Fprintf(&b, "No path exist from source node '%s' to '%s'\n", s.Start, s.Start)
	}
	fmt.Fprintln(&b, "No Solution")
	if s.Incomplete {
		fmt.Fprintf(&b, "(walk stalled after %d nodes)\n", len(s.Path))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// YAML writes the summaries as a YAML sequence.
func YAML(w io.Writer, summaries ...*Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
