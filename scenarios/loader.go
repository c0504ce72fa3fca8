package scenarios

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/edgewalk/adjacency"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var scenarioFS embed.FS

// ErrInvalidScenario is returned for scenario documents missing required fields.
var ErrInvalidScenario = errors.New("scenarios: invalid scenario")

// Scenario is one sample graph together with the walk parameters it is run with.
type Scenario struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Start       string              `yaml:"start"`
	EdgeCount   int                 `yaml:"edge_count"`
	Adjacency   map[string][]string `yaml:"adjacency"`
}

// Graph returns a fresh adjacency.Graph built from the scenario. Each call
// allocates a new graph, so walks never share state through a Scenario.
func (s *Scenario) Graph() adjacency.Graph[string] {
	g := make(adjacency.Graph[string], len(s.Adjacency))
	for k, nbrs := range s.Adjacency {
		g[k] = append(make([]string, 0, len(nbrs)), nbrs...)
	}

	return g
}

// Load reads an embedded scenario by name.
func Load(name string) (*Scenario, error) {
	data, err := scenarioFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}

	return s, nil
}

// LoadFile reads a scenario from a YAML file on disk. A missing name
// defaults to the file's base name without extension.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if s.Name == "" {
		base := path[strings.LastIndexAny(path, `/\`)+1:]
		s.Name = strings.TrimSuffix(base, ".yaml")
		s.Name = strings.TrimSuffix(s.Name, ".yml")
	}

	return s, nil
}

// Parse decodes a YAML scenario document and checks required fields.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	switch {
	case s.Start == "":
		return nil, fmt.Errorf("%w: start is required", ErrInvalidScenario)
	case s.EdgeCount < 0:
		return nil, fmt.Errorf("%w: edge_count cannot be negative (%d)", ErrInvalidScenario, s.EdgeCount)
	case len(s.Adjacency) == 0:
		return nil, fmt.Errorf("%w: adjacency is empty", ErrInvalidScenario)
	}
	if _, ok := s.Adjacency[s.Start]; !ok {
		return nil, fmt.Errorf("%w: start %q is not a node", ErrInvalidScenario, s.Start)
	}

	return &s, nil
}

// List returns the names of all embedded scenarios, sorted.
func List() []string {
	entries, _ := scenarioFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}

// LoadAll loads every embedded scenario in List order.
func LoadAll() ([]*Scenario, error) {
	names := List()
	out := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
