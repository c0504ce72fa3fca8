package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/edgewalk/edgewalk"
	"github.com/katalvlaran/edgewalk/report"
	"github.com/katalvlaran/edgewalk/scenarios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// walkScenario runs an embedded scenario and summarizes it.
func walkScenario(t *testing.T, name string) *report.Summary {
	t.Helper()
	s, err := scenarios.Load(name)
	require.NoError(t, err)
	res, err := edgewalk.Walk(s.Graph(), s.Start, s.EdgeCount)
	require.NoError(t, err)
	sum, err := report.Summarize(s.Name, s.Start, res)
	require.NoError(t, err)

	return sum
}

func TestSummarize_Graph1IsOpen(t *testing.T) {
	sum := walkScenario(t, "graph1")

	assert.Equal(t, report.Open, sum.Kind)
	assert.Equal(t, []string{"A", "B", "5", "5", "5", "B"}, sum.Solution)
	assert.Equal(t, 5, sum.Expanded)
	assert.False(t, sum.Incomplete)
}

func TestSummarize_Graph2IsClosed(t *testing.T) {
	sum := walkScenario(t, "graph2")

	assert.Equal(t, report.Closed, sum.Kind)
	assert.Equal(t, []string{"A", "B", "6", "6", "6", "A"}, sum.Solution)
}

func TestSummarize_Edges(t *testing.T) {
	_, err := report.Summarize("x", "A", nil)
	assert.ErrorIs(t, err, report.ErrEmptyPath)

	_, err = report.Summarize("x", "A", &edgewalk.Result[string]{})
	assert.ErrorIs(t, err, report.ErrEmptyPath)

	sum, err := report.Summarize("x", "A", &edgewalk.Result[string]{Path: []string{"A"}, Expanded: 1, Incomplete: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "1", "1", "1", "A"}, sum.Solution)
	assert.Equal(t, report.Closed, sum.Kind)
}

func TestText_Open(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, walkScenario(t, "graph1")))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, strings.Repeat("-", 110), lines[0])
	assert.Equal(t, []string{
		"Solution for graph1",
		"path exist from source node 'A' to other nodes and Path is:",
		"[A B C D A C E D B]",
		"Solution:",
		"[A B 5 5 5 B]",
		"No path exist from source node 'A' to 'A'",
		"No Solution",
	}, lines[1:])
}

func TestText_ClosedAndIncomplete(t *testing.T) {
	sum := walkScenario(t, "graph2")
	sum.Incomplete = true

	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, sum))
	out := buf.String()

	assert.Contains(t, out, "path exist from source node 'A' to 'A' only and Path is:\n[A B C D A C E D B F A]\n")
	assert.Contains(t, out, "No path exist from source node 'A' to other nodes\n")
	assert.Contains(t, out, "(walk stalled after 11 nodes)\n")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.YAML(&buf, walkScenario(t, "graph1"), walkScenario(t, "graph2")))

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "graph1", got[0]["name"])
	assert.Equal(t, "open", got[0]["kind"])
	assert.Equal(t, "closed", got[1]["kind"])
	assert.Equal(t, 6, got[1]["expanded"])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "open", report.Open.String())
	assert.Equal(t, "closed", report.Closed.String())
}
