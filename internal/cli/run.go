package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/edgewalk/edgewalk"
	"github.com/katalvlaran/edgewalk/report"
	"github.com/katalvlaran/edgewalk/scenarios"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// walkFlags are the options of the run command.
type walkFlags struct {
	files     []string
	start     string
	edgeCount int
	symmetric bool
	bfs       bool
	maxPasses int
	validate  bool
	output    string
	wait      bool
}

func (f *walkFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.files, "file", "f", nil, "scenario YAML file(s) to walk instead of embedded ones")
	fs.StringVar(&f.start, "start", "", "override the scenario start node")
	fs.IntVar(&f.edgeCount, "edge-count", 0, "override the scenario edge count")
	fs.BoolVar(&f.symmetric, "symmetric", false, "remove both sides of edges drained during completion")
	fs.BoolVar(&f.bfs, "bfs", false, "seed candidates breadth-first from the start instead of by sorted label")
	fs.IntVar(&f.maxPasses, "max-passes", 0, "cap completion passes (0 derives the cap from the graph)")
	fs.BoolVar(&f.validate, "validate", false, "reject asymmetric graphs before walking")
	fs.StringVarP(&f.output, "output", "o", "text", "output format: text or yaml")
	fs.BoolVar(&f.wait, "wait", false, "wait for enter before exiting")
}

// walkOptions converts the flags into edgewalk options.
func (f *walkFlags) walkOptions() []edgewalk.Option {
	opts := []edgewalk.Option{edgewalk.WithMaxPasses(f.maxPasses)}
	if f.symmetric {
		opts = append(opts, edgewalk.WithSymmetricCompletion())
	}
	if f.bfs {
		opts = append(opts, edgewalk.WithBreadthFirstSeeding())
	}
	if f.validate {
		opts = append(opts, edgewalk.WithValidation())
	}

	return opts
}

func newRunCommand(logger *log.Logger) *cobra.Command {
	flags := &walkFlags{}
	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Walk the named embedded scenarios (all of them by default) or the given files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.output != "text" && flags.output != "yaml" {
				return fmt.Errorf("unknown output format %q", flags.output)
			}
			list, err := selectScenarios(flags.files, args)
			if err != nil {
				return err
			}

			summaries := make([]*report.Summary, 0, len(list))
			for _, s := range list {
				if flags.start != "" {
					s.Start = flags.start
				}
				if cmd.Flags().Changed("edge-count") {
					s.EdgeCount = flags.edgeCount
				}
				sum, err := runScenario(cmd, logger, s, flags.walkOptions())
				if err != nil {
					return err
				}
				summaries = append(summaries, sum)
			}

			out := cmd.OutOrStdout()
			if flags.output == "yaml" {
				err = report.YAML(out, summaries...)
			} else {
				for _, sum := range summaries {
					if err = report.Text(out, sum); err != nil {
						break
					}
				}
			}
			if err != nil {
				return err
			}
			if flags.wait {
				return waitForEnter(cmd.InOrStdin(), out)
			}

			return nil
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

// selectScenarios resolves files first, then named embedded scenarios, then
// falls back to every embedded scenario.
func selectScenarios(files, names []string) ([]*scenarios.Scenario, error) {
	if len(files) == 0 && len(names) == 0 {
		return scenarios.LoadAll()
	}
	out := make([]*scenarios.Scenario, 0, len(files)+len(names))
	for _, path := range files {
		s, err := scenarios.LoadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, name := range names {
		s, err := scenarios.Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// runScenario walks one scenario on a fresh graph and summarizes it.
func runScenario(cmd *cobra.Command, logger *log.Logger, s *scenarios.Scenario, opts []edgewalk.Option) (*report.Summary, error) {
	entry := logger.WithField("scenario", s.Name)
	opts = append(opts, edgewalk.WithContext(cmd.Context()), edgewalk.WithLogger(entry))

	res, err := edgewalk.Walk(s.Graph(), s.Start, s.EdgeCount, opts...)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.Name, err)
	}
	entry.WithFields(log.Fields{
		"path_len":   len(res.Path),
		"consumed":   res.Consumed,
		"drained":    res.Drained,
		"incomplete": res.Incomplete,
	}).Debug("walk finished")
	if res.Incomplete {
		entry.Warnf("walk stalled at %d of %d nodes", len(res.Path), s.EdgeCount)
	}

	return report.Summarize(s.Name, s.Start, res)
}

func listScenarios(out io.Writer) error {
	all, err := scenarios.LoadAll()
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Start", "Edge count", "Description"})
	for _, s := range all {
		t.AppendRow(table.Row{s.Name, s.Start, s.EdgeCount, s.Description})
	}
	t.Render()

	return nil
}
