// Package cli wires the edgewalk command tree: cobra commands, flag parsing
// and logrus setup around the scenarios, edgewalk and report packages.
package cli

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers so tests can capture it.
func NewRootCommand(version string) *cobra.Command {
	var verbose bool
	logger := log.New()

	rootCmd := &cobra.Command{
		Use:          "edgewalk",
		Short:        "Walk sample graphs consuming every edge at most once.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newRunCommand(logger), newListCommand())

	return rootCmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the embedded sample scenarios.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listScenarios(cmd.OutOrStdout())
		},
	}
}

// waitForEnter blocks until a line (or EOF) arrives on in.
func waitForEnter(in io.Reader, out io.Writer) error {
	if _, err := io.WriteString(out, "Press enter to exit\n"); err != nil {
		return err
	}
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err == io.EOF || (n == 1 && buf[0] == '\n') {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
