// Package cli is the command tree: a root command plus search (run the
// algorithm) and generate (emit random instances). Package-level flag
// variables feed each command, PersistentPreRunE wires up the logger from
// the verbosity flag, and Execute() maps any error to a JSON error object
// and a non-zero exit.
package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/submodk/internal/applog"
	"github.com/katalvlaran/submodk/ioformat"
)

var (
	verbose  bool
	logLevel string
	logger   applog.Logger

	// runID tags every invocation, echoed in the JSON output and log
	// lines so a run's stdout can be correlated with its log stream.
	runID string
)

var rootCmd = &cobra.Command{
	Use:   "submodk",
	Short: "Exact submodular maximization under a cardinality constraint",
	Long: `submodk runs an exact branch-and-bound search for the best size-k
subset of a ground set under a monotone submodular objective: negative
group farness or partial dominating set over a graph, or Euclidean
k-medoid over a point cloud.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		runID = uuid.NewString()

		if logLevel == "off" {
			logger = applog.NullLogger{}
			return nil
		}

		level := applog.ParseLevel(logLevel)
		if verbose {
			level = applog.LevelDebug
		}
		logger = applog.New(level, os.Stderr).WithField("run_id", runID)
		logger.Debug("starting")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug | info | warn | error | off")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(generateCmd)

	// Errors are reported as a single JSON error object, not cobra's
	// default usage dump; Execute prints that object itself.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the command tree and exits the process with a non-zero
// status on any error. A fatal error is reported as a single JSON error
// object on stdout.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("run failed: %v", err)
		}
		_ = ioformat.WriteError(os.Stdout, runID, err)
		os.Exit(1)
	}
}
