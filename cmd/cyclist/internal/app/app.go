// Package app wires the cyclist CLI's cobra command tree to package loader
// (input decoding), package closure (the three CCL strategies) and package
// automaton (the SLA reduction), translating their errors into the exit
// code contract documented on the cyclist command.
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// exitError carries a specific process exit code out of a cobra RunE
// without cobra printing its own usage/error banner for expected outcomes
// (an unsound verdict is not a CLI usage error).
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit code %d", e.code) }

// Execute builds and runs the root command, returning the process exit code
// described in the cyclist command's doc comment (cmd/cyclist/main.go).
func Execute() int {
	cmd := newRootCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		log.Error().Err(err).Msg("cyclist: command failed")
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cyclist",
		Short: "Check cyclic-proof trace structures for soundness",
	}

	var input, flagStr string
	root.PersistentFlags().StringVarP(&input, "input", "i", "-", "path to the JSON graph, or - for stdin")
	root.PersistentFlags().StringVarP(&flagStr, "flags", "f", "", "optimization flag letters, e.g. fsm")

	root.AddCommand(
		newStrategyCmd("relational", "Run the legacy doubly-buffered CCL strategy", strategyRelational, &input, &flagStr),
		newStrategyCmd("order-reduced", "Run the lexicographic-sweep CCL strategy", strategyOrderReduced, &input, &flagStr),
		newStrategyCmd("fwk", "Run the Floyd-Warshall-Kleene CCL strategy", strategyFWK, &input, &flagStr),
		newSLACmd(&input),
	)
	return root
}
