// Command rlcsbeam solves or trains a constrained longest common
// subsequence (CC-LCS) heuristic beam search.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("rlcsbeam failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rlcsbeam",
		Short:         "Learned-heuristic beam search for constrained LCS",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newSolveCmd(), newTrainCmd())
	return root
}
