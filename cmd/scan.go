package cmd

import (
	"fmt"

	"filecat/pkg/combine"
	"filecat/pkg/logging"

	"github.com/spf13/cobra"
)

var scanCount bool

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List the text and source extensions present under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := combine.NewRunner(logging.Logger, 1)
		defer runner.Close()

		res := <-runner.Scan(cmd.Context(), rootDir(args), scanOptions())
		if res.Err != nil {
			return fmt.Errorf("scan failed: %w", res.Err)
		}

		if scanCount {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", len(res.Value))
			return nil
		}
		for _, ext := range res.Value {
			fmt.Fprintln(cmd.OutOrStdout(), ext)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanCount, "count", false, "Print only the number of extensions found")
	scanCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first unreadable subdirectory")
	RootCmd.AddCommand(scanCmd)
}

func scanOptions() combine.Options {
	return combine.Options{
		Logger:   logging.Logger,
		FailFast: failFast || cfg.FailFast,
	}
}
