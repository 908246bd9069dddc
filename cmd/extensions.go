package cmd

import (
	"fmt"

	"filecat/pkg/combine"

	"github.com/spf13/cobra"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "List the extensions filecat treats as text or source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ext := range combine.AllowedExtensions() {
			fmt.Fprintln(cmd.OutOrStdout(), ext)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(extensionsCmd)
}
