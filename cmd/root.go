package cmd

import (
	"context"
	"fmt"

	"filecat/pkg/config"
	"filecat/pkg/logging"
	"filecat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	debug      bool
	configPath string

	// cfg is loaded before every subcommand runs.
	cfg = config.Default()
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "filecat",
	Short: "filecat concatenates source files into one delimited text",
	Long: `filecat scans a directory for text and source file extensions and concatenates
the selected files into a single output, each wrapped in "=== FILE: path ===" markers.
The result goes to a file, the clipboard or stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := config.Load(configPath, rootDir(args))
		if err != nil {
			return err
		}
		cfg = loaded

		if err := logging.Setup(debug || cfg.Debug, version.AppName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if path != "" {
			logging.Logger.Debug("Loaded config file", zap.String("file", path))
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: $"+config.EnvVar+" or <dir>/"+config.FileName+")")
}

// Execute runs the command tree. ctx cancels in-flight scans and exports.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// rootDir returns the directory argument, defaulting to the working directory.
func rootDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
