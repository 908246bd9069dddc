package cmd

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"filecat/pkg/combine"
	"filecat/pkg/logging"
	"filecat/pkg/picker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	exportExtensions  []string
	exportOutput      string
	exportClipboard   bool
	exportInteractive bool
	failFast          bool

	// clipboardSink is replaced in tests.
	clipboardSink combine.Clipboard = combine.SystemClipboard{}
)

// exportCmd concatenates the selected files of a directory into one output.
var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Concatenate files with the selected extensions",
	Long: `Concatenate every file under dir whose extension is selected, sorted by path.
Without --extensions (or config "extensions") every text or source extension found
by a scan is selected. Output goes to --output, --clipboard or stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		root := rootDir(args)
		opts := scanOptions()
		logger := logging.Logger

		output, toClipboard := exportDestination(cmd)
		if output != "" && toClipboard {
			return errors.New("--output and --clipboard are mutually exclusive")
		}

		runner := combine.NewRunner(logger, 1)
		defer runner.Close()

		selected, err := resolveSelection(cmd, runner, root, opts)
		if err != nil {
			return err
		}
		logger.Debug("Resolved extension selection", zap.Strings("extensions", selected))

		var job func(context.Context) (combine.Summary, error)
		destination := "stdout"
		switch {
		case toClipboard:
			destination = "clipboard"
			job = func(ctx context.Context) (combine.Summary, error) {
				return combine.ExportToClipboard(ctx, root, selected, clipboardSink, opts)
			}
		case output != "":
			destination = output
			job = func(ctx context.Context) (combine.Summary, error) {
				return combine.ExportToFile(ctx, root, selected, output, opts)
			}
		default:
			job = func(ctx context.Context) (combine.Summary, error) {
				return combine.Export(ctx, root, selected, cmd.OutOrStdout(), opts)
			}
		}

		res := <-runner.Export(ctx, job)
		if res.Err != nil {
			return fmt.Errorf("export failed: %w", res.Err)
		}
		reportSummary(cmd, res.Value, destination)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVarP(&exportExtensions, "extensions", "e", nil, "Extensions to include, e.g. .go,.md")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the export to this file")
	exportCmd.Flags().BoolVarP(&exportClipboard, "clipboard", "c", false, "Copy the export to the clipboard")
	exportCmd.Flags().BoolVarP(&exportInteractive, "interactive", "i", false, "Pick extensions from a checkbox list")
	exportCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first unreadable subdirectory")
	RootCmd.AddCommand(exportCmd)
}

// exportDestination applies flags over config values.
func exportDestination(cmd *cobra.Command) (string, bool) {
	if cmd.Flags().Changed("output") || cmd.Flags().Changed("clipboard") {
		return exportOutput, exportClipboard
	}
	return cfg.Output, cfg.Clipboard
}

// resolveSelection returns the extensions to export. Flags win over config; with
// neither, every discovered extension is used. --interactive scans first and lets
// the user adjust the selection.
func resolveSelection(cmd *cobra.Command, runner *combine.Runner, root string, opts combine.Options) ([]string, error) {
	var selected []string
	explicit := false
	switch {
	case cmd.Flags().Changed("extensions"):
		selected, explicit = exportExtensions, true
	case len(cfg.Extensions) > 0:
		selected, explicit = cfg.Extensions, true
	}

	if explicit && !exportInteractive {
		return selected, nil
	}

	res := <-runner.Scan(cmd.Context(), root, opts)
	if res.Err != nil {
		return nil, fmt.Errorf("scan failed: %w", res.Err)
	}
	found := res.Value
	if !exportInteractive {
		return found, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("--interactive requires a terminal on stdin")
	}
	if !explicit {
		selected = found
	}
	items, preselected := pickerItems(found, selected)
	chosen, err := picker.Run(fmt.Sprintf("Select extensions to export from %s", root), items, preselected, os.Stdin, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return chosen, nil
}

// pickerItems normalizes selected and lists it alongside the discovered extensions,
// so selected extensions the scan did not report remain visible and checked.
func pickerItems(found, selected []string) (items, preselected []string) {
	set := combine.NormalizeExtensions(found...)
	for ext := range combine.NormalizeExtensions(selected...) {
		set[ext] = struct{}{}
		preselected = append(preselected, ext)
	}
	items = slices.Sorted(maps.Keys(set))
	slices.Sort(preselected)
	return items, preselected
}

func reportSummary(cmd *cobra.Command, s combine.Summary, destination string) {
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Exported %d files to %s (%d bytes)\n", s.Files, destination, s.Bytes)
	for _, f := range s.Failed {
		fmt.Fprintf(out, "  failed: %s: %v\n", f.Path, f.Err)
	}
}
