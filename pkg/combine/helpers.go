// File: pkg/combine/helpers.go
package combine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Clipboard receives a finished export as a single string.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// ExportToFile exports into outputPath, creating or replacing it. Output is staged in a
// temporary file next to the destination and renamed into place only on success, so a
// failed or cancelled export leaves no partial file behind. The destination is never
// enumerated as an input.
func ExportToFile(ctx context.Context, root string, selected []string, outputPath string, opts Options) (summary Summary, err error) {
	logger := opts.logger()
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	if _, err := resolveRoot(root); err != nil {
		return Summary{}, err
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	if err := ensureDirectory(filepath.Dir(absOutput), logger); err != nil {
		return Summary{}, fmt.Errorf("%w: failed to create output directory: %w", ErrSinkWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absOutput), ".filecat-*.tmp")
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", absOutput), zap.Error(err))
		return Summary{}, fmt.Errorf("%w: failed to create output file: %w", ErrSinkWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				err = multierr.Append(err, fmt.Errorf("failed to remove temporary file: %w", rmErr))
			}
		}
	}()

	// Traversal sees symlink-resolved paths, so exclude the resolved forms.
	outDir := filepath.Dir(absOutput)
	if resolved, evalErr := filepath.EvalSymlinks(outDir); evalErr == nil {
		outDir = resolved
	}
	opts = opts.withSkip(filepath.Join(outDir, filepath.Base(absOutput)), filepath.Join(outDir, filepath.Base(tmpPath)))
	summary, err = Export(ctx, root, selected, tmp, opts)
	if err != nil {
		return summary, multierr.Append(err, tmp.Close())
	}

	if chmodErr := tmp.Chmod(0o644); chmodErr != nil {
		logger.Debug("Failed to set output file mode", zap.String("file", tmpPath), zap.Error(chmodErr))
	}
	if err = tmp.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", tmpPath), zap.Error(err))
		return summary, fmt.Errorf("%w: failed to close output file: %w", ErrSinkWrite, err)
	}
	if err = os.Rename(tmpPath, absOutput); err != nil {
		logger.Error("Failed to move output into place", zap.String("file", absOutput), zap.Error(err))
		return summary, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}

	logger.Info("Wrote export file", zap.String("outputFile", absOutput), zap.Int("totalFiles", summary.Files))
	return summary, nil
}

// ExportToString exports into an in-memory buffer. On error the returned text is empty.
func ExportToString(ctx context.Context, root string, selected []string, opts Options) (string, Summary, error) {
	var buf strings.Builder
	summary, err := Export(ctx, root, selected, &buf, opts)
	if err != nil {
		return "", summary, err
	}
	return buf.String(), summary, nil
}

// ExportToClipboard exports into memory and hands the finished text to clip.
// Nothing reaches the clipboard unless the export succeeds.
func ExportToClipboard(ctx context.Context, root string, selected []string, clip Clipboard, opts Options) (Summary, error) {
	logger := opts.logger()

	text, summary, err := ExportToString(ctx, root, selected, opts)
	if err != nil {
		return summary, err
	}
	if err := clip.WriteAll(text); err != nil {
		logger.Error("Failed to copy export to clipboard", zap.Error(err))
		return summary, fmt.Errorf("%w: clipboard: %w", ErrSinkWrite, err)
	}

	logger.Info("Copied export to clipboard", zap.Int("totalFiles", summary.Files), zap.Int64("bytes", summary.Bytes))
	return summary, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
