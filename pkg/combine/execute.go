// File: pkg/combine/execute.go
package combine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Export writes one record for every file under root whose extension is in selected,
// in ascending full-path order. Extensions are compared case-insensitively; see
// NormalizeExtensions for the accepted forms. An empty selection writes nothing.
//
// A file that cannot be read or decoded is rendered with an error placeholder and
// the export continues. An invalid root fails with ErrPathInvalid and a failing w
// with ErrSinkWrite. Cancellation is checked between files; bytes already handed to
// w stay there, so callers needing all-or-nothing output should use ExportToFile,
// ExportToString or ExportToClipboard.
func Export(ctx context.Context, root string, selected []string, w io.Writer, opts Options) (Summary, error) {
	startTime := time.Now()
	logger := opts.logger()

	absRoot, err := resolveRoot(root)
	if err != nil {
		logger.Error("Invalid export root", zap.String("root", root), zap.Error(err))
		return Summary{}, err
	}

	exts := NormalizeExtensions(selected...)
	if len(exts) == 0 {
		logger.Warn("No extensions selected, nothing to export", zap.String("root", absRoot))
		return Summary{}, nil
	}
	logger.Debug("Starting export", zap.String("root", absRoot), zap.Strings("extensions", sortedKeys(exts)))

	files, err := collectFiles(ctx, absRoot, exts, opts)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to export after filtering", zap.String("root", absRoot))
		return Summary{}, nil
	}

	summary, err := writeRecords(ctx, w, absRoot, files, logger)
	if err != nil {
		return summary, err
	}

	logger.Info("Successfully combined files",
		zap.String("root", absRoot),
		zap.Int("totalFiles", summary.Files),
		zap.Int("failedFiles", len(summary.Failed)),
		zap.Int64("bytes", summary.Bytes),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return summary, nil
}

// writeRecords reads files sequentially and writes their records through a buffered writer.
// The returned Summary only counts records and bytes that w accepted, so it stays
// accurate when the sink fails part way.
func writeRecords(ctx context.Context, w io.Writer, root string, files []string, logger *zap.Logger) (Summary, error) {
	sink := &countingWriter{w: w}
	writer := bufio.NewWriter(sink)

	var (
		buffered int64
		records  []recordSpan
	)
	settle := func() Summary {
		return summarize(records, sink.n)
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("Export cancelled", zap.Int("bufferedFiles", len(records)), zap.Error(err))
			return settle(), err
		}

		fc := ProcessSingleFile(path, root, logger)
		n, err := writer.WriteString(fc.Record())
		buffered += int64(n)
		if err != nil {
			logger.Error("Failed to write record", zap.String("contentPath", fc.Path), zap.Error(err))
			return settle(), fmt.Errorf("%w: %w", ErrSinkWrite, err)
		}
		span := recordSpan{end: buffered}
		if fc.Err != nil {
			span.failed = &FileReadError{Path: fc.Path, Err: fc.Err}
		}
		records = append(records, span)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output", zap.Error(err))
		return settle(), fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return settle(), nil
}

// recordSpan marks where a record ends in the output stream.
type recordSpan struct {
	end    int64
	failed *FileReadError
}

// summarize counts the records that lie entirely within the first written bytes.
func summarize(records []recordSpan, written int64) Summary {
	summary := Summary{Bytes: written}
	for _, r := range records {
		if r.end > written {
			break
		}
		summary.Files++
		if r.failed != nil {
			summary.Failed = append(summary.Failed, r.failed)
		}
	}
	return summary
}

// countingWriter tracks how many bytes the wrapped writer accepted.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
