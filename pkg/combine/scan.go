package combine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ScanExtensions lists every file under root and returns the distinct, allow-listed
// extensions found, lower-cased and sorted ascending. Only names are inspected.
func ScanExtensions(ctx context.Context, root string, opts Options) ([]string, error) {
	startTime := time.Now()
	logger := opts.logger()

	absRoot, err := resolveRoot(root)
	if err != nil {
		logger.Error("Invalid scan root", zap.String("root", root), zap.Error(err))
		return nil, err
	}
	logger.Debug("Starting extension scan", zap.String("root", absRoot))

	found := make(map[string]struct{})
	visited := 0
	err = walkFiles(ctx, absRoot, opts, func(path string) error {
		visited++
		if ext := ExtensionOf(path); IsAllowed(ext) {
			found[ext] = struct{}{}
		}
		return nil
	})
	if err != nil {
		logger.Error("Extension scan failed", zap.String("root", absRoot), zap.Error(err))
		return nil, err
	}

	exts := sortedKeys(found)
	logger.Info("Extension scan completed",
		zap.String("root", absRoot),
		zap.Int("filesVisited", visited),
		zap.Strings("extensions", exts),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return exts, nil
}
