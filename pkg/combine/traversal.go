// File: pkg/combine/traversal.go
package combine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// resolveRoot validates root and returns its absolute path with symlinks resolved.
// Every failure wraps ErrPathInvalid.
func resolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathInvalid)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathInvalid, err)
	}
	absRoot, err = filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathInvalid, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathInvalid, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrPathInvalid, absRoot)
	}

	dir, err := os.Open(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathInvalid, err)
	}
	defer dir.Close()
	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrPathInvalid, err)
	}

	return absRoot, nil
}

// walkFiles calls visit for every regular file under root, in lexical order.
// Symlinked directories are not followed; symlinks to regular files are visited.
// Unreadable subdirectories are skipped with a warning unless opts.FailFast is set.
func walkFiles(ctx context.Context, root string, opts Options, visit func(path string) error) error {
	logger := opts.logger()

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return fmt.Errorf("%w: %w", ErrPathInvalid, err)
			}
			if opts.FailFast {
				logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return fmt.Errorf("%w: %w", ErrTraversal, err)
			}
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if _, skipped := opts.skip[path]; skipped {
			logger.Debug("Skipping excluded file", zap.String("path", path))
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				logger.Debug("Skipping symlink that does not point to a regular file", zap.String("path", path))
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		return visit(path)
	})
}

// collectFiles returns the absolute paths of files under root whose extension is in
// exts, sorted by full path.
func collectFiles(ctx context.Context, root string, exts map[string]struct{}, opts Options) ([]string, error) {
	logger := opts.logger()
	logger.Debug("Starting file traversal and collection", zap.String("root", root), zap.Int("extensions", len(exts)))

	var files []string
	err := walkFiles(ctx, root, opts, func(path string) error {
		if _, ok := exts[ExtensionOf(path)]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	logger.Debug("Completed file traversal and collection", zap.Int("matchedFiles", len(files)))
	return files, nil
}

// relativePath returns path relative to root using forward slashes.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
