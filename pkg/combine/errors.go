// File: pkg/combine/errors.go
package combine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by scan and export operations. Callers match them with errors.Is.
var (
	// ErrPathInvalid reports a root path that is missing, not a directory or unreadable.
	ErrPathInvalid = errors.New("invalid root path")
	// ErrSinkWrite reports a destination (file, buffer or clipboard) that could not be written.
	ErrSinkWrite = errors.New("failed to write export output")
	// ErrTraversal reports an unreadable subtree when Options.FailFast is set.
	ErrTraversal = errors.New("directory traversal failed")
	// ErrRunnerClosed is returned for jobs submitted after Runner.Close.
	ErrRunnerClosed = errors.New("runner is closed")

	errInvalidUTF8 = errors.New("content is not valid UTF-8")
)

// FileReadError describes a matched file whose content could not be read or decoded.
// It never aborts an export; it is rendered inline and reported through Summary.
type FileReadError struct {
	Path string // Path relative to the export root, forward slashes.
	Err  error  // Underlying read or decode failure.
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
