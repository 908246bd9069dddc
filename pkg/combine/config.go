// File: pkg/combine/config.go
package combine

import (
	"go.uber.org/zap"
)

// Options holds the knobs shared by scan and export operations.
type Options struct {
	Logger   *zap.Logger // Destination for progress and skip messages; nil disables logging.
	FailFast bool        // Abort on the first unreadable subdirectory instead of skipping it.

	// skip holds absolute paths that must never be enumerated, such as the
	// export destination and its temporary file.
	skip map[string]struct{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// withSkip returns a copy of o that additionally excludes the given absolute paths.
func (o Options) withSkip(paths ...string) Options {
	skip := make(map[string]struct{}, len(o.skip)+len(paths))
	for p := range o.skip {
		skip[p] = struct{}{}
	}
	for _, p := range paths {
		skip[p] = struct{}{}
	}
	o.skip = skip
	return o
}
