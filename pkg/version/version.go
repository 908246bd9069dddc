// Package version reports which filecat build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release builds set these with -ldflags "-X filecat/pkg/version.Version=...".
// Left unset, Get falls back to the module and VCS data the Go toolchain embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// AppName is the name reported in logs and version output.
const AppName = "filecat"

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get combines the linker-provided variables with the embedded build info.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	return info
}

// fillFromBuildInfo fills the fields -ldflags left empty. A "dev" version is only
// replaced by a real module version, as `go install filecat@v1.2.3` records.
func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		}
	}
}

// String formats info for `filecat version`, omitting unknown fields.
func (i Info) String() string {
	s := fmt.Sprintf("%s %s", AppName, i.Version)
	if i.GitCommit != "" {
		s += " (" + shortCommit(i.GitCommit) + ")"
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	return s + fmt.Sprintf(" %s %s", i.GoVersion, i.Platform)
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
