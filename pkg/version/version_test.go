package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.Version)
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-19T12:00:00Z"},
		},
	}

	t.Run("fills unset fields", func(t *testing.T) {
		info := Info{Version: "dev"}
		fillFromBuildInfo(&info, bi)
		assert.Equal(t, "v1.4.0", info.Version)
		assert.Equal(t, "0123456789abcdef", info.GitCommit)
		assert.Equal(t, "2026-10-19T12:00:00Z", info.BuildTime)
	})

	t.Run("ldflags win", func(t *testing.T) {
		info := Info{Version: "1.0.0", GitCommit: "abc", BuildTime: "then"}
		fillFromBuildInfo(&info, bi)
		assert.Equal(t, Info{Version: "1.0.0", GitCommit: "abc", BuildTime: "then"}, info)
	})

	t.Run("devel module keeps dev", func(t *testing.T) {
		info := Info{Version: "dev"}
		fillFromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Equal(t, "dev", info.Version)
	})
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.4.0", GitCommit: "0123456789abcdef", BuildTime: "2026-10-19", GoVersion: "go1.24.6", Platform: "linux/amd64"}
	assert.Equal(t, "filecat v1.4.0 (0123456789ab) built 2026-10-19 go1.24.6 linux/amd64", info.String())

	bare := Info{Version: "dev", GoVersion: "go1.24.6", Platform: "linux/amd64"}
	assert.Equal(t, "filecat dev go1.24.6 linux/amd64", bare.String())
}
