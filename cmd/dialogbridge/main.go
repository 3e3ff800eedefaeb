package main

import (
	"runtime"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/cmd"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
