// Package version reports what build of the interpreter is running, for
// the CLI's -version flag and the debugger's status output.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Set at build time via -ldflags; a VCS-stamped binary fills in the
	// rest from debug.ReadBuildInfo.
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// resolve fills GitCommit and BuildTime from the binary's embedded VCS
// metadata when no -ldflags values were injected.
func resolve() (commit, built string) {
	commit, built = GitCommit, BuildTime
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, built
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" {
				commit = s.Value
			}
		case "vcs.time":
			if built == "" {
				built = s.Value
			}
		}
	}
	return commit, built
}

// String returns the one-line version the CLI prints: the version tag,
// plus a short commit and build date when the binary carries them.
func String() string {
	commit, built := resolve()
	s := fmt.Sprintf("nes6502 %s", Version)
	if len(commit) >= 7 {
		s += fmt.Sprintf(" (%s)", commit[:7])
	}
	if built != "" {
		if t, err := time.Parse(time.RFC3339, built); err == nil {
			built = t.Format("2006-01-02")
		}
		s += " built " + built
	}
	return s
}
