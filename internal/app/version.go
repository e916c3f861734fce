package app

import "fmt"

// Set with -ldflags "-X github.com/aiyyappann/EchoVision/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildTime string
}

// CurrentBuild returns the linker-provided build metadata.
func CurrentBuild() Build {
	return Build{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// Short is the version reported by /health. Dev builds carry the commit.
func (b Build) Short() string {
	if b.Version == "dev" && b.Commit != "unknown" {
		return "dev-" + b.Commit
	}
	return b.Version
}

func (b Build) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.BuildTime)
}
