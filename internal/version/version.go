package version

// Version is the giza release, set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/giza/internal/version.Version=v0.3.0".
var Version = "unknown"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return "giza " + Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
