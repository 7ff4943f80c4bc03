package coffer

// Release of the ledger. BuildCommit may be set at link time with
// -ldflags "-X github.com/boxmeout/coffer.BuildCommit=<hash>".
const Release = "v0.1.0-dev"

var BuildCommit = ""

// Version returns the release, followed by the build commit if known.
func Version() string {
	if BuildCommit == "" {
		return Release
	}
	return Release + "+" + BuildCommit
}
