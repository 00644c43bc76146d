// Package version reports the userdir build version.
package version

// Set at build time with -ldflags "-X github.com/rshade/userdir/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the build commit, if known.
func GetCommit() string {
	return commit
}
