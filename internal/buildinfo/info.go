// Package buildinfo carries the version stamped at link time:
//
//	go build -ldflags "-X github.com/walletbox/walletbox/internal/buildinfo.Version=v1.2.0 ..."
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
