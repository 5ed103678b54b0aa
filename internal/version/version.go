// Package version carries the build version, set with
// -ldflags "-X github.com/senabank/operator-console/internal/version.Version=...".
package version

var Version = "dev"
