// Package version reports the build version of hasted.
package version

import "fmt"

var (
	gitCommit = "dev"
	buildDate = "unknown"
)

// GetVersion returns a human-readable version string, following the
// GetVersion() convention exposed by the teacher's shared/version package.
func GetVersion() string {
	return fmt.Sprintf("hasted/%s (built %s)", gitCommit, buildDate)
}
