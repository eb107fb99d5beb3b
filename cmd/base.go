// Package cmd is the base package for the executables of go-checkpointvm.
package cmd

import "fmt"

var (
	// Version is the app's semantic version. Set at build time with -ldflags.
	Version string

	// Branch is the git branch used to build the App. Set at build time with -ldflags.
	Branch string

	// Commit is the git commit used to build the app. Set at build time with -ldflags.
	Commit string
)

// FullVersion returns version with branch and commit.
func FullVersion() string {
	return fmt.Sprintf("%s+%s+%s", Version, Branch, Commit)
}

// ExitError asks the process to exit with the code.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Msg, e.Code)
}
