// checkpointvm verifies state transitions of the checkpoint cell.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/spacemeshos/go-checkpointvm/cmd"
	"github.com/spacemeshos/go-checkpointvm/cmd/checkpointvm"
)

var (
	version string
	commit  string
	branch  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := checkpointvm.New(afero.NewOsFs()).ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	var exit *cmd.ExitError
	if errors.As(err, &exit) {
		fmt.Fprintln(os.Stderr, exit.Msg)
		os.Exit(exit.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
