package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"searchmenu/internal/ipc"
	"searchmenu/internal/menu"
)

const (
	exitFailure   = 1
	exitMalformed = 2
	exitNoPlayer  = 3
)

func main() {
	cmd := newRootCommand(os.LookupEnv)
	if err := execute(context.Background(), cmd, os.Args[1:]); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, menu.ErrMalformedInput):
		return exitMalformed
	case errors.Is(err, ipc.ErrUnavailable):
		return exitNoPlayer
	default:
		return exitFailure
	}
}
