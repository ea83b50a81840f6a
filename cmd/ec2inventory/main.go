package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ec2inventory/internal/ui"
)

// Exit codes
const (
	exitOK            = 0
	exitError         = 1
	exitListingFailed = 2
)

// exitCodeError carries a specific exit code out of a command.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var codeErr *exitCodeError
	if errors.As(err, &codeErr) {
		return codeErr.code
	}

	fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error:"), err)
	return exitError
}
