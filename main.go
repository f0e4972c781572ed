package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/rpncalc/internal/logio"
)

const banner = "Welcome to the stack calculator!\n" +
	"Type \"help\" and hit return to view available commands.\n"

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.ErrorIf(run(context.Background()))
	os.Exit(log.ExitCode())
}

func run(ctx context.Context) error {
	// an interrupt ends the session, it is not a failure
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts = []CalcOption{
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
		WithBanner(banner),
	}
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		opts = append(opts, WithLineReader(newLinerReader()))
	}
	calc := New(opts...)

	err := runSession(ctx, calc, closeGrace)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stdout)
	}
	if err != nil {
		return fmt.Errorf("rpncalc: %w", err)
	}
	return nil
}

const closeGrace = 100 * time.Millisecond

// runSession runs calc until its input ends or ctx is done, then closes it.
// Once ctx is done, Run gets up to grace to stop on its own. After that it
// is left blocked on input, having flushed everything it wrote, and only the
// session's other resources are released; the output stays Run's alone.
func runSession(ctx context.Context, calc *Calc, grace time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- calc.Run(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		timer := time.NewTimer(grace)
		defer timer.Stop()
		select {
		case err = <-done:
		case <-timer.C:
			return calc.release()
		}
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		err = nil
	}

	if cerr := calc.Close(); err == nil {
		err = cerr
	}
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
