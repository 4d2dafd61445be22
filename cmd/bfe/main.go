package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/bfe/batches"
	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/consoles"
	"github.com/reusee/bfe/engines"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	snapshotPath = cmds.Var[string]("-snapshot")
	resumePath   = cmds.Var[string]("-resume")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
		newEngine engines.NewEngine,
		runEngine engines.RunEngine,
		runFiles batches.RunFiles,
	) {
		switch {

		case *resumePath != "" || len(programs) == 1:
			if *resumePath != "" && len(programs) > 0 {
				err = errors.New("-resume takes no program")
				return
			}
			err = runInteractive(ctx, newEngine, runEngine)

		case len(programs) > 1:
			if *snapshotPath != "" {
				err = errors.New("-snapshot needs a single program")
				return
			}
			logger.InfoContext(ctx, "batch", "programs", len(programs))
			err = runFiles(ctx, programs, getStdinContent(), os.Stdout)

		default:
			cmds.GlobalExecutor.PrintUsage()
			os.Exit(2)

		}
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

func runInteractive(
	ctx context.Context,
	newEngine engines.NewEngine,
	runEngine engines.RunEngine,
) (err error) {
	engine, err := newEngine(consoles.NewInput(os.Stdin), os.Stdout)
	if err != nil {
		return err
	}

	if *resumePath != "" {
		f, err := os.Open(*resumePath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := engine.Restore(f); err != nil {
			return fmt.Errorf("resume %s: %w", *resumePath, err)
		}
	} else {
		if err := engine.LoadFile(programs[0]); err != nil {
			return err
		}
	}

	if *snapshotPath != "" {
		defer func() {
			// also written after a failure, for inspection
			err = errors.Join(err, writeSnapshot(engine, *snapshotPath))
		}()
	}

	return runEngine(ctx, engine)
}

func writeSnapshot(engine *engines.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := engine.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
