package engines

import (
	"context"
	"io"

	"github.com/reusee/bfe/bfeconfigs"
	"github.com/reusee/bfe/debugs"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfeconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}

type NewEngine func(in io.Reader, out io.Writer) (*Engine, error)

func (Module) NewEngine(
	tapeSize bfeconfigs.TapeSize,
	maxSteps bfeconfigs.MaxSteps,
	eof bfeconfigs.EOF,
) NewEngine {
	return func(in io.Reader, out io.Writer) (*Engine, error) {
		mode, err := ParseEOFMode(string(eof))
		if err != nil {
			return nil, err
		}
		return New(
			int(tapeSize),
			in,
			out,
			WithMaxSteps(int(maxSteps)),
			WithEOF(mode),
		)
	}
}

// RunEngine drives a loaded engine to completion
type RunEngine func(ctx context.Context, engine *Engine) error

func (Module) RunEngine(
	logger logs.Logger,
	debug bfeconfigs.Debug,
	tap debugs.Tap,
) RunEngine {
	return func(ctx context.Context, engine *Engine) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		for intr, err := range engine.Run {
			if err != nil {
				logger.DebugContext(ctx, "run failed",
					"error", err,
					"pc", engine.Program().Position(),
					"steps", engine.Steps(),
				)
				return err
			}

			if intr.Yield {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			if intr.Break {
				logger.DebugContext(ctx, "break",
					"pc", engine.Program().Position(),
					"cursor", engine.Data().Position(),
					"depth", engine.Depth(),
				)
				if debug {
					tap(ctx, "break", engine.debugGlobals())
				}
			}
		}

		if depth := engine.Depth(); depth > 0 {
			logger.WarnContext(ctx, "open loops at exit",
				"depth", depth,
			)
		}
		logger.DebugContext(ctx, "run done",
			"steps", engine.Steps(),
		)
		return nil
	}
}

// Execute loads the program at path into a new engine and runs it.
// Nothing runs when the program cannot be loaded.
type Execute func(ctx context.Context, path string, in io.Reader, out io.Writer) error

func (Module) Execute(
	newEngine NewEngine,
	runEngine RunEngine,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, path string, in io.Reader, out io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		engine, err := newEngine(in, out)
		if err != nil {
			return err
		}
		if err := engine.LoadFile(path); err != nil {
			return err
		}
		logger.DebugContext(ctx, "execute",
			"path", path,
			"size", engine.Program().Len(),
		)

		return runEngine(ctx, engine)
	}
}

const debugWindow = 16

func (e *Engine) debugGlobals() map[string]any {
	cursor := e.data.Position()
	start := max(cursor-debugWindow/2, 0)
	end := min(start+debugWindow, e.data.Len())
	cells := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		v, _ := e.data.At(i)
		cells = append(cells, int(v))
	}

	return map[string]any{
		"pc":          e.program.Position(),
		"cursor":      cursor,
		"cells":       cells,
		"cells_start": start,
		"returns":     e.returns.Positions(),
		"steps":       e.steps,
		"peek": func(i int) int {
			v, _ := e.data.At(i)
			return int(v)
		},
		"poke": func(i int, v int) bool {
			return e.data.SetAt(i, byte(v))
		},
	}
}
