package batches

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/reusee/bfe/bfeconfigs"
	"github.com/reusee/bfe/engines"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/syncs"
)

// RunFiles executes each program in its own engine.
// Every program reads its own copy of input. Outputs are written in the order of paths.
type RunFiles func(ctx context.Context, paths []string, input []byte, out io.Writer) error

func (Module) RunFiles(
	execute engines.Execute,
	jobs bfeconfigs.Jobs,
	logger logs.Logger,
) RunFiles {
	return func(ctx context.Context, paths []string, input []byte, out io.Writer) error {
		sem := syncs.NewSemaphore(max(int(jobs), 1))
		outputs := make([]bytes.Buffer, len(paths))
		errs := make([]error, len(paths))

		var wg sync.WaitGroup
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				continue
			}
			sem.Acquire()
			wg.Go(func() {
				defer sem.Release()
				err := execute(ctx, path, bytes.NewReader(input), &outputs[i])
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", path, err)
				}
				logger.InfoContext(ctx, "program done",
					"path", path,
					"output", outputs[i].Len(),
					"error", err,
				)
			})
		}
		wg.Wait()

		for i := range outputs {
			if _, err := out.Write(outputs[i].Bytes()); err != nil {
				errs = append(errs, err)
				break
			}
		}
		return errors.Join(errs...)
	}
}
