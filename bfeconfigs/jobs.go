package bfeconfigs

import (
	"runtime"

	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/configs"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/vars"
)

// Jobs is the number of programs executed concurrently in batch mode
type Jobs int

var _ configs.Configurable = Jobs(0)

func (j Jobs) ConfigExpr() string {
	return "Jobs"
}

var jobsFlag = cmds.Checked("-jobs", func(n int) error {
	if n <= 0 {
		return errNotPositive
	}
	return nil
})

func (Module) Jobs(
	loader configs.Loader,
	logger logs.Logger,
) (ret Jobs) {
	defer func() {
		logger.Debug("config", "name", ret.ConfigExpr(), "value", ret)
	}()
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	))
}
