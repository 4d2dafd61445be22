package bfeconfigs

import (
	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/configs"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/vars"
)

// MaxSteps bounds the instructions one execution may run, 0 for unlimited
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (m MaxSteps) ConfigExpr() string {
	return "MaxSteps"
}

var maxStepsFlag = cmds.Checked("-max-steps", func(n int) error {
	if n < 0 {
		return errNegative
	}
	return nil
})

func (Module) MaxSteps(
	loader configs.Loader,
	logger logs.Logger,
) (ret MaxSteps) {
	defer func() {
		logger.Debug("config", "name", ret.ConfigExpr(), "value", ret)
	}()
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}
