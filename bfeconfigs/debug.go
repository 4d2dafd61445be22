package bfeconfigs

import (
	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/configs"
	"github.com/reusee/bfe/logs"
)

// Debug opens a REPL on each break instruction
type Debug bool

var _ configs.Configurable = Debug(false)

func (d Debug) ConfigExpr() string {
	return "Debug"
}

var debugFlag = cmds.Switch("-debug")

func (Module) Debug(
	loader configs.Loader,
	logger logs.Logger,
) (ret Debug) {
	defer func() {
		logger.Debug("config", "name", ret.ConfigExpr(), "value", ret)
	}()
	if debugFlag.Set {
		return Debug(debugFlag.On)
	}
	return Debug(configs.First[bool](loader, "debug"))
}
