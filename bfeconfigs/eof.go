package bfeconfigs

import (
	"fmt"

	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/configs"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/vars"
)

// EOF names what the input instruction does at end of input: keep, zero or error
type EOF string

var _ configs.Configurable = EOF("")

func (e EOF) ConfigExpr() string {
	return "EOF"
}

var eofFlag = cmds.Checked("-eof", func(mode string) error {
	switch mode {
	case "keep", "zero", "error":
		return nil
	}
	return fmt.Errorf("%w: %q, expecting keep, zero or error", errBadEOF, mode)
})

func (Module) EOF(
	loader configs.Loader,
	logger logs.Logger,
) (ret EOF) {
	defer func() {
		logger.Debug("config", "name", ret.ConfigExpr(), "value", ret)
	}()
	return EOF(vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof"),
		"keep",
	))
}
