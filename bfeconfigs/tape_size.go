package bfeconfigs

import (
	"github.com/reusee/bfe/cmds"
	"github.com/reusee/bfe/configs"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/bfe/vars"
)

// TapeSize is the number of data tape cells
type TapeSize int

const DefaultTapeSize = 1 << 20

var _ configs.Configurable = TapeSize(0)

func (t TapeSize) ConfigExpr() string {
	return "TapeSize"
}

var tapeSizeFlag = cmds.Checked("-tape-size", func(n int) error {
	if n <= 0 {
		return errNotPositive
	}
	return nil
})

func init() {
	cmds.Define("-small", cmds.Func(func() {
		*tapeSizeFlag = 30000
	}).Desc("use the classic 30000 cell data tape"))
}

func (Module) TapeSize(
	loader configs.Loader,
	logger logs.Logger,
) (ret TapeSize) {
	defer func() {
		logger.Debug("config", "name", ret.ConfigExpr(), "value", ret)
	}()
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	))
}
