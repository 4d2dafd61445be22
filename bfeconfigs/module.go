package bfeconfigs

import (
	"github.com/reusee/bfe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
