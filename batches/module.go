package batches

import (
	"github.com/reusee/bfe/bfeconfigs"
	"github.com/reusee/bfe/engines"
	"github.com/reusee/bfe/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfeconfigs.Module
	Engines engines.Module
	Logs    logs.Module
}
