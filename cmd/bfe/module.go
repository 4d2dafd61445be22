package main

import (
	"github.com/reusee/bfe/batches"
	"github.com/reusee/bfe/engines"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Engines engines.Module
	Batches batches.Module
}
