package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mpl/debugs"
	"github.com/reusee/mpl/mplconfigs"
)

type Module struct {
	dscope.Module
	Configs mplconfigs.Module
	Debugs  debugs.Module
}
