package mplconfigs

import (
	"github.com/reusee/mpl/cmds"
	"github.com/reusee/mpl/configs"
)

// TapEnabled drops into the token inspection REPL after scanning.
type TapEnabled bool

var tapFlag = cmds.Switch("tap")

func (Module) TapEnabled(
	loader configs.Loader,
) TapEnabled {
	if *tapFlag {
		return true
	}
	return TapEnabled(configs.First[bool](loader, "tap"))
}
