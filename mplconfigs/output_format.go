package mplconfigs

import (
	"github.com/reusee/mpl/cmds"
	"github.com/reusee/mpl/configs"
	"github.com/reusee/mpl/vars"
)

// OutputFormat selects the token listing encoder. Flag wins over config,
// default is the plain text listing.
type OutputFormat string

var formatFlag = cmds.Var[string]("format")

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	return OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "format"),
		"text",
	))
}
