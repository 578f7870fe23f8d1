package mplconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mpl/cmds"
	"github.com/reusee/mpl/modes"
)

func TestOutputFormatDefault(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		format OutputFormat,
	) {
		if format != "text" {
			t.Fatalf("got %q", format)
		}
	})
}

func TestOutputFormatFlag(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"format", "json",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"format.",
	})

	dscope.New(new(Module)).Call(func(
		format OutputFormat,
	) {
		if format != "json" {
			t.Fatalf("got %q", format)
		}
	})
}

func TestTapDisabledByDefault(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		tap TapEnabled,
	) {
		if tap {
			t.Fatal()
		}
	})
}
