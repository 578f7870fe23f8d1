package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/mpl/cmds"
	"github.com/reusee/mpl/debugs"
	"github.com/reusee/mpl/encoders"
	"github.com/reusee/mpl/logs"
	"github.com/reusee/mpl/modes"
	"github.com/reusee/mpl/mplang"
	"github.com/reusee/mpl/mplconfigs"
)

var ce = e5.Check.With(e5.WrapStacktrace)

func main() {

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mpl <source-file> [options]")
		os.Exit(1)
	}
	srcPath := os.Args[1]
	cmds.Execute(os.Args[2:])

	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		format mplconfigs.OutputFormat,
		tapEnabled mplconfigs.TapEnabled,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		logger.DebugContext(ctx, "tokenize",
			"file", srcPath,
		)
		tokens, err := mplang.TokenizeFile(srcPath)
		if err != nil {
			logger.ErrorContext(ctx, "tokenize failed",
				"error", logs.WrapSpan(ctx, err),
			)
			if encoder, encErr := encoders.New(os.Stderr, string(format)); encErr == nil {
				ce(encoder.EncodeError(err))
				ce(encoder.Close())
			} else {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
			}
			os.Exit(1)
		}
		logger.DebugContext(ctx, "tokenize done",
			"tokens", len(tokens),
		)

		if tapEnabled {
			tap(ctx, "tokens", map[string]any{
				"tokens":    tokens,
				"numTokens": len(tokens),
			})
		}

		encoder, err := encoders.New(os.Stdout, string(format))
		ce(err)
		for _, token := range tokens {
			ce(encoder.EncodeToken(token))
		}
		ce(encoder.Close())
	})

}
