package main

import (
	"fmt"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// ConvertCmd reads the input, converts it and writes the enum expression.
type ConvertCmd struct {
	Mode  t2e.Mode
	Print bool
}

// Run executes the convert command. Nothing is written to the sink unless
// the whole input converts.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	input, err := deps.Source.ReadText(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", t2e.ErrorMessage(err))
		return err
	}

	result, err := deps.Transformer.Transform(c.Mode, input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", t2e.ErrorMessage(err))
		return err
	}

	if err := deps.Sink.WriteText(deps.Ctx, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", t2e.ErrorMessage(err))
		return err
	}

	if c.Print {
		fmt.Fprintln(deps.Stdout, result)
	}

	deps.Logger.Debug("converted", "mode", c.Mode.String(), "result", result)
	return nil
}
