package main

import (
	"context"
	"errors"
	"os"
)

func main() {
	cmd := newRootCommand()
	// use stdout as default output for cmd.Print()
	cmd.SetOut(os.Stdout)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var ee *exitError
		if !errors.As(err, &ee) || !ee.silent {
			cmd.PrintErrln(err)
		}
		os.Exit(exitCode(err))
	}
}
