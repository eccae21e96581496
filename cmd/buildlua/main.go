package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "buildlua"
)

func main() {
	gs := &globalState{
		fs:        afero.NewOsFs(),
		stdout:    colorable.NewColorableStdout(),
		stderr:    colorable.NewColorableStderr(),
		stdoutTTY: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		lookupEnv: os.LookupEnv,
	}
	if err := newRootCommand(gs).cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
