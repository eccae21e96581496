package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Ameliorate/buildlua"
)

// globalState holds everything that commands need from the outside world, so
// that tests can replace it.
type globalState struct {
	fs        afero.Fs
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool
	lookupEnv func(string) (string, bool)
}

type rootCommand struct {
	gs     *globalState
	cmd    *cobra.Command
	logger *logrus.Logger
	config Config
	parser *buildlua.Parser
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{
		gs:     gs,
		logger: logrus.New(),
	}
	c.cmd = &cobra.Command{
		Use:               AppName,
		Short:             "parse Lua 5.2 source into syntax trees",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(rootCmdPersistentFlagSet())

	c.cmd.AddCommand(
		newParseCommand(c),
		newCheckCommand(c),
		newStatsCommand(c),
	)
	return c
}

func rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.String("log-level", "warn", "log level, one of panic, fatal, error, warn, info, debug, trace")
	flags.Int64P("jobs", "j", 0, "number of files parsed at once (default: number of CPUs)")
	flags.Bool("no-color", false, "disable colored output")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := consolidateConfig(cmd.Flags(), c.gs.lookupEnv)
	if err != nil {
		return err
	}
	c.config = cfg

	level, err := logrus.ParseLevel(cfg.LogLevel.String)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	c.logger.SetLevel(level)
	c.logger.SetOutput(c.gs.stderr)
	c.logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: cfg.NoColor.Bool,
	})

	c.parser = buildlua.New(
		buildlua.WithFs(c.gs.fs),
		buildlua.WithLogger(c.logger),
		buildlua.WithConcurrency(int(cfg.Jobs.Int64)),
	)
	return nil
}

// color returns the given color, enabled only if the output is a terminal
// and colors are not disabled.
func (c *rootCommand) color(attrs ...color.Attribute) *color.Color {
	col := color.New(attrs...)
	if c.config.NoColor.Bool || !c.gs.stdoutTTY {
		col.DisableColor()
	} else {
		col.EnableColor()
	}
	return col
}
