package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ameliorate/buildlua"
)

func newCheckCommand(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "report syntax errors",
		Long: `Check parses all files, up to --jobs at once, and reports each file as ok
or with its errors, in the order the files were given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			red := c.color(color.FgRed)
			green := c.color(color.FgGreen)

			_, errs := c.parser.ParseEach(cmd.Context(), args...)

			var failed int
			for i, path := range args {
				err := errs[i]
				if err == nil {
					_, _ = green.Fprint(out, "ok")
					_, _ = fmt.Fprintf(out, " %s\n", path)
					continue
				}

				failed++
				var parseErr *buildlua.ParseError
				if !errors.As(err, &parseErr) {
					_, _ = red.Fprintf(out, "%s: %v\n", path, err)
					continue
				}
				for _, e := range parseErr.Errors {
					_, _ = red.Fprintf(out, "%s: %v\n", path, e)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
