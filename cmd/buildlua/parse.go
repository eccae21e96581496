package main

import (
	"github.com/spf13/cobra"

	"github.com/Ameliorate/buildlua/internal/codec"
)

func newParseCommand(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "print the syntax tree of each file",
		Long: `Parse prints the syntax tree of each file as JSON or YAML. JSON documents
are separated by newlines, YAML documents by '---'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(c.config.Format.String)
			if err != nil {
				return err
			}

			chunks, err := c.parser.ParseFiles(cmd.Context(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, chunk := range chunks {
				data, err := codec.Marshal(chunk, format)
				if err != nil {
					return err
				}
				if format == codec.FormatYAML && i > 0 {
					if _, err := out.Write([]byte("---\n")); err != nil {
						return err
					}
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "json", "output format, json or yaml")
	return cmd
}
