package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the quiz found in a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readMessage(cmd, args, opts.maxLength)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.outputFormat, opts.parser().Parse(content))
		},
	}
}
