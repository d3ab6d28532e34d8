package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotQuiz = errors.New("message does not contain a quiz")

func newDetectCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Exit 0 when a message contains a quiz, 1 otherwise",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readMessage(cmd, args, opts.maxLength)
			if err != nil {
				return err
			}

			isQuiz := opts.parser().IsQuizContent(content)
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), isQuiz)
			}
			if !isQuiz {
				return errNotQuiz
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing; report through the exit status only")
	return cmd
}
