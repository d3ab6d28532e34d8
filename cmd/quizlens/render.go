package main

import (
	"quiz-lens/internal/config"
	"quiz-lens/internal/sanitize"
	"quiz-lens/internal/service"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var schemes []string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the quiz in a message, or the message as sanitized HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readMessage(cmd, args, opts.maxLength)
			if err != nil {
				return err
			}

			extraction := service.NewQuizExtractionService(opts.parser(), nil, nil, nil, config.ParserConfig{})
			renderer := service.NewRenderService(extraction, sanitize.New(schemes...))
			resp, err := renderer.Render(cmd.Context(), content)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.outputFormat, resp)
		},
	}

	cmd.Flags().StringSliceVar(&schemes, "allow-scheme", sanitize.DefaultSchemes, "link schemes kept in sanitized HTML")
	return cmd
}
