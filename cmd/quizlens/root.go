package main

import (
	"fmt"

	"quiz-lens/internal/config"
	"quiz-lens/internal/logger"
	"quiz-lens/internal/quizparser"
	"quiz-lens/internal/validation"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	outputFormat string
	verbose      bool
	maxLength    int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quizlens",
		Short: "Extract multiple-choice quizzes from chat assistant messages",
		Long: `quizlens reads a chat message from a file or stdin and reports the
quiz it carries: questions, lettered options, answers and explanations.

Commands:
  - parse prints the structured quiz
  - detect exits 0 when the message holds a quiz, 1 otherwise
  - render prints the quiz, or the message as sanitized HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.outputFormat != outputFormatJSON && opts.outputFormat != outputFormatYAML {
				return fmt.Errorf("unknown output format: %s", opts.outputFormat)
			}
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			return logger.Initialize(config.LoggerConfig{Level: level, Env: "development"})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", outputFormatJSON, "output format: json or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser decisions to stderr")
	cmd.PersistentFlags().IntVar(&opts.maxLength, "max-length", validation.DefaultMaxContentLength, "reject messages longer than this many bytes (0 disables)")

	cmd.AddCommand(newParseCmd(opts), newDetectCmd(opts), newRenderCmd(opts))
	return cmd
}

// parser is built after PersistentPreRunE so the observer gets the configured logger.
func (o *rootOptions) parser() *quizparser.Parser {
	return quizparser.New(quizparser.WithObserver(quizparser.NewZapObserver(logger.Get())))
}
