package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readMessage reads the file named by args[0], or stdin when no file or "-" is given.
func readMessage(cmd *cobra.Command, args []string, maxLength int) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	limit := int64(maxLength)
	if maxLength > 0 {
		// One extra byte tells an over-long message apart from one exactly at the limit.
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	if maxLength > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("message exceeds %d bytes", maxLength)
	}
	return string(data), nil
}
