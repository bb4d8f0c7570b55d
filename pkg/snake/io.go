// Package snake holds the interactive prompts behind the -i flag and the
// confirmations asked by destructive commands.
package snake

import (
	"io"

	"github.com/spf13/cobra"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

func stdin(cmd *cobra.Command) io.ReadCloser {
	return io.NopCloser(cmd.InOrStdin())
}

func stdout(cmd *cobra.Command) io.WriteCloser {
	return NopCloser(cmd.OutOrStdout())
}
