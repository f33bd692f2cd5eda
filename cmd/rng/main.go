// Command rng reads a {"min","max"} request and prints a {"random_number"}
// response drawn from the system entropy source.
package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"coinflip/internal/logger"
	"coinflip/internal/rng"

	"github.com/spf13/cobra"
)

// exitError carries the boundary status so the process exit code matches it.
type exitError struct {
	status int32
	err    error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(entropy io.Reader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rng",
		Short: "Draw a random number inside an inclusive range",
		Long: `Reads {"min":N,"max":M} from --input or stdin and writes {"random_number":R}
to stdout. An inverted or single-value range yields min. On failure the exit
code is the negated boundary status: 1 bad input, 2 no entropy, 3 serialization,
4 allocation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			framed, _ := cmd.Flags().GetBool("framed")

			var in io.Reader = cmd.InOrStdin()
			if input != "" {
				in = strings.NewReader(input)
			}
			return run(in, cmd.OutOrStdout(), entropy, framed)
		},
	}
	cmd.Flags().StringP("input", "i", "", "request JSON, read from stdin when empty")
	cmd.Flags().Bool("framed", false, "write the length-prefixed frame instead of bare JSON")
	return cmd
}

func run(in io.Reader, out io.Writer, entropy io.Reader, framed bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return &exitError{status: rng.StatusBadInput, err: fmt.Errorf("read input: %w", err)}
	}

	buf, err := rng.Execute(data, entropy)
	if err != nil {
		return &exitError{status: rng.Status(err), err: err}
	}

	if framed {
		_, err = out.Write(buf)
		return err
	}

	payload, err := rng.ReadFrame(buf)
	if err != nil {
		return &exitError{status: rng.Status(err), err: err}
	}
	_, err = fmt.Fprintf(out, "%s\n", payload)
	return err
}

func main() {
	log := logger.NewStderr()

	if err := newRootCmd(rand.Reader).Execute(); err != nil {
		code := 1
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = int(-exitErr.status)
		}
		log.Error().Err(err).Int("exit_code", code).Msg("rng failed")
		os.Exit(code)
	}
}
