package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ioFlags are the --in/--out flags shared by data commands
type ioFlags struct {
	in  string
	out string
}

func (f *ioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.in, "in", "", "input file (default stdin)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (default stdout)")
}

func (f *ioFlags) read(cmd *cobra.Command) ([]byte, error) {
	if f.in == "" || f.in == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(f.in)
}

func (f *ioFlags) write(cmd *cobra.Command, data []byte) error {
	if f.out == "" || f.out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(f.out, data, 0600)
}

// decodeHexFlag decodes a hex flag value, naming the flag on failure
func decodeHexFlag(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: invalid hex: %w", name, err)
	}
	return b, nil
}
