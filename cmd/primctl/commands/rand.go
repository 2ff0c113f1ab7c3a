package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func randCmd(a *app) *cobra.Command {
	var (
		out string
		raw bool
	)
	cmd := &cobra.Command{
		Use:   "rand LENGTH",
		Short: "Print LENGTH cryptographically secure random bytes as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[0], err)
			}
			b, err := a.svc.RandomBytes(n)
			if err != nil {
				return err
			}
			files := ioFlags{out: out}
			if raw {
				return files.write(cmd, b)
			}
			return files.write(cmd, []byte(hex.EncodeToString(b)+"\n"))
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes instead of hex")
	return cmd
}
