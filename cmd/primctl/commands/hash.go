package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func hashCmd(a *app) *cobra.Command {
	var files ioFlags
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the SHA-256 digest of the input as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := files.read(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(a.svc.SHA256(data)))
			return err
		},
	}
	cmd.Flags().StringVar(&files.in, "in", "", "input file (default stdin)")
	return cmd
}
