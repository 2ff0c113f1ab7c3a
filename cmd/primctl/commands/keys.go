package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSignatureMismatch = errors.New("signature does not match")

func keygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 keypair and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.svc.GenerateKeyPair()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(kp)
		},
	}
}

func signCmd(a *app) *cobra.Command {
	var (
		files ioFlags
		key   string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign the input with a hex private seed and print the hex signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := files.read(cmd)
			if err != nil {
				return err
			}
			sig, err := a.svc.Sign(key, msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sig)
			return err
		},
	}
	cmd.Flags().StringVar(&files.in, "in", "", "message file (default stdin)")
	cmd.Flags().StringVar(&key, "key", "", "hex private key (32-byte seed)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func verifyCmd(a *app) *cobra.Command {
	var (
		files    ioFlags
		pub, sig string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a hex signature over the input; exits non-zero if it does not match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := files.read(cmd)
			if err != nil {
				return err
			}
			ok, err := a.svc.Verify(pub, sig, msg)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errSignatureMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
	cmd.Flags().StringVar(&files.in, "in", "", "message file (default stdin)")
	cmd.Flags().StringVar(&pub, "pub", "", "hex public key")
	cmd.Flags().StringVar(&sig, "sig", "", "hex signature")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
