package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-primitives/pkg/aead"
)

// keyFlags select the AES key: raw hex, or a passphrase stretched with a salt
type keyFlags struct {
	keyHex     string
	passphrase string
	saltHex    string
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.keyHex, "key", "", "hex AES-256 key (32 bytes)")
	cmd.Flags().StringVar(&f.passphrase, "passphrase", "", "derive the key from a passphrase instead of --key")
	cmd.Flags().StringVar(&f.saltHex, "salt", "", "hex salt for --passphrase (32 bytes)")
	cmd.MarkFlagsMutuallyExclusive("key", "passphrase")
	cmd.MarkFlagsOneRequired("key", "passphrase")
}

// resolve returns the key. With a passphrase and no salt, a fresh salt is
// generated when allowed and reported on stderr.
func (f *keyFlags) resolve(a *app, cmd *cobra.Command, allowNewSalt bool) ([]byte, error) {
	if f.passphrase == "" {
		return decodeHexFlag("key", f.keyHex)
	}

	var salt []byte
	switch {
	case f.saltHex != "":
		s, err := decodeHexFlag("salt", f.saltHex)
		if err != nil {
			return nil, err
		}
		salt = s
	case allowNewSalt:
		s, err := a.svc.GenerateSalt()
		if err != nil {
			return nil, err
		}
		salt = s
		fmt.Fprintf(cmd.ErrOrStderr(), "salt: %s\n", hex.EncodeToString(salt))
	default:
		return nil, errors.New("--salt is required with --passphrase")
	}
	return aead.DeriveKey(f.passphrase, salt)
}

func encryptCmd(a *app) *cobra.Command {
	var (
		files    ioFlags
		keys     keyFlags
		nonceHex string
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt the input with AES-256-GCM; output is ciphertext followed by the tag",
		Long:  "Encrypt the input with AES-256-GCM. Without --nonce a fresh nonce is generated and printed on stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.resolve(a, cmd, true)
			if err != nil {
				return err
			}

			var nonce []byte
			if nonceHex != "" {
				if nonce, err = decodeHexFlag("nonce", nonceHex); err != nil {
					return err
				}
			} else {
				if nonce, err = a.svc.GenerateNonce(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "nonce: %s\n", hex.EncodeToString(nonce))
			}

			plaintext, err := files.read(cmd)
			if err != nil {
				return err
			}
			ct, err := a.svc.Encrypt(key, nonce, plaintext)
			if err != nil {
				return err
			}
			return files.write(cmd, ct)
		},
	}
	files.register(cmd)
	keys.register(cmd)
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "hex nonce (12 bytes); generated when omitted")
	return cmd
}

func decryptCmd(a *app) *cobra.Command {
	var (
		files    ioFlags
		keys     keyFlags
		nonceHex string
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt AES-256-GCM ciphertext-with-tag from the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.resolve(a, cmd, false)
			if err != nil {
				return err
			}
			nonce, err := decodeHexFlag("nonce", nonceHex)
			if err != nil {
				return err
			}
			ct, err := files.read(cmd)
			if err != nil {
				return err
			}
			pt, err := a.svc.Decrypt(key, nonce, ct)
			if err != nil {
				return err
			}
			return files.write(cmd, pt)
		},
	}
	files.register(cmd)
	keys.register(cmd)
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "hex nonce used at encryption (12 bytes)")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}
