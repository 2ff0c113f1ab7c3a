package selftest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-primitives/pkg/aead"
	"github.com/dd0wney/cluso-primitives/pkg/compression"
	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
	"github.com/dd0wney/cluso-primitives/pkg/hashing"
	"github.com/dd0wney/cluso-primitives/pkg/random"
	"github.com/dd0wney/cluso-primitives/pkg/signing"
)

// Known-answer vectors
const (
	sha256ABC = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	// RFC 8032 section 7.1, test 1
	ed25519Private   = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	ed25519Public    = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	ed25519Signature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	// NIST gcmEncryptExtIV256, count 0 with empty AAD
	gcmKey        = "31bdadd96698c204aa9ce1448ea94ae1fb4a9a0b3c9d773b51bb1822666b8f22"
	gcmNonce      = "0d18e06c7c725ac9e362e1ce"
	gcmPlaintext  = "2db5168e932556f8089a0622981d017d"
	gcmCiphertext = "fa4362189661d163fcd6a56d8bf0405ad636ac1bbedd5cc3ee727dc2ab4a9489"
)

// SHA256Check hashes "abc"
func SHA256Check() error {
	if got := hashing.SHA256Hex([]byte("abc")); got != sha256ABC {
		return fmt.Errorf("sha256(abc) = %s", got)
	}
	return nil
}

// Ed25519Check derives, signs and verifies the RFC 8032 vector
func Ed25519Check() error {
	pub, err := signing.PublicKeyFromPrivate(ed25519Private)
	if err != nil {
		return err
	}
	if pub != ed25519Public {
		return fmt.Errorf("derived public key mismatch")
	}

	sig, err := signing.Sign(ed25519Private, nil)
	if err != nil {
		return err
	}
	if sig != ed25519Signature {
		return fmt.Errorf("signature mismatch")
	}

	ok, err := signing.Verify(ed25519Public, ed25519Signature, nil)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("valid signature rejected")
	}

	ok, err = signing.Verify(ed25519Public, ed25519Signature, []byte{0})
	if err != nil {
		return err
	}
	if ok {
		return errors.New("signature accepted for a different message")
	}
	return nil
}

// AESGCMCheck encrypts the NIST vector and confirms tampering is rejected
func AESGCMCheck() error {
	key, _ := hex.DecodeString(gcmKey)
	nonce, _ := hex.DecodeString(gcmNonce)
	plaintext, _ := hex.DecodeString(gcmPlaintext)

	ct, err := aead.Encrypt(key, nonce, plaintext)
	if err != nil {
		return err
	}
	if hex.EncodeToString(ct) != gcmCiphertext {
		return errors.New("ciphertext mismatch")
	}

	pt, err := aead.Decrypt(key, nonce, ct)
	if err != nil {
		return err
	}
	if !bytes.Equal(pt, plaintext) {
		return errors.New("round trip mismatch")
	}

	ct[len(ct)-1] ^= 0x01
	if _, err := aead.Decrypt(key, nonce, ct); !errors.Is(err, cryptoerr.ErrDecryptionFailed) {
		return fmt.Errorf("tampered tag not rejected: %v", err)
	}
	return nil
}

// ZstdCheck round-trips empty and repetitive input and rejects a non-frame
func ZstdCheck() error {
	for _, data := range [][]byte{{}, bytes.Repeat([]byte("primitive "), 64)} {
		blob, err := compression.Compress(data)
		if err != nil {
			return err
		}
		out, err := compression.Decompress(blob)
		if err != nil {
			return err
		}
		if !bytes.Equal(out, data) {
			return fmt.Errorf("round trip mismatch for %d bytes", len(data))
		}
	}

	if _, err := compression.Decompress([]byte("not a frame")); !errors.Is(err, cryptoerr.ErrDecompressionFailed) {
		return fmt.Errorf("non-frame input not rejected: %v", err)
	}
	return nil
}

// RandomCheck draws two blocks from the OS source and requires them to differ
func RandomCheck() error {
	a, err := random.Bytes(random.OS, 32)
	if err != nil {
		return err
	}
	b, err := random.Bytes(random.OS, 32)
	if err != nil {
		return err
	}
	if bytes.Equal(a, b) {
		return errors.New("successive draws are identical")
	}
	return nil
}
