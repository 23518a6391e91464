package signer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// Verifier checks signatures on repository metadata
type Verifier interface {
	// VerifyCleartext checks a cleartext signature (Debian InRelease) and
	// returns the signed message
	VerifyCleartext(data []byte) ([]byte, error)
}

// GPGVerifier implements Verifier against an OpenPGP keyring
type GPGVerifier struct {
	keyring openpgp.EntityList
}

// NewGPGVerifier loads a public keyring such as
// /usr/share/keyrings/debian-archive-keyring.gpg
func NewGPGVerifier(keyringPath string) (*GPGVerifier, error) {
	if keyringPath == "" {
		return nil, fmt.Errorf("keyring path is empty")
	}

	keyFile, err := os.Open(keyringPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	defer keyFile.Close()

	// Try to parse as armored keyring first
	entityList, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		// Try as binary keyring
		if _, err := keyFile.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("failed to rewind keyring: %w", err)
		}
		entityList, err = openpgp.ReadKeyRing(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyring: %w", err)
		}
	}

	return NewGPGVerifierFromKeys(entityList)
}

// NewGPGVerifierFromKeys creates a verifier from already parsed keys
func NewGPGVerifierFromKeys(keys openpgp.EntityList) (*GPGVerifier, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys found in keyring")
	}
	return &GPGVerifier{keyring: keys}, nil
}

// VerifyCleartext checks the signature of an InRelease file
func (v *GPGVerifier) VerifyCleartext(data []byte) ([]byte, error) {
	block, _ := clearsign.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no cleartext signature found")
	}

	if _, err := openpgp.CheckDetachedSignature(v.keyring, bytes.NewReader(block.Bytes), block.ArmoredSignature.Body, nil); err != nil {
		return nil, fmt.Errorf("bad signature: %w", err)
	}

	return block.Plaintext, nil
}
