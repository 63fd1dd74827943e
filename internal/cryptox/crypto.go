// Package cryptox implements the symmetric encryption of snippet source
// text. Snippets are encrypted with AES-256-GCM under a single process-wide
// key; a fresh random nonce is generated per message and prepended to the
// ciphertext before hex encoding.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/snippr/internal/common"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Cipher encrypts and decrypts snippet source text.
type Cipher struct {
	gcm cipher.AEAD
}

// New creates a Cipher from a raw 32-byte key.
func New(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &Cipher{gcm: gcm}, nil
}

// Encrypt encrypts plaintext and returns hex(nonce || ciphertext || tag).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := common.GenerateRandByteArray(c.gcm.NonceSize())

	// Seal appends the encrypted data to nonce, so the nonce travels with
	// the ciphertext.
	sealed := c.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Malformed input or ciphertext produced under a
// different key fails with an error matching common.ErrCrypto.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	buf, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid hex: %v", common.ErrCrypto, err)
	}

	nonceSize := c.gcm.NonceSize()
	if len(buf) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", common.ErrCrypto)
	}

	nonce, ciphertext := buf[:nonceSize], buf[nonceSize:]
	plaintext, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	return string(plaintext), nil
}
