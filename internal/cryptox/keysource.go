package cryptox

import (
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/snippr/internal/common"
)

// KeySource yields the process-wide encryption key, established once at
// startup.
type KeySource interface {
	Key() ([]byte, error)

	// Generated reports whether the key was freshly generated rather than
	// taken from configuration. A generated key makes ciphertext from
	// previous runs unrecoverable, which callers should warn about.
	Generated() bool
}

// ConfiguredKey decodes a hex-encoded key from configuration.
type ConfiguredKey struct {
	hexKey string
}

func NewConfiguredKey(hexKey string) *ConfiguredKey {
	return &ConfiguredKey{hexKey: hexKey}
}

func (s *ConfiguredKey) Key() ([]byte, error) {
	key, err := hex.DecodeString(s.hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key hex: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	return key, nil
}

func (s *ConfiguredKey) Generated() bool { return false }

// GeneratedKey is a fresh random key for runs with no configured key.
type GeneratedKey struct {
	key []byte
}

func NewGeneratedKey() *GeneratedKey {
	return &GeneratedKey{key: common.GenerateRandByteArray(KeySize)}
}

func (s *GeneratedKey) Key() ([]byte, error) { return s.key, nil }

func (s *GeneratedKey) Generated() bool { return true }

// SelectKeySource returns a ConfiguredKey when a hex key is present and a
// GeneratedKey otherwise.
func SelectKeySource(hexKey string) KeySource {
	if hexKey != "" {
		return NewConfiguredKey(hexKey)
	}
	return NewGeneratedKey()
}
