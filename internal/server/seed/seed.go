// Package seed loads the optional seedData.json into the initial in-memory
// snippet state. The import runs once at startup; plaintext code from the
// file is encrypted before it reaches the store.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/snippr/internal/cryptox"
	"github.com/dmitrijs2005/snippr/internal/server/models"
)

// Record mirrors one entry of the seed file.
type Record struct {
	ID          int64  `json:"id"`
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// Load reads the seed file and returns the encrypted initial snippets.
// A missing file is not an error: the store just starts empty.
func Load(path string, cipher *cryptox.Cipher) ([]*models.Snippet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}

	snippets := make([]*models.Snippet, 0, len(records))
	for _, rec := range records {
		ciphertext, err := cipher.Encrypt(rec.Code)
		if err != nil {
			return nil, fmt.Errorf("encrypting seed snippet %d: %w", rec.ID, err)
		}
		snippets = append(snippets, &models.Snippet{
			ID:          rec.ID,
			Language:    rec.Language,
			Ciphertext:  ciphertext,
			Description: rec.Description,
		})
	}

	return snippets, nil
}
