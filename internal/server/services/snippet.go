package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/cryptox"
	"github.com/dmitrijs2005/snippr/internal/server/models"
	"github.com/dmitrijs2005/snippr/internal/server/repositories/snippets"
)

// SnippetView is a snippet with its code recovered from the stored
// ciphertext. Read paths return views; the stored form never carries
// plaintext.
type SnippetView struct {
	ID          int64
	Language    string
	Code        string
	Description string
}

type SnippetService struct {
	snippets snippets.Repository
	cipher   *cryptox.Cipher
}

func NewSnippetService(snippets snippets.Repository, cipher *cryptox.Cipher) *SnippetService {
	return &SnippetService{snippets: snippets, cipher: cipher}
}

// Create encrypts code and stores the snippet. Empty language or code
// fails with common.ErrorValidation before any state changes.
func (s *SnippetService) Create(ctx context.Context, language, code, description string) (*models.Snippet, error) {
	if language == "" || code == "" {
		return nil, fmt.Errorf("%w: language and code are required", common.ErrorValidation)
	}

	ciphertext, err := s.cipher.Encrypt(code)
	if err != nil {
		return nil, fmt.Errorf("encrypting snippet: %w", err)
	}

	snippet := &models.Snippet{
		Language:    language,
		Ciphertext:  ciphertext,
		Description: description,
	}

	return s.snippets.Insert(ctx, snippet)
}

// Get returns the decrypted snippet, or common.ErrorNotFound.
func (s *SnippetService) Get(ctx context.Context, id int64) (*SnippetView, error) {
	snippet, err := s.snippets.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.decrypt(snippet)
}

// List returns decrypted snippets in insertion order, optionally filtered
// by language (case-insensitive).
func (s *SnippetService) List(ctx context.Context, languageFilter string) ([]*SnippetView, error) {
	stored, err := s.snippets.List(ctx, languageFilter)
	if err != nil {
		return nil, err
	}

	views := make([]*SnippetView, 0, len(stored))
	for _, snippet := range stored {
		view, err := s.decrypt(snippet)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *SnippetService) decrypt(snippet *models.Snippet) (*SnippetView, error) {
	code, err := s.cipher.Decrypt(snippet.Ciphertext)
	if err != nil {
		// key mismatch or corrupt data: surface, never swallow
		return nil, fmt.Errorf("decrypting snippet %d: %w", snippet.ID, err)
	}

	return &SnippetView{
		ID:          snippet.ID,
		Language:    snippet.Language,
		Code:        code,
		Description: snippet.Description,
	}, nil
}
