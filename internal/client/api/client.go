// Package api is the HTTP client for the Snippr server used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/snippr/internal/common"
)

// Snippet is the wire form of a snippet as returned by the server. Code is
// empty in create responses: the server never echoes it back.
type Snippet struct {
	ID          int64  `json:"id"`
	Language    string `json:"language"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createSnippetRequest struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/users", "", credentials{Email: email, Password: password}, nil)
}

// Login returns the bearer token on success.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", "", credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) CreateSnippet(ctx context.Context, token, language, code, description string) (*Snippet, error) {
	var resp Snippet
	req := createSnippetRequest{Language: language, Code: code, Description: description}
	if err := c.do(ctx, http.MethodPost, "/snippets", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListSnippets(ctx context.Context, token, lang string) ([]Snippet, error) {
	path := "/snippets"
	if lang != "" {
		path += "?lang=" + lang
	}
	var resp []Snippet
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetSnippet(ctx context.Context, id int64) (*Snippet, error) {
	var resp Snippet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/snippets/%d", id), "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError maps response codes back onto the shared error taxonomy.
func statusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusBadRequest:
		return common.ErrorValidation
	case status == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case status == http.StatusNotFound:
		return common.ErrorNotFound
	case status == http.StatusConflict:
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}
