// Package cli implements the interactive Snippr client: a small REPL over
// the server's HTTP API. The bearer token obtained on login is kept in
// memory only.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/snippr/internal/client/api"
	"github.com/dmitrijs2005/snippr/internal/common"
)

// input helper indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

type App struct {
	api    *api.Client
	token  string
	email  string
	reader *bufio.Reader
}

func NewApp(serverURL string) *App {
	return &App{
		api:    api.New(serverURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "not logged in"
}

// Register prompts for an email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and stores the bearer token on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.token = token
	a.email = email
	fmt.Println("Logged in!")
	return nil
}

// Add prompts for a snippet and submits it.
func (a *App) Add(ctx context.Context) error {
	language, err := getSimpleText(a.reader, "Enter language", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getMultiline(a.reader, "Enter code", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	snippet, err := a.api.CreateSnippet(ctx, a.token, language, code, description)
	if err != nil {
		return err
	}

	fmt.Printf("Created snippet %d\n", snippet.ID)
	return nil
}

// List fetches snippets, optionally filtered by language.
func (a *App) List(ctx context.Context) error {
	lang, err := getSimpleText(a.reader, "Filter by language (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.api.ListSnippets(ctx, a.token, lang)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No snippets found")
		return nil
	}
	for _, s := range list {
		fmt.Printf("#%d [%s] %s\n%s\n\n", s.ID, s.Language, s.Description, s.Code)
	}
	return nil
}

// Show fetches a single snippet by id. Reads are public, so this works
// without a login.
func (a *App) Show(ctx context.Context) error {
	input, err := getSimpleText(a.reader, "Enter snippet id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", input)
	}

	snippet, err := a.api.GetSnippet(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d [%s] %s\n%s\n", snippet.ID, snippet.Language, snippet.Description, snippet.Code)
	return nil
}

// Logout forgets the token.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.email = ""
	fmt.Println("Logged out")
	return nil
}

// Run starts the REPL on stdin.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
