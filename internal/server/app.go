// Package server initializes and runs the Snippr service: it resolves the
// encryption key and signing secret, imports seed data into the in-memory
// stores, wires the services and serves HTTP until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/snippr/internal/cryptox"
	"github.com/dmitrijs2005/snippr/internal/logging"
	"github.com/dmitrijs2005/snippr/internal/server/auth"
	"github.com/dmitrijs2005/snippr/internal/server/config"
	"github.com/dmitrijs2005/snippr/internal/server/httpapi"
	"github.com/dmitrijs2005/snippr/internal/server/repositories/snippets"
	"github.com/dmitrijs2005/snippr/internal/server/repositories/users"
	"github.com/dmitrijs2005/snippr/internal/server/seed"
	"github.com/dmitrijs2005/snippr/internal/server/services"
	"github.com/jonboulle/clockwork"
)

// insecureDefaultSecret is used when no signing secret is configured.
// Startup warns about it; anyone can forge tokens against this value.
const insecureDefaultSecret = "snippr-insecure-dev-secret"

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	keySource := cryptox.SelectKeySource(c.EncryptionKey)
	if keySource.Generated() {
		logger.Warn(ctx, "no encryption key configured, generated a fresh one; "+
			"ciphertext will not survive a restart")
	}
	key, err := keySource.Key()
	if err != nil {
		return nil, fmt.Errorf("resolving encryption key: %w", err)
	}

	cipher, err := cryptox.New(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	secret := c.SecretKey
	if secret == "" {
		secret = insecureDefaultSecret
		logger.Warn(ctx, "no signing secret configured, using the insecure default")
	}

	initial, err := seed.Load(c.SeedFile, cipher)
	if err != nil {
		// a bad seed file is not fatal, the store just starts empty
		logger.Warn(ctx, "seed import failed, starting with an empty store", "error", err.Error())
		initial = nil
	} else if len(initial) > 0 {
		logger.Info(ctx, "seed data imported", "snippets", len(initial))
	}

	userRepo := users.NewMemoryRepository()
	snippetRepo := snippets.NewMemoryRepository(initial)

	tokens := auth.NewTokenManager([]byte(secret), c.TokenValidityDuration, clockwork.NewRealClock())
	gate := auth.NewGate(tokens, userRepo)

	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(), tokens)
	snippetService := services.NewSnippetService(snippetRepo, cipher)

	srv := httpapi.NewServer(c.EndpointAddr, logger, userService, snippetService, gate)

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
