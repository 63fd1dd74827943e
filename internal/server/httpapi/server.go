// Package httpapi is the thin HTTP binding over the snippet and user
// services. It owns routing, request parsing and the translation of the
// error taxonomy to status codes; every invariant lives in the layers
// below.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/snippr/internal/logging"
	"github.com/dmitrijs2005/snippr/internal/server/auth"
	"github.com/dmitrijs2005/snippr/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr     string
	logger   logging.Logger
	users    *services.UserService
	snippets *services.SnippetService
	gate     *auth.Gate
}

func NewServer(addr string, logger logging.Logger, users *services.UserService, snippets *services.SnippetService, gate *auth.Gate) *Server {
	return &Server{addr: addr, logger: logger, users: users, snippets: snippets, gate: gate}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
