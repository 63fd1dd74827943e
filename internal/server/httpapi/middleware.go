package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	emailKey     ctxKey = "email"
)

// withRequestID tags every request with a uuid, exposed in the
// X-Request-ID response header and available to log lines downstream.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// requireAuth runs the access gate on the bearer token before the wrapped
// handler. Rejected requests get a 401 and the handler never runs.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := s.gate.Authorize(r.Context(), bearerToken(r))
		if err != nil {
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), emailKey, email)))
	})
}

// bearerToken extracts the token from the Authorization header, returning
// an empty string when the header is missing or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, common.BearerPrefix)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
