package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/server/auth"
)

// extractBearerToken returns the token from an "Authorization: Bearer <t>"
// header. The scheme is matched case-insensitively.
func extractBearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, strings.TrimSpace(common.BearerPrefix)) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// accessTokenMiddleware rejects requests without a valid bearer token and
// stores the verified identity in the request context.
func (s *HTTPServer) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if !ok {
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		id, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorInternal) {
				writeMessage(w, http.StatusInternalServerError, msgInternal)
				return
			}
			s.logger.Debug(r.Context(), "token rejected", "error", err)
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
