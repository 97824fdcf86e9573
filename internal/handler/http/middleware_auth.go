package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/utils"
)

// auth is an HTTP middleware that enforces token-based authentication.
//
// The token is read from the "x-auth" header, falling back to
// "Authorization: Bearer <token>". It is resolved through
// [service.AuthService.ValidateToken]; on success the user and the raw token
// are stored in the request context via [utils.WithAuth].
//
// Any failure responds 401 Unauthorized with an empty body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ValidateToken(ctx, token)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuth(ctx, user, token)))
	})
}

// tokenFromRequest extracts the bearer credential from the request headers.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(authTokenHeader)); token != "" {
		return token, nil
	}

	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return "", ErrEmptyAuthHeader
	}

	return utils.ParseBearerToken(authorization)
}
