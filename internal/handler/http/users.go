package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.register")
		return
	}

	user, token, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Info().Str("id", user.ID).Msg("user registered")

	w.Header().Set(authTokenHeader, token)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.login")
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	w.Header().Set(authTokenHeader, token)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, auth.User, http.StatusOK)
}

// logout revokes only the token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.RevokeToken(r.Context(), auth.User.ID, auth.Token); err != nil {
		writeError(w, r, err, "*Handler.logout")
		return
	}

	w.WriteHeader(http.StatusOK)
}
