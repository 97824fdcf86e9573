package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrEmailAlreadyExists:  http.StatusBadRequest,
	service.ErrDependencyFailure:   http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
}

// statusFromError reports every unmapped failure as a bad request.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}

// writeError responds with the status mapped from err. Authentication,
// not-found and credential failures get an empty body; validation errors
// carry their message and everything else a generic one.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusBadRequest && !errors.Is(err, service.ErrInvalidDataProvided) && !errors.Is(err, ErrInvalidJSON) {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, ErrInvalidJSON):
		http.Error(w, err.Error(), status)
	case errors.Is(err, service.ErrEmailAlreadyExists):
		http.Error(w, service.ErrEmailAlreadyExists.Error(), status)
	case status == http.StatusBadRequest && !errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, http.StatusText(status), status)
	default:
		w.WriteHeader(status)
	}
}
