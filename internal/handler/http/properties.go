package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	var create models.PropertyCreate
	if err := utils.DecodeJSON(w, r, &create); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createProperty")
		return
	}

	property, err := h.services.PropertyService.Create(r.Context(), auth.User, create)
	if err != nil {
		writeError(w, r, err, "*Handler.createProperty")
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.services.PropertyService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listProperties")
		return
	}

	utils.WriteJSON(w, models.PropertiesResponse{Properties: properties}, http.StatusOK)
}

func (h *Handler) listMyProperties(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	properties, err := h.services.PropertyService.ListMine(r.Context(), auth.User)
	if err != nil {
		writeError(w, r, err, "*Handler.listMyProperties")
		return
	}

	utils.WriteJSON(w, models.PropertiesResponse{Properties: properties}, http.StatusOK)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.services.PropertyService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getProperty")
		return
	}

	utils.WriteJSON(w, models.PropertyResponse{Property: property}, http.StatusOK)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	var update models.PropertyUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.updateProperty")
		return
	}

	property, err := h.services.PropertyService.Update(r.Context(), auth.User, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateProperty")
		return
	}

	utils.WriteJSON(w, models.PropertyResponse{Property: property}, http.StatusOK)
}

func (h *Handler) removeProperty(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	property, err := h.services.PropertyService.Remove(r.Context(), auth.User, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.removeProperty")
		return
	}

	utils.WriteJSON(w, models.PropertyResponse{Property: property}, http.StatusOK)
}
