package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	var create models.TodoCreate
	if err := utils.DecodeJSON(w, r, &create); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createTodo")
		return
	}

	todo, err := h.services.TodoService.Create(r.Context(), auth.User, create)
	if err != nil {
		writeError(w, r, err, "*Handler.createTodo")
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	todos, err := h.services.TodoService.ListMine(r.Context(), auth.User)
	if err != nil {
		writeError(w, r, err, "*Handler.listTodos")
		return
	}

	utils.WriteJSON(w, models.TodosResponse{Todos: todos}, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	todo, err := h.services.TodoService.GetByID(r.Context(), auth.User, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getTodo")
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: todo}, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	var update models.TodoUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.updateTodo")
		return
	}

	todo, err := h.services.TodoService.Update(r.Context(), auth.User, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTodo")
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: todo}, http.StatusOK)
}

func (h *Handler) removeTodo(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthFromContext(r.Context())

	todo, err := h.services.TodoService.Remove(r.Context(), auth.User, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.removeTodo")
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: todo}, http.StatusOK)
}
