package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"toyland-backend/internal/errs"
	"toyland-backend/internal/models"
	"toyland-backend/internal/respond"
)

type CategoryHandler struct {
	categories CategoryStore
}

func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
	}
}

// --- GET /categories ---

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, categories)
}

// --- GET /categories/{id} ---

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	category, err := h.categories.FindByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if category == nil {
		respond.Error(w, r, errs.NewNotFoundError("category not found"))
		return
	}
	respond.JSON(w, http.StatusOK, category)
}
