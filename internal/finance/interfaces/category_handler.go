package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, callerID string) ([]domain.Category, error)
	GetCategory(ctx context.Context, callerID, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, callerID string, category *domain.Category) error
	UpdateCategory(ctx context.Context, callerID, id string, input domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, callerID, id string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), callerID(r), r.PathValue("categoryID"))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   category,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateCategory(r.Context(), callerID(r), &category); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.Category
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), callerID(r), r.PathValue("categoryID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), callerID(r), r.PathValue("categoryID")); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category deleted.",
	})
}
