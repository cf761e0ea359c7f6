package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
)

type AccountServiceInterface interface {
	ListAccounts(ctx context.Context, callerID string) ([]domain.Account, error)
	GetAccount(ctx context.Context, callerID, id string) (*domain.Account, error)
	CreateAccount(ctx context.Context, callerID string, account *domain.Account) error
	UpdateAccount(ctx context.Context, callerID, id string, input domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, callerID, id string) error
}

type AccountHandler struct {
	service      AccountServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewAccountHandler(
	service AccountServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *AccountHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &AccountHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   accounts,
	})
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetAccount(r.Context(), callerID(r), r.PathValue("accountID"))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   account,
	})
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateAccount(r.Context(), callerID(r), &account); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully created.",
		"data":    account,
	})
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var input domain.Account
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(r.Context(), callerID(r), r.PathValue("accountID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully updated.",
		"data":    account,
	})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccount(r.Context(), callerID(r), r.PathValue("accountID")); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account deleted.",
	})
}
