package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
)

type TransactionServiceInterface interface {
	ListTransactions(ctx context.Context, callerID string) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, callerID, id string) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, callerID string, transaction *domain.Transaction) error
	UpdateTransaction(ctx context.Context, callerID, id string, input domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, callerID, id string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactions(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.service.GetTransaction(r.Context(), callerID(r), r.PathValue("transactionID"))
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateTransaction(r.Context(), callerID(r), &transaction); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var input domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), callerID(r), r.PathValue("transactionID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTransaction(r.Context(), callerID(r), r.PathValue("transactionID")); err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction deleted.",
	})
}
