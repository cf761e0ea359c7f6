package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

func authenticatedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), "userID", "user-1")
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	service := &MockAccountService{Accounts: []domain.Account{
		{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(1200)},
		{ID: "a2", Name: "Savings", Balance: decimal.NewFromInt(5000)},
	}}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/finance/accounts", "")
	w := httptest.NewRecorder()
	handler.ListAccounts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "success", envelope["status"])
	assert.Len(t, envelope["data"], 2)
}

func TestAccountHandler_ListAccounts_Unauthenticated(t *testing.T) {
	service := &MockAccountService{Err: financeErrors.ErrUnauthenticated}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/finance/accounts", nil)
	w := httptest.NewRecorder()
	handler.ListAccounts(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Unauthorized", envelope["message"])
}

func TestAccountHandler_GetAccount(t *testing.T) {
	service := &MockAccountService{Accounts: []domain.Account{
		{ID: "a1", Name: "Checking"},
	}}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/finance/accounts/a1", "")
	req.SetPathValue("accountID", "a1")
	w := httptest.NewRecorder()
	handler.GetAccount(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Checking", data["name"])
}

func TestAccountHandler_GetAccount_NotFound(t *testing.T) {
	service := &MockAccountService{}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/finance/accounts/missing", "")
	req.SetPathValue("accountID", "missing")
	w := httptest.NewRecorder()
	handler.GetAccount(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Resource not found", envelope["message"])
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	service := &MockAccountService{}
	handler := NewAccountHandler(service, respondJSON, respondError)

	body := `{"name":"Checking","description":"Main account","balance":"1200.50"}`
	req := authenticatedRequest(http.MethodPost, "/api/finance/accounts", body)
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Account successfully created.", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "generated-id", data["id"])
	require.Len(t, service.Accounts, 1)
	assert.Equal(t, "user-1", service.Accounts[0].OwnerID)
}

func TestAccountHandler_CreateAccount_InvalidBody(t *testing.T) {
	service := &MockAccountService{}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/finance/accounts", "{not json")
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.Accounts)
}

func TestAccountHandler_CreateAccount_ValidationError(t *testing.T) {
	service := &MockAccountService{Err: financeErrors.NewFieldValidationError("name", "is required")}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/finance/accounts", `{"description":"no name"}`)
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Contains(t, envelope["message"], "name")
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	service := &MockAccountService{}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/finance/accounts/a1", `{"name":"Renamed"}`)
	req.SetPathValue("accountID", "a1")
	w := httptest.NewRecorder()
	handler.UpdateAccount(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Account successfully updated.", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "a1", data["id"])
	assert.Equal(t, "Renamed", data["name"])
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	service := &MockAccountService{}
	handler := NewAccountHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/finance/accounts/a1", "")
	req.SetPathValue("accountID", "a1")
	w := httptest.NewRecorder()
	handler.DeleteAccount(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Account deleted.", envelope["message"])
}

func TestNewAccountHandler_NilService(t *testing.T) {
	assert.Panics(t, func() {
		NewAccountHandler(nil, respondJSON, respondError)
	})
}
