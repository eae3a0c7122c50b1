package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/model"
	"bank-admin-api/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// TransactionHandler holds dependencies for ledger-related handlers.
type TransactionHandler struct {
	service  *service.TransactionService
	balancer *service.BalancerService
}

func NewTransactionHandler(s *service.TransactionService, balancer *service.BalancerService) *TransactionHandler {
	return &TransactionHandler{service: s, balancer: balancer}
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Retrieves the full ledger ordered by created_at descending.
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   model.Transaction
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	transactions, err := h.service.List()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Description  Creates a single ledger entry from the supplied fields.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction body model.TransactionCreateRequest true "Transaction to record"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransactionCreateRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	transaction, err := h.service.Create(r.Context(), &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create transaction", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// UpdateTransaction godoc
// @Summary      Update a transaction
// @Description  Applies a partial update to a ledger entry. Only supplied fields are changed.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path int                    true "Transaction ID"
// @Param        patch body model.TransactionPatch true "Fields to update"
// @Success      200  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Invalid transaction ID or body"
// @Failure      404  {object}  common.AppError "Transaction not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := transactionID(r)
	if appErr != nil {
		return appErr
	}

	var patch model.TransactionPatch
	if !common.ValidateAndDecode(w, r, &patch) {
		return nil
	}

	transaction, err := h.service.Update(r.Context(), id, &patch)
	if err != nil {
		if err == service.ErrTransactionNotFound {
			return common.NewNotFoundError("Transaction not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update transaction", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Description  Removes a single ledger entry.
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  common.AppError "Invalid transaction ID"
// @Failure      404  {object}  common.AppError "Transaction not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := transactionID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if err == service.ErrTransactionNotFound {
			return common.NewNotFoundError("Transaction not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete transaction", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	return nil
}

// ClearTransactions godoc
// @Summary      Clear all transactions
// @Description  Removes every ledger entry and reports how many were deleted.
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions/clear [delete]
func (h *TransactionHandler) ClearTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	count, err := h.service.Clear(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not clear transactions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("Cleared %d transactions", count),
		"cleared": count,
	})
	return nil
}

// GenerateTransactions godoc
// @Summary      Generate balancing transactions
// @Description  Synthesizes random transactions whose net effect drives the ledger sum to the account balance.
// @Tags         transactions
// @Produce      json
// @Param        min_count      query int    false "Minimum number of transactions to generate" default(10)
// @Param        max_amount     query number false "Maximum magnitude of a single transaction"   default(100.0)
// @Param        min_sent_count query int    false "Minimum number of sent transactions"         default(0)
// @Param        start_time     query string false "Start of the timestamp window (ISO-8601, minute precision)"
// @Success      200  {object}  model.GenerateResult
// @Failure      400  {object}  common.AppError "Invalid generation parameters"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/transactions/generate [post]
func (h *TransactionHandler) GenerateTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	query := r.URL.Query()
	params := service.GenerateParams{
		MinCount:     10,
		MaxAmount:    100.0,
		MinSentCount: 0,
		StartTime:    query.Get("start_time"),
	}
	if raw := query.Get("min_count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return common.NewInvalidArgumentError("min_count must be an integer", err)
		}
		params.MinCount = v
	}
	if raw := query.Get("max_amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return common.NewInvalidArgumentError("max_amount must be a number", err)
		}
		params.MaxAmount = v
	}
	if raw := query.Get("min_sent_count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return common.NewInvalidArgumentError("min_sent_count must be an integer", err)
		}
		params.MinSentCount = v
	}

	result, err := h.balancer.Generate(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			return common.NewInvalidArgumentError(err.Error(), err)
		case errors.Is(err, service.ErrAccountNotFound):
			return common.NewNotFoundError("Account not found", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not generate transactions", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}

func transactionID(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, common.NewInvalidArgumentError("Invalid transaction ID in URL path", err)
	}
	return id, nil
}
