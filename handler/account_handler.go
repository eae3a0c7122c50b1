package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/model"
	"bank-admin-api/service"
	"encoding/json"
	"net/http"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAccount godoc
// @Summary      Get the account
// @Description  Retrieves the single account record with its banking metadata and balance.
// @Tags         account
// @Produce      json
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	account, err := h.service.Get()
	if err != nil {
		if err == service.ErrAccountNotFound {
			return common.NewNotFoundError("Account not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// UpdateAccount godoc
// @Summary      Update the account
// @Description  Applies a partial update to the account. Only supplied fields are changed.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        patch body model.AccountPatch true "Fields to update"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/account [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var patch model.AccountPatch
	if !common.ValidateAndDecode(w, r, &patch) {
		return nil
	}

	logger.Log.Info("Account update request received")

	account, err := h.service.Update(r.Context(), &patch)
	if err != nil {
		if err == service.ErrAccountNotFound {
			return common.NewNotFoundError("Account not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetDashboard godoc
// @Summary      Get the dashboard payload
// @Description  Returns the account together with the full transaction list, newest first.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  model.Dashboard
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/dashboard [get]
func (h *AccountHandler) GetDashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		if err == service.ErrAccountNotFound {
			return common.NewNotFoundError("Account not found", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve dashboard", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dashboard)
	return nil
}
