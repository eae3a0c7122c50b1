package router

import (
	"bank-admin-api/handler"
	"bank-admin-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	adminHandler *handler.AdminHandler,
	authService *service.AuthService,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Account
	mux.Handle("GET /api/account", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	mux.Handle("PUT /api/account", handler.ErrorHandlingMiddleware(accountHandler.UpdateAccount))
	mux.Handle("GET /api/dashboard", handler.ErrorHandlingMiddleware(accountHandler.GetDashboard))

	// Transactions
	mux.Handle("GET /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
	mux.Handle("POST /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction))
	mux.Handle("POST /api/transactions/generate", handler.ErrorHandlingMiddleware(transactionHandler.GenerateTransactions))
	mux.Handle("DELETE /api/transactions/clear", handler.ErrorHandlingMiddleware(transactionHandler.ClearTransactions))
	mux.Handle("PUT /api/transactions/{id}", handler.ErrorHandlingMiddleware(transactionHandler.UpdateTransaction))
	mux.Handle("DELETE /api/transactions/{id}", handler.ErrorHandlingMiddleware(transactionHandler.DeleteTransaction))

	// Admin pages and session flow
	mux.Handle("GET /admin/login", handler.ErrorHandlingMiddleware(adminHandler.LoginPage))
	mux.Handle("POST /admin/login", handler.ErrorHandlingMiddleware(adminHandler.Login))
	mux.Handle("GET /admin/logout", handler.ErrorHandlingMiddleware(adminHandler.Logout))
	mux.Handle("GET /admin", handler.SessionMiddleware(authService, handler.ErrorHandlingMiddleware(adminHandler.Dashboard)))

	return handler.CORSMiddleware(mux)
}
