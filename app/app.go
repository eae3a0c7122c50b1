// File: app/app.go
package app

import (
	"bank-admin-api/config"
	"bank-admin-api/db"
	"bank-admin-api/handler"
	"bank-admin-api/logger"
	"bank-admin-api/repository"
	"bank-admin-api/router"
	"bank-admin-api/service"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	// Schema init and seeding are non-fatal: a failure is logged and the
	// service keeps serving, store errors surface per request instead.
	if err := db.InitSchema(context.Background(), database); err != nil {
		logger.Log.WithError(err).Warn("Schema initialization failed (non-fatal)")
	}

	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	if config.AppConfig.Seed.Enabled {
		db.Seed(accountRepo, transactionRepo)
	}

	// Redis backs the session store and the dashboard cache when available;
	// without it sessions are process-local and caching is skipped.
	var sessionRepo repository.ISessionRepository = repository.NewMemorySessionRepository()
	var cacheClient service.ICacheClient
	if config.AppConfig.Redis.Enabled {
		redisClient, err := db.ConnectRedis()
		if err != nil {
			logger.Log.WithError(err).Warn("Redis unavailable, falling back to in-process sessions and no caching")
		} else {
			sessionRepo = repository.NewRedisSessionRepository(redisClient)
			cacheClient = redisClient
		}
	}
	dashboardCache := service.NewDashboardCache(cacheClient)

	verifier, err := service.NewConfigCredentialVerifier(
		config.AppConfig.Admin.Username,
		config.AppConfig.Admin.Password,
	)
	if err != nil {
		logger.Log.Fatalf("Error preparing admin credentials: %v", err)
	}
	sessionTTL := time.Duration(config.AppConfig.Admin.SessionTTLHours) * time.Hour

	accountService := service.NewAccountService(accountRepo, transactionRepo, dashboardCache)
	transactionService := service.NewTransactionService(transactionRepo, dashboardCache)
	balancerService := service.NewBalancerService(database, accountRepo, transactionRepo, dashboardCache)
	authService := service.NewAuthService(verifier, sessionRepo, sessionTTL)

	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService, balancerService)
	adminHandler := handler.NewAdminHandler(authService)

	r := router.NewRouter(accountHandler, transactionHandler, adminHandler, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
