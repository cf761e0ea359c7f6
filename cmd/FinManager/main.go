package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/iremkabaoglu/FinManager/db"
	"github.com/iremkabaoglu/FinManager/internal/auth"
	"github.com/iremkabaoglu/FinManager/internal/finance/application"
	"github.com/iremkabaoglu/FinManager/internal/finance/infrastructure"
	"github.com/iremkabaoglu/FinManager/internal/finance/interfaces"
	"github.com/iremkabaoglu/FinManager/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	accountHandler     *interfaces.AccountHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	dashboardHandler   *interfaces.DashboardHandler
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	withAuth := s.authService.JWTAccessTokenMiddleware()

	protectedRoutes.Handle("GET /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	protectedRoutes.Handle("POST /api/protected/change-password", withAuth(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	// ACCOUNTS API
	protectedRoutes.Handle("GET /api/protected/accounts", withAuth(http.HandlerFunc(s.accountHandler.ListAccounts)))
	protectedRoutes.Handle("POST /api/protected/accounts", withAuth(http.HandlerFunc(s.accountHandler.CreateAccount)))
	protectedRoutes.Handle("GET /api/protected/accounts/{accountID}", withAuth(http.HandlerFunc(s.accountHandler.GetAccount)))
	protectedRoutes.Handle("PUT /api/protected/accounts/{accountID}", withAuth(http.HandlerFunc(s.accountHandler.UpdateAccount)))
	protectedRoutes.Handle("DELETE /api/protected/accounts/{accountID}", withAuth(http.HandlerFunc(s.accountHandler.DeleteAccount)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.ListCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.GetCategory)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// TRANSACTIONS API
	protectedRoutes.Handle("GET /api/protected/transactions", withAuth(http.HandlerFunc(s.transactionHandler.ListTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions", withAuth(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions/{transactionID}", withAuth(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	protectedRoutes.Handle("PUT /api/protected/transactions/{transactionID}", withAuth(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}", withAuth(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// DASHBOARD API
	protectedRoutes.Handle("GET /api/protected/dashboard", withAuth(http.HandlerFunc(s.dashboardHandler.GetDashboard)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func StartRevokedTokenCleanup(store *auth.RevokedTokenStore) error {
	c := cron.New()
	_, err := c.AddFunc("@every 1h", func() {
		store.PurgeExpired()
		log.Println("Revoked token store purged.")
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.RunMigrations(); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	revokedTokens := auth.NewRevokedTokenStore()
	authService := auth.NewAuthService(userService, jwtManager, revokedTokens)
	authHandler := auth.NewHandler(authService)

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	accountService := application.NewAccountService(accountRepo)
	accountHandler := interfaces.NewAccountHandler(accountService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, accountService, categoryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	dashboardService := application.NewDashboardService(transactionRepo)
	dashboardHandler := interfaces.NewDashboardHandler(dashboardService, respondJSON, respondError)

	server := &Server{
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		accountHandler:     accountHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		dashboardHandler:   dashboardHandler,
	}
	server.RegisterRoutes()

	if err := StartRevokedTokenCleanup(revokedTokens); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
