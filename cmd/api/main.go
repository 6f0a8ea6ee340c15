package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/DrekStyler/handypro-api/config"
	v1 "github.com/DrekStyler/handypro-api/internal/delivery/http/v1"
	fsrepo "github.com/DrekStyler/handypro-api/internal/repository/firestore"
	"github.com/DrekStyler/handypro-api/internal/storage"
	"github.com/DrekStyler/handypro-api/internal/usecase"
	"github.com/DrekStyler/handypro-api/pkg/firebase"
	"github.com/DrekStyler/handypro-api/pkg/logger"
	"github.com/DrekStyler/handypro-api/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HandyPro API", "port", cfg.Port)

	// 3. Setup Firebase (Firestore is the document store in every mode)
	app, err := firebase.NewApp(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize Firebase", "error", err)
		os.Exit(1)
	}
	db, err := firebase.NewFirestoreClient(app)
	if err != nil {
		logger.Log.Error("Failed to connect to Firestore", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Firebase Auth verifies tokens in production; with DEV_AUTH_SECRET set, the
	// middleware accepts locally minted HS256 tokens instead
	var authClient *fbauth.Client
	if cfg.DevAuthSecret == "" {
		authClient, err = firebase.NewAuthClient(app)
		if err != nil {
			logger.Log.Error("Failed to get Auth client", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("Running with DEV_AUTH_SECRET token verification")
	}

	// 4. Setup Blob Storage
	blobs, err := storage.New(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	// 5. Setup Redis (nil means in-memory rate limiting)
	rdb := redis.New(cfg)

	// 6. Setup Repositories
	userRepo := fsrepo.NewUserRepository(db)
	companyProfileRepo := fsrepo.NewCompanyProfileRepository(db)
	portfolioRepo := fsrepo.NewPortfolioRepository(db)
	projectRepo := fsrepo.NewProjectRepository(db)
	notificationRepo := fsrepo.NewNotificationRepository(db)

	// 7. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo, companyProfileRepo, logger.Log)
	companyProfileUC := usecase.NewCompanyProfileUsecase(companyProfileRepo, blobs, logger.Log)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, blobs, logger.Log)
	projectUC := usecase.NewProjectUsecase(projectRepo, logger.Log)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, logger.Log)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:           userUC,
		CompanyProfileUC: companyProfileUC,
		PortfolioUC:      portfolioUC,
		ProjectUC:        projectUC,
		NotificationUC:   notificationUC,
		UserRepo:         userRepo,
		AuthClient:       authClient,
		Redis:            rdb,
		Config:           cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
