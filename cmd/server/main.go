package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hr-ledger.backend/internal/config"
	"hr-ledger.backend/internal/infrastructure/repositories"
	"hr-ledger.backend/internal/infrastructure/tablestore"
	"hr-ledger.backend/internal/interfaces/http/handlers"
	"hr-ledger.backend/internal/interfaces/http/middleware"
	"hr-ledger.backend/internal/usecases"
	"hr-ledger.backend/pkg/jwt"
	"hr-ledger.backend/pkg/logger"
	"hr-ledger.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	payrollRepo := repositories.NewPayrollRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	salesRepo := repositories.NewSalesRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	tradeRepo := repositories.NewTradeRepository(db)
	gateway := tablestore.NewGateway(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)
	adminUsecase := usecases.NewAdminUsecase(userRepo)
	employeeUsecase := usecases.NewEmployeeUsecase(employeeRepo)
	payrollUsecase := usecases.NewPayrollUsecase(payrollRepo)
	clientUsecase := usecases.NewClientUsecase(clientRepo)
	salesUsecase := usecases.NewSalesUsecase(salesRepo)
	purchaseUsecase := usecases.NewPurchaseUsecase(purchaseRepo)
	tradeUsecase := usecases.NewTradeUsecase(tradeRepo)
	importUsecase := usecases.NewImportUsecase(gateway)
	dashboardUsecase := usecases.NewDashboardUsecase(employeeRepo, clientRepo, salesRepo, purchaseRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUsecase)
	payrollHandler := handlers.NewPayrollHandler(payrollUsecase)
	clientHandler := handlers.NewClientHandler(clientUsecase)
	salesHandler := handlers.NewSalesHandler(salesUsecase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUsecase)
	tradeHandler := handlers.NewTradeHandler(tradeUsecase)
	importHandler := handlers.NewImportHandler(importUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.Metrics())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		adminHandler:       adminHandler,
		employeeHandler:    employeeHandler,
		payrollHandler:     payrollHandler,
		clientHandler:      clientHandler,
		salesHandler:       salesHandler,
		purchaseHandler:    purchaseHandler,
		tradeHandler:       tradeHandler,
		importHandler:      importHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     middleware.AuthMiddleware(jwtService),
		approvalMiddleware: middleware.ApprovalMiddleware(userRepo),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 HR-Ledger Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
