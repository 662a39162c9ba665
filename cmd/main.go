package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dtroode/homestock-server/internal/api/grpc/health"
	grpcRouter "github.com/dtroode/homestock-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/homestock-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/homestock-server/internal/api/http/context"
	httpRouter "github.com/dtroode/homestock-server/internal/api/http/router"
	httpServer "github.com/dtroode/homestock-server/internal/api/http/server"
	"github.com/dtroode/homestock-server/internal/chatbot"
	"github.com/dtroode/homestock-server/internal/config"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/metrics"
	"github.com/dtroode/homestock-server/internal/model"
	"github.com/dtroode/homestock-server/internal/password"
	"github.com/dtroode/homestock-server/internal/repository/postgres"
	"github.com/dtroode/homestock-server/internal/server"
	"github.com/dtroode/homestock-server/internal/service"
	storage "github.com/dtroode/homestock-server/internal/storage/minio"
	"github.com/dtroode/homestock-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	inventoryRepo := postgres.NewInventoryRepository(db)
	shoppingListRepo := postgres.NewShoppingListRepository(db)

	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, storageClient, logger)
	categoryService := service.NewCategory(categoryRepo, logger)
	inventoryService := service.NewInventory(inventoryRepo, categoryRepo, logger)
	shoppingListService := service.NewShoppingList(shoppingListRepo, inventoryRepo, logger)
	chatbotService := service.NewChatbot(inventoryService, newGenerator(cfg.Chatbot, logger), cfg.Shopping.LowStockThreshold, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	handler := httpRouter.New(
		httpRouter.Services{
			Auth:         authService,
			Authn:        authService,
			User:         userService,
			Category:     categoryService,
			Inventory:    inventoryService,
			ShoppingList: shoppingListService,
			Chatbot:      chatbotService,
			DB:           db,
		},
		httpRouter.Options{
			CORSOrigins:       cfg.HTTP.CORSOrigins,
			LowStockThreshold: cfg.Shopping.LowStockThreshold,
			Metrics:           m,
			Gatherer:          registry,
		},
		httpctx.NewManager(),
		logger,
	).Register()

	reporter := health.NewReporter(db, healthCheckInterval, logger)
	go reporter.Run(ctx)

	servers := []model.Server{
		httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port)),
		grpcServer.NewGRPCServer(grpcRouter.New(reporter, m, logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}

	sl, err := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	if err != nil {
		logger.Fatal("failed to initialize security layer", "error", err)
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newGenerator returns nil when no endpoint is configured so the chatbot
// falls back to its canned reply.
func newGenerator(cfg config.Chatbot, logger *logger.Logger) model.Generator {
	if cfg.Endpoint == "" {
		logger.Info("chatbot endpoint not configured, generative replies disabled")
		return nil
	}
	return chatbot.NewClient(cfg.Endpoint, cfg.APIKey, cfg.Model, cfg.Timeout)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
