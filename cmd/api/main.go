package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autofinanceai/backend/internal/pkg/config"
	"github.com/autofinanceai/backend/internal/pkg/database"
	"github.com/autofinanceai/backend/internal/pkg/health"
	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/middleware"
	"github.com/autofinanceai/backend/internal/pkg/server"
	txHandler "github.com/autofinanceai/backend/services/transactions/handler"
	txHTTP "github.com/autofinanceai/backend/services/transactions/handler/http"
	"github.com/autofinanceai/backend/services/transactions/gateway"
	txRepository "github.com/autofinanceai/backend/services/transactions/repository"
	txUsecase "github.com/autofinanceai/backend/services/transactions/usecase"
	userHandler "github.com/autofinanceai/backend/services/users/handler"
	userHTTP "github.com/autofinanceai/backend/services/users/handler/http"
	userRepository "github.com/autofinanceai/backend/services/users/repository"
	userUsecase "github.com/autofinanceai/backend/services/users/usecase"
)

func main() {
	appName := "finance-api"
	configs := config.InitConfig("config/api.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Repositories
	txRepo := txRepository.NewTransactionRepo(configs, postgresClient.GetDB())
	userRepo := userRepository.NewUserRepo(configs, postgresClient.GetDB())

	// Gateways
	aiGW := gateway.NewAIGateway(configs.AI)

	// Usecases
	txUC := txUsecase.NewTransactionUC(configs, txRepo, aiGW)
	userUC := userUsecase.NewUserUC(configs, userRepo)

	// Handlers
	txHTTPHandler := txHTTP.NewTransactionHandler(txUC)
	userHTTPHandler := userHTTP.NewUserHandler(userUC)

	txRoutes := txHandler.NewHandler(txHTTPHandler, configs)
	userRoutes := userHandler.NewHandler(userHTTPHandler, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, postgresClient.Ping)

	txRoutes.RegisterRoutes(e)
	userRoutes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
