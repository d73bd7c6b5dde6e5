package adledger

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	adminHandler "github.com/msavelyev/adledger/internal/admin/handler"
	"github.com/msavelyev/adledger/internal/config"
	db "github.com/msavelyev/adledger/internal/database"
	earningHandler "github.com/msavelyev/adledger/internal/earning/handler"
	earningRepository "github.com/msavelyev/adledger/internal/earning/repository"
	earningService "github.com/msavelyev/adledger/internal/earning/service"
	"github.com/msavelyev/adledger/internal/middleware"
	offerHandler "github.com/msavelyev/adledger/internal/offer/handler"
	offerProvider "github.com/msavelyev/adledger/internal/offer/provider"
	offerRepository "github.com/msavelyev/adledger/internal/offer/repository"
	offerService "github.com/msavelyev/adledger/internal/offer/service"
	statsHandler "github.com/msavelyev/adledger/internal/stats/handler"
	statsRepository "github.com/msavelyev/adledger/internal/stats/repository"
	statsService "github.com/msavelyev/adledger/internal/stats/service"
	userHandler "github.com/msavelyev/adledger/internal/user/handler"
	userRepository "github.com/msavelyev/adledger/internal/user/repository"
	userService "github.com/msavelyev/adledger/internal/user/service"
	"github.com/msavelyev/adledger/internal/utils"
	withdrawalHandler "github.com/msavelyev/adledger/internal/withdrawal/handler"
	withdrawalRepository "github.com/msavelyev/adledger/internal/withdrawal/repository"
	withdrawalService "github.com/msavelyev/adledger/internal/withdrawal/service"
)

func Run(quit chan os.Signal) {
	cfg := *config.NewConfig()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Unable to initialize zap logger", err)
	}

	decimal.MarshalJSONWithoutQuotes = true

	jwtManager := utils.InitJWTManager(cfg.TokenName, cfg.AdminSecret, logger)
	postgresPool := initPostgresPool(&cfg, logger)
	trManager := manager.Must(trmpgx.NewDefaultFactory(postgresPool.DB))

	userRepo := userRepository.NewPostgresUserRepository(postgresPool, logger)
	earningRepo := earningRepository.NewPostgresEarningRepository(postgresPool, logger)
	withdrawalRepo := withdrawalRepository.NewPostgresWithdrawalRepository(postgresPool, logger)
	statsRepo := statsRepository.NewPostgresStatsRepository(postgresPool, logger)
	offerRepo := offerRepository.NewPostgresOfferRepository(postgresPool, logger)

	userServ := userService.NewUserService(userRepo, earningRepo, trManager, &cfg, logger)
	earningServ := earningService.NewEarningService(earningRepo, userRepo, trManager, &cfg, logger)
	withdrawalServ := withdrawalService.NewWithdrawalService(withdrawalRepo, userRepo, trManager, &cfg, logger)
	statsServ := statsService.NewStatsService(statsRepo, logger)
	offerServ := offerService.NewOfferService(offerRepo, logger)

	offerQuerier := offerProvider.NewOfferProvider(cfg.OfferProviderAddress, logger)
	offerService.NewOfferSyncService(offerRepo, offerQuerier, logger).Run()

	requestLogger := middleware.InitRequestLogger(logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)

	e := echo.New()

	e.Use(requestLogger.RequestLogger())

	userHandler.NewUserHandler(e, userServ, logger)
	earningHandler.NewEarningHandler(e, earningServ, offerServ, &cfg, logger, jwtAuth)
	withdrawalHandler.NewWithdrawalHandler(e, withdrawalServ, logger, jwtAuth)
	statsHandler.NewStatsHandler(e, statsServ, logger)
	offerHandler.NewOfferHandler(e, offerServ, logger)
	adminHandler.NewAdminHandler(e, jwtManager, cfg.AdminSecret, logger)

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	go func() {
		<-quit

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown
		if errShutdown := e.Shutdown(shutdownCtx); errShutdown != nil {
			e.Logger.Fatal(errShutdown)
		}
		serverStopCtx()
	}()

	errStart := e.Start(cfg.Address)
	if errStart != nil && !errors.Is(errStart, http.ErrServerClosed) {
		log.Fatal(errStart)
	}

	<-serverCtx.Done()
}

func initPostgresPool(cfg *config.Config, logger *zap.Logger) *db.PostgresPool {
	postgresPool, err := db.NewPostgresPool(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}

	migrations, err := db.NewMigrations(cfg.DatabaseURI, logger)
	if err != nil {
		logger.Fatal("Unable to create migrations", zap.Error(err))
	}

	err = migrations.MigrateUp()
	if err != nil {
		logger.Fatal("Unable to up migrations", zap.Error(err))
	}

	logger.Info("Connected to database", zap.String("DSN", cfg.DatabaseURI))
	return postgresPool
}
