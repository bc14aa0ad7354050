package earnbit

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	accountHandler "github.com/growclear66-coder/EAARNbIT/internal/account/handler"
	accountRepository "github.com/growclear66-coder/EAARNbIT/internal/account/repository"
	accountService "github.com/growclear66-coder/EAARNbIT/internal/account/service"
	"github.com/growclear66-coder/EAARNbIT/internal/config"
	db "github.com/growclear66-coder/EAARNbIT/internal/database"
	"github.com/growclear66-coder/EAARNbIT/internal/middleware"
	settingsHandler "github.com/growclear66-coder/EAARNbIT/internal/settings/handler"
	settingsRepository "github.com/growclear66-coder/EAARNbIT/internal/settings/repository"
	settingsService "github.com/growclear66-coder/EAARNbIT/internal/settings/service"
	statsHandler "github.com/growclear66-coder/EAARNbIT/internal/stats/handler"
	statsRepository "github.com/growclear66-coder/EAARNbIT/internal/stats/repository"
	statsService "github.com/growclear66-coder/EAARNbIT/internal/stats/service"
	tapHandler "github.com/growclear66-coder/EAARNbIT/internal/tap/handler"
	tapService "github.com/growclear66-coder/EAARNbIT/internal/tap/service"
	userHandler "github.com/growclear66-coder/EAARNbIT/internal/user/handler"
	userRepository "github.com/growclear66-coder/EAARNbIT/internal/user/repository"
	userService "github.com/growclear66-coder/EAARNbIT/internal/user/service"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
	withdrawalHandler "github.com/growclear66-coder/EAARNbIT/internal/withdrawal/handler"
	withdrawalRepository "github.com/growclear66-coder/EAARNbIT/internal/withdrawal/repository"
	withdrawalService "github.com/growclear66-coder/EAARNbIT/internal/withdrawal/service"
)

func Run(quit chan os.Signal) {
	cfg := *config.NewConfig()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Unable to initialize zap logger", err)
	}

	decimal.MarshalJSONWithoutQuotes = true

	jwtManager := utils.InitJWTManager(cfg.TokenName, cfg.Secret, logger)
	postgresPool := initPostgresPool(&cfg, logger)

	trManager := manager.Must(trmpgx.NewDefaultFactory(postgresPool.DB))
	trSettings := newTrSettings()

	accountRepo := accountRepository.NewPostgresAccountRepository(postgresPool, logger)
	accountServ := accountService.NewAccountService(accountRepo, logger)

	userRepo := userRepository.NewPostgresUserRepository(postgresPool, logger)
	userServ := userService.NewUserService(userRepo, accountRepo, trManager, trSettings, logger)

	tapServ := tapService.NewTapService(accountRepo, logger)

	settingsRepo := settingsRepository.NewPostgresSettingsRepository(postgresPool, logger)
	settingsServ := settingsService.NewSettingsService(settingsRepo, logger)

	withdrawalRepo := withdrawalRepository.NewPostgresWithdrawalRepository(postgresPool, logger)
	withdrawalServ := withdrawalService.NewWithdrawalService(
		withdrawalRepo, accountRepo, settingsServ, trManager, trSettings, logger)

	statsRepo := statsRepository.NewPostgresStatsRepository(postgresPool, logger)
	statsServ := statsService.NewStatsService(statsRepo, logger)

	requestLogger := middleware.InitRequestLogger(logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)

	e := echo.New()

	e.Use(requestLogger.RequestLogger())
	e.Use(middleware.Compress())
	e.Use(middleware.Decompress())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	userHandler.NewUserHandler(e, userServ, jwtManager, logger)
	tapHandler.NewTapHandler(e, tapServ, logger, jwtAuth)
	withdrawalHandler.NewWithdrawalHandler(e, withdrawalServ, logger, jwtAuth)
	accountHandler.NewAccountHandler(e, accountServ, logger, jwtAuth)
	settingsHandler.NewSettingsHandler(e, settingsServ, logger, jwtAuth)
	statsHandler.NewStatsHandler(e, statsServ, logger, jwtAuth)

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

func newTrSettings() trm.Settings {
	return trmpgx.MustSettings(
		settings.Must(settings.WithCancelable(true)),
		trmpgx.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.RepeatableRead}),
	)
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
