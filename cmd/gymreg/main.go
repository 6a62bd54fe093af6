package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gymreg/gymreg/internal/app"
	"github.com/gymreg/gymreg/internal/auth"
	"github.com/gymreg/gymreg/internal/observability"
	"github.com/gymreg/gymreg/internal/platform/cache"
	"github.com/gymreg/gymreg/internal/platform/db"
	"github.com/gymreg/gymreg/internal/registrations"
	"github.com/gymreg/gymreg/internal/routines"
	"github.com/gymreg/gymreg/internal/trainees"
	"github.com/gymreg/gymreg/internal/workouts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	var revoked auth.RevocationList
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, revoked tokens kept in memory", slog.Any("error", err))
		revoked = auth.NewMemoryRevocationList()
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		revoked = auth.NewRedisRevocationList(redisClient)
	}

	metrics := observability.NewMetrics()

	authService := auth.NewService(auth.NewRepository(pool), tokens, revoked)
	sessionHandler := auth.NewHandler(logger, authService)
	sessionHandler.ObserveLogins(metrics)

	requireAuth := auth.RequireAuth(authService)

	traineeHandler := trainees.NewHandler(logger, trainees.NewService(trainees.NewRepository(pool)), requireAuth)
	workoutHandler := workouts.NewHandler(logger, workouts.NewService(workouts.NewRepository(pool)), requireAuth)
	routineHandler := routines.NewHandler(logger, routines.NewService(routines.NewRepository(pool)), requireAuth)
	registrationHandler := registrations.NewHandler(logger, registrations.NewService(registrations.NewRepository(pool)), requireAuth)

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		SessionHandler:      sessionHandler,
		TraineeHandler:      traineeHandler,
		WorkoutHandler:      workoutHandler,
		RoutineHandler:      routineHandler,
		RegistrationHandler: registrationHandler,
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server", slog.Any("error", err))
		os.Exit(1)
	}
}
