package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/client/twitch"
	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/hub"
	"github.com/twitchcollab/collab-service/internal/infra"
	"github.com/twitchcollab/collab-service/internal/pkg/jwt"
	"github.com/twitchcollab/collab-service/internal/pkg/tx"
	"github.com/twitchcollab/collab-service/internal/pkg/validator"
	db "github.com/twitchcollab/collab-service/internal/repository/postgres"
	"github.com/twitchcollab/collab-service/internal/rest"
	"github.com/twitchcollab/collab-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	twitchClient := twitch.New(cfg)
	defer twitchClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Websocket.JWTSecret)

	statusService := service.NewStatus(dbRepo, twitchClient, logger)
	realtimeHub := hub.New(statusService, jwtGenerator, logger)

	handler := rest.New(dbRepo, realtimeHub, twitchClient, vldtr, jwtGenerator, cfg.Twitch.WebhookSecret)

	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		handler.AttachUnauthenticatedRoutes(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, twitchClient)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})
		handler.AttachRoutes(r)
	})

	router.Get("/ws", realtimeHub.ServeWS)

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := realtimeHub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("hub error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
