// @title           FBIV VPN API
// @version         1.0
// @description     Demo VPN platform backend.
// @description     Auth, server list, mock connect flow and speed tests.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main is the entry point of the FBIV VPN API service.
//
// It owns the server lifecycle:
//   - loading environment variables from .env when present;
//   - loading the configuration from ./configs/server.yaml;
//   - opening the SQLite database and applying migrations;
//   - wiring repositories, services, middleware and HTTP handlers;
//   - running the HTTP server with the configured timeouts;
//   - handling termination signals (SIGINT, SIGTERM, SIGQUIT);
//   - graceful shutdown within the configured budget.
//
// No business logic lives here. The HTTP API is implemented in
// internal/server/api and documented via OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/fbivlabs/fbiv-vpn/internal/server/api"
	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	h "github.com/fbivlabs/fbiv-vpn/internal/server/net/http"
	"github.com/fbivlabs/fbiv-vpn/internal/server/repository"
	"github.com/fbivlabs/fbiv-vpn/internal/server/service"
	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"

	_ "github.com/fbivlabs/fbiv-vpn/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}

	// open the database and apply migrations
	if err := config.Init(cfg); err != nil {
		sugar.Fatal(err)
	}

	db := config.GetDB()
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	repos := service.Repositories{
		Users:       repository.NewUsersRepository(db),
		Servers:     repository.NewServersRepository(db),
		SpeedTests:  repository.NewSpeedTestsRepository(db),
		Connections: repository.NewConnectionsRepository(db),
	}

	svc := service.NewServices(repos, cfg)

	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
	)

	handler := api.NewHandler(svc, httpLogger, verifier)
	router := h.NewRouter(handler, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown with the configured timeout
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
