package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mateusbarbosa/go-auth-api/internal/api"
	"github.com/mateusbarbosa/go-auth-api/internal/auth"
	"github.com/mateusbarbosa/go-auth-api/internal/config"
	"github.com/mateusbarbosa/go-auth-api/internal/database"
	"github.com/mateusbarbosa/go-auth-api/internal/logger"
	"github.com/mateusbarbosa/go-auth-api/internal/services"
	"github.com/mateusbarbosa/go-auth-api/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer client.Disconnect(ctx)

	userStore := store.NewMongoUserStore(client.Database(cfg.DBName))
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create database indexes")
	}

	// Set up services
	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	userService := services.NewUserService(userStore, issuer)

	// Set up router
	router := api.NewRouter(userService, issuer)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
