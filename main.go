package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcode-github/estate-envision/config"
	"github.com/dcode-github/estate-envision/controllers"
	"github.com/dcode-github/estate-envision/genai"
	"github.com/dcode-github/estate-envision/routes"
	"github.com/dcode-github/estate-envision/services"
	"github.com/dcode-github/estate-envision/storage"
	"github.com/dcode-github/estate-envision/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if err := run(cfg, logger, sigCh); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves until stop fires or the listener fails. Every resource opened
// here is released before it returns.
func run(cfg config.Config, logger *zap.Logger, stop <-chan os.Signal) error {
	tokens, err := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	ctx := context.Background()

	client, err := config.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	defer config.CloseDBConnection(client, logger)

	collections := config.NewCollections(client, cfg.DBName)
	if err := config.EnsureIndexes(ctx, collections); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	redisClient, err := config.NewRedis(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	throttle := services.LoginThrottle{MaxAttempts: cfg.LoginMaxAttempts, Window: cfg.LoginLockout}
	if redisClient != nil {
		defer redisClient.Close()
		throttle.Counter = storage.NewLoginAttempts(redisClient)
	}

	var generator genai.Generator
	if cfg.GenAIEndpoint != "" {
		generator = genai.NewHTTPGenerator(cfg.GenAIEndpoint, cfg.GenAIAPIKey, cfg.GenAITimeout)
	} else {
		logger.Info("GENAI_ENDPOINT not set, description generation disabled")
	}

	users := storage.NewUserStore(collections.Users)
	properties := storage.NewPropertyStore(collections.Properties, logger)
	submitted := storage.NewSubmittedStore(collections.Submitted, logger)
	favorites := storage.NewFavoriteStore(collections.Favorites)
	recommendations := storage.NewRecommendationStore(collections.Recommendations)

	router := mux.NewRouter()
	routes.Routes(router, routes.Deps{
		Auth:            services.NewAuthService(users, tokens, throttle, logger),
		Properties:      services.NewPropertyService(properties, favorites, cfg.PageSizeMax, logger),
		Listings:        services.NewListingService(submitted, logger),
		Favorites:       services.NewFavoriteService(favorites, properties, logger),
		Recommendations: services.NewRecommendationService(recommendations, users, properties, favorites, logger),
		Descriptions:    services.NewDescriptionService(generator, logger),
		Tokens:          tokens,
		Cookie:          controllers.CookieSettings{Secure: cfg.CookieSecure, TTL: tokens.TTL()},
		Logger:          logger,
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		AllowCredentials: cfg.CORSAllowCredentials,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   cfg.GenAITimeout + 10*time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("start server: %w", err)
	case <-stop:
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
