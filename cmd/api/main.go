package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/accrypt/accrypt-go/internal/classifier"
	"github.com/accrypt/accrypt-go/internal/config"
	"github.com/accrypt/accrypt-go/internal/handler"
	"github.com/accrypt/accrypt-go/internal/middleware"
	"github.com/accrypt/accrypt-go/internal/repository"
	"github.com/accrypt/accrypt-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// Load the trained model and vectorizer. A failed load degrades the
	// predict endpoint only; everything else stays available.
	clf, err := classifier.Load(cfg.ModelDir)
	if err != nil {
		slog.Warn("failed to load model artifacts — predictions degraded", "dir", cfg.ModelDir, "error", err)
		clf = nil
	} else {
		slog.Info("model and vectorizer loaded", "dir", cfg.ModelDir)
	}

	store := repository.NewUserStore()
	authService := service.NewAuthService(store)
	authHandler := handler.NewAuthHandler(authService)

	// Demonstration account, mirroring the store's seed state.
	if err := authService.Seed("accryptuser", "@ccrypt12", "test@example.com"); err != nil {
		slog.Error("failed to seed demo user", "error", err)
		os.Exit(1)
	}

	analysisService := service.NewAnalysisService(clf)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Post("/predict", analysisHandler.HandlePredict)
	r.Post("/validate-email", analysisHandler.HandleValidateEmail)
	r.Post("/top-words", analysisHandler.HandleTopWords)
	r.Post("/test-threshold", analysisHandler.HandleThreshold)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
