package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"triviaapi/auth"
	"triviaapi/config"
	"triviaapi/db"
	"triviaapi/handlers"
	"triviaapi/logger"
	appmiddleware "triviaapi/middleware"
	"triviaapi/services"
	"triviaapi/utils"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("could not initialize database connection pool: %w", err)
	}
	defer func() {
		log.Info().Msg("closing database connection pool")
		pool.Close()
	}()

	var authenticator *auth.Authenticator
	if cfg.AuthEnabled() {
		authenticator = auth.New(cfg.JWTSecret, cfg.AdminPasswordHash)
		log.Info().Msg("admin token auth enabled")
	}

	h := handlers.New(
		db.NewQuestionStore(pool),
		db.NewCategoryStore(pool),
		services.NewQuizPicker(),
		authenticator,
	)

	readTimeout, writeTimeout, idleTimeout := cfg.ServerTimeouts()
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(h, handlers.Health(pool), log, cfg.AllowedOrigins()),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(h *handlers.Handler, health http.HandlerFunc, log zerolog.Logger, origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.Logger(log))
	r.Use(appmiddleware.RequestID)
	r.Use(appmiddleware.Recoverer)

	r.NotFound(utils.NotFound)
	r.MethodNotAllowed(utils.MethodNotAllowed)

	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Use(appmiddleware.CORS(origins))
		r.Use(appmiddleware.APIHeaders)
		h.Mount(r)
	})

	return r
}

func hashPassword(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("usage: triviaapi hash-password <password>")
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	fmt.Println(hash)
	return nil
}
