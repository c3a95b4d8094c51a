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

	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
	"bookshop/internal/review"
	"bookshop/internal/session"
	"bookshop/internal/user"
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tp, err := setupTracing(cfg.TraceLog)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}

func loadSeed(path string) ([]catalog.Book, error) {
	if path == "" {
		return catalog.DefaultSeed(), nil
	}
	return catalog.LoadSeedFile(path)
}

// buildApp wires stores, services and handlers into the full middleware chain.
// Background work started here stops when ctx is done.
func buildApp(ctx context.Context, cfg config) (http.Handler, error) {
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	books, err := catalog.NewMemoryRepo(seed)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	log.Printf("catalog loaded books=%d", len(seed))

	sessions := session.NewService(session.NewMemoryBlacklist())
	go sessions.RunCleanup(ctx, 10*time.Minute)

	router := newRouter(handlers{
		books:       catalog.NewHTTPHandler(catalog.NewService(books)),
		reviews:     review.NewHTTPHandler(review.NewService(books, nil)),
		users:       user.NewHTTPHandler(user.NewService(user.NewMemoryRepo(), cfg.JWTSecret, cfg.TokenTTL)),
		sessions:    session.NewHTTPHandler(sessions),
		revoked:     sessions,
		jwtSecret:   cfg.JWTSecret,
		projectLink: cfg.ProjectLink,
	})

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.CORSMiddleware(cfg.CORSOrigins),
	), nil
}
