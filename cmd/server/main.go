package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "securereport/internal/adapters/http"
	pg "securereport/internal/adapters/postgres"
	"securereport/internal/config"
	"securereport/internal/events"
	"securereport/internal/ports"
	"securereport/internal/services/assistant"
	authsvc "securereport/internal/services/auth"
	mediasvc "securereport/internal/services/media"
	reportsvc "securereport/internal/services/reports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL, cfg.StoreTimeout)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	// Wire repositories to services (ports)
	var _ ports.ReportRepository = db
	var _ ports.UserRepository = db

	var pub ports.Publisher = events.NoopPublisher{}
	if cfg.RedisAddr != "" {
		rp, err := events.NewRedisPublisher(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		defer rp.Close()
		pub = rp
		log.Printf("event publishing enabled on %s", cfg.RedisAddr)
	}

	reports := reportsvc.New(db, pub)
	auth := authsvc.New(db, cfg.JWTSecret, 24*time.Hour)
	media := mediasvc.New(mediasvc.DiskUploader{Dir: cfg.UploadDir})

	srv := httpadapter.New(reports, auth, media, assistant.New(), cfg.AdminAPIKey, cfg.UploadDir)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
