package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	pg "sarc-client/internal/adapters/storage/postgres"
	"sarc-client/internal/devserver"
	"sarc-client/internal/platform/logger"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := devserver.Options{Logger: logger.NewFromEnv()}

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("schema: %v", err)
		}
		cancel()
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      devserver.New(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting devserver on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
