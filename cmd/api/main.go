// @title Pedigree Organizer API
// @version 1.0
// @description Backend mínimo para registrar perros y armar árboles de pedigree (sire/dam).
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	_ "pedigree-organizer/docs"
	pg "pedigree-organizer/internal/adapters/storage/postgres"
	"pedigree-organizer/internal/platform/logger"
	"pedigree-organizer/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8000"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Lifecycle del store: conectar acá, inyectar al router, cerrar al salir.
	// Sin DATABASE_URL (o sin server alcanzable) el proceso arranca igual en
	// modo degradado con store in-memory; /test lo refleja.
	var db *sql.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		opened, err := pg.Open(dsn)
		if err != nil {
			log.Warn("database unreachable, starting with in-memory store", map[string]any{
				"error": err.Error(),
			})
		} else {
			db = opened
			defer db.Close()
			log.Info("connected to postgres", nil)
		}
	} else {
		log.Warn("DATABASE_URL not set, starting with in-memory store", nil)
	}

	r := router.NewRouter(router.Options{DB: db, Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // el import espera un fetch externo de hasta 10s
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", map[string]any{"error": err.Error()})
		}
	}
}
