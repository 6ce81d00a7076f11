package router

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	mem "pedigree-organizer/internal/adapters/storage/memory"
	pg "pedigree-organizer/internal/adapters/storage/postgres"
	"pedigree-organizer/internal/domain/dogs"
	"pedigree-organizer/internal/domain/importer"
	"pedigree-organizer/internal/platform/httpclient"
	"pedigree-organizer/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DATABASE_URL por env
	// y si tampoco hay (o no conecta), cae al store in-memory: el servicio
	// arranca igual, degradado a no-durable.
	DB *sql.DB

	Log *logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{Level: logger.Warn})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// CORS abierto, igual que el backend original (frontend aparte).
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	dsn := os.Getenv("DATABASE_URL")
	if db == nil && dsn != "" {
		opened, err := pg.Open(dsn)
		if err != nil {
			log.Warn("database unreachable, falling back to in-memory store", map[string]any{
				"error": err.Error(),
			})
		} else {
			db = opened
		}
	}

	var dogRepo dogs.Repository
	if db != nil {
		dogRepo = pg.NewDogsRepo(db)
	} else {
		dogRepo = mem.NewDogRepo()
	}

	dogsSvc := dogs.NewService(dogRepo)
	importSvc := importer.NewService(dogsSvc, httpclient.New(httpclient.DefaultTimeout))

	r.Get("/", rootHandler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/test", testHandler(db, dsn != ""))

	dogs.RegisterRoutes(r, dogsSvc)
	importer.RegisterRoutes(r, importSvc)

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	return r
}

// @Summary Mensaje de bienvenida
// @Success 200 {object} map[string]string
// @Router / [get]
func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Pedigree Organizer Backend is running",
		})
	}
}

type testResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	StoreMode        string   `json:"store_mode"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// testHandler reporta el estado del store: con qué modo arrancamos, si la
// conexión sigue viva y qué tablas se ven. Pensado para diagnosticar deploys
// con DATABASE_URL mal seteada sin revisar logs.
//
// @Summary Diagnóstico de conectividad del store
// @Success 200 {object} router.testResponse
// @Router /test [get]
func testHandler(db *sql.DB, dsnSet bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := testResponse{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      "not set",
			StoreMode:        "memory",
			ConnectionStatus: "not connected",
			Tables:           []string{},
		}
		if dsnSet {
			resp.DatabaseURL = "set"
		}

		if db == nil {
			resp.Database = "unavailable (using in-memory store)"
			writeJSON(w, http.StatusOK, resp)
			return
		}

		resp.StoreMode = "postgres"

		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			resp.Database = "error: " + truncate(err.Error(), 80)
			writeJSON(w, http.StatusOK, resp)
			return
		}
		resp.ConnectionStatus = "connected"
		resp.Database = "connected"

		tables, err := pg.TableNames(ctx, db, 10)
		if err != nil {
			resp.Database = "connected but error: " + truncate(err.Error(), 80)
		} else {
			resp.Tables = tables
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
