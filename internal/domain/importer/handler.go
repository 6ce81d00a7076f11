package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/import", importHandler(svc))
}

type importResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// @Summary Importar un perro desde una URL externa (best-effort, solo metadata)
// @Param url query string true "URL de la página del perro"
// @Success 201 {object} importer.importResponse
// @Router /import [post]
func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")

		d, err := svc.Import(r.Context(), url)
		if err != nil {
			if errors.Is(err, ErrFetch) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, importResponse{ID: d.ID, Name: d.Name})
	}
}

// writeJSON está duplicado intencionalmente por módulo (ver dogs/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
