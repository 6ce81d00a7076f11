package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
	})

	r.Get("/pedigree/{dogID}", pedigreeHandler(svc))
}

// dogResponse es la forma pública: el id interno expuesto como string "id",
// el resto de los campos tal cual. tags siempre presente (aunque vacío).
type dogResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OPID      *int      `json:"op_id,omitempty"`
	Sex       string    `json:"sex,omitempty"`
	Color     string    `json:"color,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	SireID    string    `json:"sire_id,omitempty"`
	DamID     string    `json:"dam_id,omitempty"`
	Tags      []string  `json:"tags"`
	SourceURL string    `json:"source_url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// pedigreeNodeResponse embebe dogResponse para que los campos del perro
// queden inline en el nodo, con sire/dam siempre presentes (nil => null).
type pedigreeNodeResponse struct {
	dogResponse
	Sire *pedigreeNodeResponse `json:"sire"`
	Dam  *pedigreeNodeResponse `json:"dam"`
}

type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields validation.Errors `json:"fields"`
}

// @Summary Registrar un perro
// @Accept json
// @Success 201 {object} map[string]string
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				var fields validation.Errors
				errors.As(err, &fields)
				writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
					Error:  "validation failed",
					Fields: fields,
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"id": d.ID})
	}
}

// @Summary Listar/buscar perros por nombre
// @Param q query string false "substring del nombre (case-insensitive)"
// @Param limit query int false "máximo de resultados (default 50)"
// @Success 200 {array} dogs.dogResponse
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "limit must be an integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.Search(r.Context(), q, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Perfil de un perro
// @Param dogID path string true "id del perro"
// @Success 200 {object} dogs.dogResponse
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeDogLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// @Summary Árbol de pedigree (ancestros sire/dam)
// @Param dogID path string true "id del perro raíz"
// @Param depth query int false "generaciones a expandir (default 3, máximo 10)"
// @Success 200 {object} dogs.pedigreeNodeResponse
// @Router /pedigree/{dogID} [get]
func pedigreeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		depth := DefaultPedigreeDepth
		if v := r.URL.Query().Get("depth"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				depth = n
			}
		}

		tree, err := svc.Pedigree(r.Context(), chi.URLParam(r, "dogID"), depth)
		if err != nil {
			writeDogLookupError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPedigreeResponse(tree))
	}
}

func writeDogLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDogResponse(d Dog) dogResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return dogResponse{
		ID:        d.ID,
		Name:      d.Name,
		OPID:      d.OPID,
		Sex:       d.Sex,
		Color:     d.Color,
		BirthDate: d.BirthDate,
		SireID:    d.SireID,
		DamID:     d.DamID,
		Tags:      tags,
		SourceURL: d.SourceURL,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

func toPedigreeResponse(n *PedigreeNode) *pedigreeNodeResponse {
	if n == nil {
		return nil
	}
	return &pedigreeNodeResponse{
		dogResponse: toDogResponse(n.Dog),
		Sire:        toPedigreeResponse(n.Sire),
		Dam:         toPedigreeResponse(n.Dam),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dogs/importer) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
