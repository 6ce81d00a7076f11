package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidID    = errors.New("invalid id")
)

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateInput es a la vez el body de POST /dogs y el input del use-case:
// los campos calzan uno a uno con el wire format, así que no duplicamos el
// struct en el handler. Los tags json también le dan a ozzo los nombres de
// campo para el detalle de errores de validación.
type CreateInput struct {
	Name      string   `json:"name"`
	OPID      *int     `json:"op_id"`
	Sex       string   `json:"sex"`
	Color     string   `json:"color"`
	BirthDate string   `json:"birth_date"`
	SireID    string   `json:"sire_id"`
	DamID     string   `json:"dam_id"`
	Tags      []string `json:"tags"`
	SourceURL string   `json:"source_url"`
	Notes     string   `json:"notes"`
}

// Validate aplica las reglas de schema del registro.
// Ojo: SireID/DamID se validan solo sintácticamente (formato uuid);
// la integridad referencial NO se chequea, una referencia puede apuntar
// a un registro que no existe y eso es válido.
func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.OPID, validation.Min(0)),
		validation.Field(&in.SireID, validation.By(uuidSyntax)),
		validation.Field(&in.DamID, validation.By(uuidSyntax)),
	)
}

func uuidSyntax(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid dog id")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	in.Name = strings.TrimSpace(in.Name)

	if err := in.Validate(); err != nil {
		// Envolvemos dos veces: el sentinel para mapear a status y el
		// validation.Errors para el detalle por campo en la respuesta.
		return Dog{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	d := Dog{
		ID:        uuid.NewString(),
		Name:      in.Name,
		OPID:      in.OPID,
		Sex:       strings.TrimSpace(in.Sex),
		Color:     strings.TrimSpace(in.Color),
		BirthDate: strings.TrimSpace(in.BirthDate),
		SireID:    strings.TrimSpace(in.SireID),
		DamID:     strings.TrimSpace(in.DamID),
		Tags:      tags,
		SourceURL: strings.TrimSpace(in.SourceURL),
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// GetByID distingue id malformado (ErrInvalidID) de id bien formado sin
// registro (ErrNotFound): el primero es un 400 del caller, el segundo un 404.
func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Dog{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, namePattern string, limit int) ([]Dog, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	return s.repo.Search(ctx, strings.TrimSpace(namePattern), limit)
}
