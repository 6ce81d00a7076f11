package dogs

import "time"

// Sex define el sexo registrado del perro. Campo libre en el modelo
// (los datos importados traen de todo), estas constantes son las usuales.
type Sex string

const (
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
	SexUnknown Sex = "Unknown"
)

// Dog representa una entrada de pedigree: identidad, atributos descriptivos
// y referencias opcionales a padres.
//
// SireID/DamID apuntan al ID de otro Dog. No se garantiza que resuelvan:
// una referencia colgante (registro inexistente) es un caso normal que el
// resolver de pedigree tolera, no un error de datos.
type Dog struct {
	ID   string
	Name string

	// OPID es el dog_id del sistema de origen (APBT Online Pedigrees),
	// si se conoce.
	OPID *int

	Sex       string
	Color     string
	BirthDate string // YYYY-MM-DD o texto libre; no se valida

	SireID string
	DamID  string

	Tags []string

	SourceURL string
	Notes     string

	CreatedAt time.Time
}
