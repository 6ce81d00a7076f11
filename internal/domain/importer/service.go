package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pedigree-organizer/internal/domain/dogs"

	"github.com/PuerkitoBio/goquery"
)

var ErrFetch = errors.New("failed to fetch")

const (
	// FallbackName se usa cuando la página no trae un título usable.
	// Es un branch explícito del parseo, nunca un error que llegue al caller.
	FallbackName = "Imported Dog"

	importNote = "Imported from APBT Online Pedigrees (metadata only)"

	// maxCauseLen acota el mensaje upstream que devolvemos al cliente.
	maxCauseLen = 120
)

// Fetcher trae el HTML de una página. La implementación real es
// platform/httpclient; los tests inyectan la suya.
type Fetcher interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Service implementa el import best-effort: baja la página, saca un nombre
// del <title> y registra un Dog placeholder con la URL de origen.
// No se extrae pedigree estructurado (TOS del sitio de origen).
type Service struct {
	dogs    *dogs.Service
	fetcher Fetcher
}

func NewService(dogsSvc *dogs.Service, fetcher Fetcher) *Service {
	return &Service{
		dogs:    dogsSvc,
		fetcher: fetcher,
	}
}

func (s *Service) Import(ctx context.Context, url string) (dogs.Dog, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return dogs.Dog{}, fmt.Errorf("%w: empty url", ErrFetch)
	}

	body, err := s.fetcher.GetString(ctx, url)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("%w: %s", ErrFetch, truncate(err.Error(), maxCauseLen))
	}

	name := titleName(body)

	return s.dogs.Create(ctx, dogs.CreateInput{
		Name:      name,
		SourceURL: url,
		Notes:     importNote,
	})
}

// titleName saca el mejor nombre posible del <title>: el texto antes del
// primer separador "- ". Cualquier falla de parseo cae al FallbackName,
// jamás a un error.
func titleName(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return FallbackName
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return FallbackName
	}

	name := strings.TrimSpace(strings.SplitN(title, "- ", 2)[0])
	if name == "" {
		return FallbackName
	}
	return name
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
