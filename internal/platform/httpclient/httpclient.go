package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes acota cuánto leemos de la respuesta; las páginas de
	// pedigree son chicas y solo nos interesa el <head>.
	maxBodyBytes = 2 << 20 // 2MB
)

// Client envuelve *http.Client para los fetches salientes (import).
type Client struct {
	HTTP *http.Client
}

// New crea un Client con timeout acotado (nunca colgamos un request
// entrante esperando a un sitio externo).
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// HTTPError representa una respuesta no-2xx del sitio externo.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status=%d", e.StatusCode)
}

// GetString hace GET a una URL absoluta y devuelve el body como string,
// leído con tope. Status no-2xx => *HTTPError.
func (c *Client) GetString(ctx context.Context, rawURL string) (string, error) {
	if c == nil || c.HTTP == nil {
		return "", errors.New("httpclient: nil client")
	}

	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("httpclient: invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode}
	}

	return string(raw), nil
}
