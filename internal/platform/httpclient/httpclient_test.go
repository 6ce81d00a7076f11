package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetString_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><title>hola</title></html>"))
	}))
	defer ts.Close()

	c := New(0) // 0 => DefaultTimeout
	body, err := c.GetString(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(body, "hola") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestGetString_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	c := New(time.Second)
	_, err := c.GetString(context.Background(), ts.URL)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 in error, got %d", httpErr.StatusCode)
	}
}

func TestGetString_InvalidURL(t *testing.T) {
	c := New(time.Second)

	for _, u := range []string{"", "no-scheme", "ftp://x", "http://"} {
		if _, err := c.GetString(context.Background(), u); err == nil {
			t.Fatalf("expected error for url %q", u)
		}
	}
}

func TestGetString_BodyCapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		big := strings.Repeat("x", maxBodyBytes+1024)
		_, _ = w.Write([]byte(big))
	}))
	defer ts.Close()

	c := New(5 * time.Second)
	body, err := c.GetString(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(body) != maxBodyBytes {
		t.Fatalf("expected body capped at %d, got %d", maxBodyBytes, len(body))
	}
}
